package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"adhd-planner/internal/appointment"
	appointmentHTTP "adhd-planner/internal/appointment/delivery/http"
	"adhd-planner/internal/middleware"
	plannerHTTP "adhd-planner/internal/planner/delivery/http"
	"adhd-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Domains
	appointments       appointment.UseCase
	appointmentHandler appointmentHTTP.Handler
	plannerHandler     plannerHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// TrustedProxies feeds gin's client IP resolution; nil trusts no proxy.
	TrustedProxies []string

	Middleware middleware.Middleware

	// Appointments feeds the readiness probe; optional.
	Appointments       appointment.UseCase
	AppointmentHandler appointmentHTTP.Handler
	PlannerHandler     plannerHTTP.Handler
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		host:               cfg.Host,
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		mw:                 cfg.Middleware,
		appointments:       cfg.Appointments,
		appointmentHandler: cfg.AppointmentHandler,
		plannerHandler:     cfg.PlannerHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.appointmentHandler == nil {
		return errors.New("appointment handler is required")
	}
	if srv.plannerHandler == nil {
		return errors.New("planner handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
