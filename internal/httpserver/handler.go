package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appointmentHTTP "adhd-planner/internal/appointment/delivery/http"
	"adhd-planner/internal/model"
	plannerHTTP "adhd-planner/internal/planner/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// HTML view and planner API
	plannerHTTP.RegisterPageRoutes(srv.gin, srv.plannerHandler, srv.mw)
	plannerHTTP.RegisterRoutes(api, srv.plannerHandler, srv.mw)

	// Appointment source
	appointmentHTTP.RegisterEventsRoute(srv.gin, srv.appointmentHandler)
	appointmentHTTP.RegisterRoutes(api.Group("/appointments"), srv.appointmentHandler)

	srv.l.Infof(ctx, "Planner routes registered at / and /api/v1")
	return nil
}
