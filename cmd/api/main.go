package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"adhd-planner/config"
	_ "adhd-planner/docs" // Swagger docs
	appointmentHTTP "adhd-planner/internal/appointment/delivery/http"
	appointmentJob "adhd-planner/internal/appointment/delivery/job"
	"adhd-planner/internal/appointment/repository/source"
	appointmentUC "adhd-planner/internal/appointment/usecase"
	"adhd-planner/internal/checklist/repository/memory"
	checklistUC "adhd-planner/internal/checklist/usecase"
	"adhd-planner/internal/httpserver"
	"adhd-planner/internal/middleware"
	plannerHTTP "adhd-planner/internal/planner/delivery/http"
	plannerUC "adhd-planner/internal/planner/usecase"
	"adhd-planner/pkg/datemath"
	"adhd-planner/pkg/llmprovider"
	"adhd-planner/pkg/log"
)

// @title       ADHD Appointment Planner API
// @description Upcoming appointments with generated ADHD-friendly checklists.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		OutputPaths:  cfg.Logger.OutputPaths,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ADHD appointment planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date math (planner timezone)
	dateMathParser, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Appointment domain
	appointmentRepo, err := source.New(ctx, logger, cfg.Appointments, cfg.GoogleCalendar, dateMathParser)
	if err != nil {
		logger.Error(ctx, "Failed to initialize appointment source: ", err)
		return
	}
	appointments := appointmentUC.New(logger, appointmentRepo, cfg.Appointments.MaxResults)

	// A failed first fetch leaves the list empty; the page says so.
	if err := appointments.Load(ctx); err != nil {
		logger.Warnf(ctx, "Initial appointment fetch failed: %v", err)
	}

	if cfg.Appointments.RefreshCron != "" {
		scheduler, err := appointmentJob.New(logger, appointments, cfg.Appointments.RefreshCron)
		if err != nil {
			logger.Error(ctx, "Failed to schedule appointment refresh: ", err)
			return
		}
		scheduler.Start()
		defer scheduler.Stop()
		logger.Infof(ctx, "Appointment refresh scheduled: %s", cfg.Appointments.RefreshCron)
	}

	// 5. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM config: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, managerCfg, logger)

	// 6. Checklist domain
	checklists := checklistUC.New(logger, llmManager, appointments, memory.New(), dateMathParser, managerCfg.MaxTotalTimeout)
	defer checklists.Wait()

	// 7. Planner view
	planner := plannerUC.New(logger, appointments, checklists, dateMathParser)

	// 8. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit.GeneratePerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Host:               cfg.HTTPServer.Host,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		TrustedProxies:     cfg.HTTPServer.TrustedProxies,
		Middleware:         mw,
		Appointments:       appointments,
		AppointmentHandler: appointmentHTTP.New(logger, appointments),
		PlannerHandler:     plannerHTTP.New(logger, planner, checklists),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully, waiting for running generations")
}
