package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"adhd-planner/config"
	"adhd-planner/internal/appointment/repository/source"
	appointmentUC "adhd-planner/internal/appointment/usecase"
	"adhd-planner/internal/checklist/repository/memory"
	checklistUC "adhd-planner/internal/checklist/usecase"
	"adhd-planner/internal/planner/delivery/tui"
	plannerUC "adhd-planner/internal/planner/usecase"
	"adhd-planner/pkg/datemath"
	"adhd-planner/pkg/llmprovider"
	"adhd-planner/pkg/log"
)

// defaultLogFile keeps log output off the terminal the UI draws on.
const defaultLogFile = "adhd-planner-tui.log"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	outputs := cfg.Logger.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{defaultLogFile}
	}
	logger := log.Init(log.ZapConfig{
		Level:       cfg.Logger.Level,
		Mode:        cfg.Logger.Mode,
		Encoding:    "json",
		OutputPaths: outputs,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dateMathParser, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	appointmentRepo, err := source.New(ctx, logger, cfg.Appointments, cfg.GoogleCalendar, dateMathParser)
	if err != nil {
		fmt.Println("Failed to initialize appointment source: ", err)
		os.Exit(1)
	}
	appointments := appointmentUC.New(logger, appointmentRepo, cfg.Appointments.MaxResults)
	if err := appointments.Load(ctx); err != nil {
		logger.Warnf(ctx, "Initial appointment fetch failed: %v", err)
	}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		fmt.Println("Failed to initialize LLM providers: ", err)
		os.Exit(1)
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		fmt.Println("Invalid LLM config: ", err)
		os.Exit(1)
	}
	llmManager := llmprovider.NewManager(providers, managerCfg, logger)

	checklists := checklistUC.New(logger, llmManager, appointments, memory.New(), dateMathParser, managerCfg.MaxTotalTimeout)
	planner := plannerUC.New(logger, appointments, checklists, dateMathParser)

	if err := tui.Run(tui.New(ctx, logger, planner, checklists, appointments)); err != nil {
		logger.Errorf(ctx, "tui: %v", err)
		fmt.Println("Error: ", err)
	}
}
