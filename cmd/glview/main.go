// Package main is the entry point for glview, a viewer for the scene shader program.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/glstate/internal/app"
	"github.com/Faultbox/glstate/internal/config"
	"github.com/Faultbox/glstate/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to save config", zap.Error(err))
			return 1
		}
		logger.Info("config saved", zap.String("path", path))
	}

	a, err := app.New(cfg)
	if err != nil {
		if !errors.Is(err, app.ErrShaders) {
			logger.Error("failed to start viewer", zap.Error(err))
		}
		return 1
	}
	defer a.Close()

	if config.CheckOnly() {
		logger.Info("shaders compiled and linked")
		return 0
	}

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}
