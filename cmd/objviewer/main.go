// Package main is the entry point for the OBJ viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/LumineWollah/Projet-OpenGL-2025/internal/config"
	"github.com/LumineWollah/Projet-OpenGL-2025/internal/logger"
	"github.com/LumineWollah/Projet-OpenGL-2025/internal/viewer"
)

const windowTitle = "OBJ Textured Viewer"

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Write the merged config and exit when requested
	if config.WriteConfigRequested() {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config save error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config written to", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== OBJ Textured Viewer ===")
	logger.Debug("configuration loaded",
		zap.String("model", cfg.Viewer.Model),
		zap.String("texture", cfg.Viewer.Texture),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	// Create and run the viewer
	v, err := viewer.New(viewer.Config{
		Title:       windowTitle,
		Width:       cfg.Graphics.Width,
		Height:      cfg.Graphics.Height,
		Fullscreen:  cfg.Graphics.Fullscreen,
		VSync:       cfg.Graphics.VSync,
		ModelPath:   cfg.Viewer.Model,
		TexturePath: cfg.Viewer.Texture,
		Triangulate: cfg.Viewer.Triangulate,
		SpinSpeed:   cfg.Viewer.SpinSpeed,
	})
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	// Run the viewer loop
	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
