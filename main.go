package main

import (
	"fmt"
	"os"
	"path/filepath"

	app "github.com/bailey435/baileybennett-tic-tac-toe/internal"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/config"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/logger"
)

// main - starts the game service: loads config.yml, builds the logger and serves the REST API.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	log := logger.New(os.Stdout, conf.LogLevel)

	if err := app.RunApp(log, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "config.yml"))
}
