package main

import (
	"fmt"
	"os"

	"github.com/bailey435/baileybennett-tic-tac-toe/internal/config"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/console"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/logger"
)

// main - plays tic-tac-toe in the terminal, against a friend or the computer.
func main() {
	conf, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(os.Stderr, conf.LogLevel)

	if err = console.New(log, os.Stdin, os.Stdout, conf.ComputerDelay).Run(); err != nil {
		log.Error("console stopped", "error", err)
		os.Exit(1)
	}
}
