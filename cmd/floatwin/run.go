package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/floatwin/internal/config"
	"github.com/Gaurav-Gosain/floatwin/internal/demo"
	"github.com/Gaurav-Gosain/floatwin/pkg/floatwin"
)

const defaultLogFile = "floatwin/floatwin.log"

// newLogger returns the program logger. The TUI owns stdout, so logs go to
// a file or nowhere.
func newLogger() (*log.Logger, io.Closer, error) {
	path := logFile
	if path == "" && debugMode {
		var err error
		if path, err = xdg.StateFile(defaultLogFile); err != nil {
			return nil, nil, fmt.Errorf("failed to get log path: %w", err)
		}
	}
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	// #nosec G304 - path comes from the --log-file flag
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "floatwin",
	})
	if debugMode {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// terminalSize is the viewport used until the first tea.WindowSizeMsg.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

func runDemo() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closer.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()
	// Package level logging from config and theme loading must not draw
	// over the TUI either.
	log.SetDefault(logger)

	if debugMode {
		configPath, _ := config.GetConfigPath()
		logger.Debug("configuration", "path", configPath)
	}

	width, height := terminalSize()
	fw := floatwin.New(
		floatwin.WithUserConfig(userConfig),
		floatwin.WithTheme(themeName),
		floatwin.WithBorderStyle(borderStyle),
		floatwin.WithASCIIOnly(asciiOnly),
		floatwin.WithHideCloseButton(hideCloseButton),
		floatwin.WithSize(width, height),
		floatwin.WithLogger(logger),
	)
	defer fw.Shutdown()

	model := newDemoModel(fw, demo.NewStats(nil), logger, width, height, max(windowCount, 0))

	opts := append(floatwin.ProgramOptions(), tea.WithoutSignalHandler())
	p := tea.NewProgram(model, opts...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	logger.Info("exited", "windows", fw.Registry().Len())
	return nil
}
