// Package main is the entry point for the USSD Dashboard TUI. It loads
// configuration, starts the service manager, and runs the Bubble Tea
// program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/k-mensah/ussd-dash-tui/internal/app"
	"github.com/k-mensah/ussd-dash-tui/internal/config"
	"github.com/k-mensah/ussd-dash-tui/internal/logger"
	"github.com/k-mensah/ussd-dash-tui/internal/services"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/tabs/demographics"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/tabs/info"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/tabs/overview"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/tabs/peakhours"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/tabs/revenue"
	"github.com/k-mensah/ussd-dash-tui/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.LogFile != "" {
		if err := logger.SetFile(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		}
	}

	// Starts the metrics and catalog services in the background.
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(svcManager)

	// Each tab reads from the shared application state.
	state := model.GetState()
	tabs := []app.Tab{
		overview.New(state),
		peakhours.New(state),
		revenue.New(state),
		demographics.New(state),
		info.New(state, cfg, svcManager),
	}
	model.SetTabs(tabs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`USSD Dashboard TUI - telecom USSD analytics in the terminal

Usage:
  udt [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-5             Switch between tabs (Overview, Peak Hours, Revenue, Demographics, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Scroll tab content
  r               Refresh all datasets
  t               Cycle time range (7/30/90 days)
  l               Toggle live refresh
  e               Export visible data to CSV
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  USSD_API_URL        Metrics API base URL
  USSD_API_KEY        Metrics API key
  DATABASE_PATH       SQLite snapshot cache path
  CATALOG_PATH        Service catalog JSON file path
  EXPORT_DIR          Directory for CSV exports (default: .)
  LOG_FILE            Debug log file path
  POLL_INTERVAL       Live refresh interval (default: 4s)

Configuration:
  The application looks for .env files in the current directory and
  under ~/.config/ussd-dash-tui/.`)
}
