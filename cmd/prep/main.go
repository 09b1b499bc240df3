package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/abhishek622/interviewPrep/internal/client"
	"github.com/abhishek622/interviewPrep/internal/tui"
)

type options struct {
	APIURL  string        `envconfig:"PREP_API_URL" default:"http://localhost:10000"`
	Timeout time.Duration `envconfig:"PREP_TIMEOUT" default:"90s"`
	LogFile string        `envconfig:"PREP_LOG"`
	NoColor bool          `envconfig:"PREP_NO_COLOR"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "prep:", err)
		os.Exit(1)
	}
}

func run() error {
	var opts options
	if err := envconfig.Process("", &opts); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}

	log, err := newFileLogger(opts.LogFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(opts.APIURL, opts.Timeout)
	log.Info("starting terminal client", zap.String("api", opts.APIURL))

	m := tui.NewModel(ctx, api, tui.Options{NoColor: opts.NoColor, Logger: log})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}

// newFileLogger writes JSON logs to path, or discards them when path is
// empty since stdout belongs to the UI.
func newFileLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}
