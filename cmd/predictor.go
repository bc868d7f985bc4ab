package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/longkey1/chatbox/internal/chatbox"
	"github.com/longkey1/chatbox/internal/chatbox/config"
	"github.com/longkey1/chatbox/internal/logging"
	"github.com/longkey1/chatbox/internal/predict"
)

// session bundles what every chat front end needs.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	predictor *predict.Client
	options   []chatbox.Option
	closeLog  func() error
}

// newSession loads the configuration and builds the logger, the prediction
// client and the widget options. With quiet set, logs only go to log_file.
func newSession(quiet bool) (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg, quiet)
	if err != nil {
		return nil, err
	}

	predictor, err := newPredictor(cfg, logger)
	if err != nil {
		closeLog()
		return nil, err
	}

	texts, err := cfg.Texts()
	if err != nil {
		closeLog()
		return nil, err
	}

	return &session{
		cfg:       cfg,
		logger:    logger,
		predictor: predictor,
		options: []chatbox.Option{
			chatbox.WithTexts(texts),
			chatbox.WithTimestamps(cfg.ShowTimestamps),
			chatbox.WithLogger(logger),
		},
		closeLog: closeLog,
	}, nil
}

// newPredictor creates the client for the configured endpoint
func newPredictor(cfg *config.Config, logger *slog.Logger) (*predict.Client, error) {
	client, err := predict.NewClient(cfg.Endpoint, predict.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("creating prediction client: %w", err)
	}
	if verbose {
		fmt.Fprintln(os.Stderr, "Endpoint:", client.Endpoint())
	}
	return client, nil
}

func newLogger(cfg *config.Config, quiet bool) (*slog.Logger, func() error, error) {
	level := cfg.LogLevel
	if verbose {
		level = logging.LevelDebug
	}

	var w io.Writer = os.Stderr
	closeLog := func() error { return nil }
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeLog = f.Close
	case quiet:
		return logging.Discard(), closeLog, nil
	}

	logger, err := logging.New(level, cfg.LogFormat, w)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return logger, closeLog, nil
}
