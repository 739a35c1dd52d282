package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-heartform/internal/config"
	"github.com/goliatone/go-heartform/internal/logging"
	"github.com/goliatone/go-heartform/pkg/orchestrator"
	"github.com/goliatone/go-heartform/pkg/predict"
	"github.com/goliatone/go-heartform/pkg/render"
)

// env bundles what every subcommand builds from the global flags.
type env struct {
	cfg    config.Config
	logger *slog.Logger
	orch   *orchestrator.Orchestrator
	client *predict.Client
}

func loadEnv(cmd *cli.Command) (*env, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("predictor-url") {
		cfg.Predictor.BaseURL = cmd.String("predictor-url")
	}
	if cmd.Bool("debug") {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(cfg.Log, errWriter(cmd))
	if err != nil {
		return nil, err
	}

	orch := orchestrator.New(
		orchestrator.WithTheme(render.ThemeConfig(cfg.Theme.Manifest(), cfg.Theme.Variant)),
	)
	client := predict.NewClient(
		predict.WithBaseURL(cfg.Predictor.BaseURL),
		predict.WithPath(cfg.Predictor.Path),
	)

	return &env{cfg: cfg, logger: logger, orch: orch, client: client}, nil
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
