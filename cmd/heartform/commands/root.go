package commands

import (
	"github.com/urfave/cli/v3"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "heartform",
		Usage: "Heart disease prediction form for the web and the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (defaults to $HEARTFORM_CONFIG or ./heartform.yaml)",
			},
			&cli.StringFlag{
				Name:  "predictor-url",
				Usage: "Base URL of the prediction service",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewServeCommand(),
			NewAskCommand(),
			NewPredictCommand(),
			NewFieldsCommand(),
			NewConfigCommand(),
		},
	}
}
