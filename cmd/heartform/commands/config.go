package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-heartform/internal/config"
)

// NewConfigCommand returns the config subcommand.
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration as YAML",
		Action: func(_ context.Context, cmd *cli.Command) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return config.Write(writer(cmd), e.cfg)
		},
	}
}
