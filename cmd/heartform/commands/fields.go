package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// NewFieldsCommand returns the fields subcommand.
func NewFieldsCommand() *cli.Command {
	return &cli.Command{
		Name:  "fields",
		Usage: "Print the form model built from the prediction contract",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: json or yaml",
				Value:   "json",
			},
		},
		Action: runFields,
	}
}

func runFields(ctx context.Context, cmd *cli.Command) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	form, err := e.orch.Form(ctx)
	if err != nil {
		return err
	}

	w := writer(cmd)
	switch strings.ToLower(cmd.String("format")) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(form)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(form); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("heartform: unknown format %q", cmd.String("format"))
	}
}
