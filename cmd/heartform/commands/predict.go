package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-heartform/pkg/formstate"
	"github.com/goliatone/go-heartform/pkg/render"
	"github.com/goliatone/go-heartform/pkg/submission"
)

// ErrPredictionFailed is returned after the error banner has been printed.
var ErrPredictionFailed = errors.New("heartform: prediction failed")

// NewPredictCommand returns the predict subcommand.
func NewPredictCommand() *cli.Command {
	return &cli.Command{
		Name:      "predict",
		Usage:     "Submit measurements without prompting",
		ArgsUsage: "--set age=63 --set sex=1 ...",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "set",
				Aliases: []string{"s"},
				Usage:   "Field value as name=value (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "allow-missing",
				Usage: "Submit even when required fields are empty",
			},
		},
		Action: runPredict,
	}
}

func runPredict(ctx context.Context, cmd *cli.Command) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	form, err := e.orch.Form(ctx)
	if err != nil {
		return err
	}

	state := formstate.New(form.FieldNames()...)
	for _, pair := range cmd.StringSlice("set") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("heartform: --set %q: expected name=value", pair)
		}
		if err := state.SetField(strings.TrimSpace(name), value); err != nil {
			return fmt.Errorf("heartform: --set %q: %w", pair, err)
		}
	}

	if missing := state.Missing(); len(missing) > 0 && !cmd.Bool("allow-missing") {
		return fmt.Errorf("heartform: missing required fields: %s", strings.Join(missing, ", "))
	}

	controller := submission.NewController(e.client, submission.WithLogger(e.logger))
	outcome := controller.Submit(ctx, submission.NoopEvent{}, state)

	banner := render.BannerFor(outcome.View)
	fmt.Fprintln(writer(cmd), banner.Message)
	if !outcome.Succeeded() {
		return ErrPredictionFailed
	}
	return nil
}
