package commands

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-heartform/pkg/formstate"
	"github.com/goliatone/go-heartform/pkg/render"
	"github.com/goliatone/go-heartform/pkg/renderers/tui"
	"github.com/goliatone/go-heartform/pkg/submission"
)

// promptDriver replaces the survey prompts in tests.
var promptDriver tui.PromptDriver

// NewAskCommand returns the ask subcommand.
func NewAskCommand() *cli.Command {
	return &cli.Command{
		Name:   "ask",
		Usage:  "Prompt for the measurements in the terminal and show the prediction",
		Action: runAsk,
	}
}

func runAsk(ctx context.Context, cmd *cli.Command) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	form, err := e.orch.Form(ctx)
	if err != nil {
		return err
	}

	opts := []tui.Option{tui.WithOutput(writer(cmd))}
	if promptDriver != nil {
		opts = append(opts, tui.WithPromptDriver(promptDriver))
	}
	prompts, err := tui.New(opts...)
	if err != nil {
		return err
	}

	state := formstate.New(form.FieldNames()...)
	controller := submission.NewController(e.client,
		submission.WithLogger(e.logger),
		submission.WithState(state),
	)

	for {
		if err := prompts.Collect(ctx, form, state); err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			return err
		}

		outcome := controller.Submit(ctx, submission.NoopEvent{}, nil)
		if err := prompts.ShowBanner(ctx, render.BannerFor(outcome.View)); err != nil {
			return err
		}

		again, err := prompts.Confirm(ctx, "Run another prediction?", false)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			return err
		}
		if !again {
			return nil
		}
	}
}
