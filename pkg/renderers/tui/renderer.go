package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-heartform/pkg/formstate"
	"github.com/goliatone/go-heartform/pkg/model"
	"github.com/goliatone/go-heartform/pkg/render"
)

// Name is the registry key of the terminal renderer.
const Name = "tui"

// Renderer implements render.Renderer for terminal sessions. Each field of the
// form is prompted in order and written into a formstate.State.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	out          io.Writer
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		theme:        DefaultTheme,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Render prompts every field, seeding defaults from opts.Values, prints the
// banner of opts.View when there is one, and returns the collected values in
// the configured output format.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	state := formstate.FromValues(form.FieldNames(), opts.Values)
	if err := r.Collect(ctx, form, state); err != nil {
		return nil, err
	}
	if err := r.ShowBanner(ctx, opts.Banner()); err != nil {
		return nil, err
	}
	return r.serialize(form, state.Values())
}

// Collect prompts each field of form in order and stores the answers through
// state.SetField. Current state values become prompt defaults. Required fields
// are re-prompted while left blank, the terminal stand-in for the browser's
// required attribute; any other input is accepted as typed.
func (r *Renderer) Collect(ctx context.Context, form model.FormModel, state *formstate.State) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if state == nil {
		return ErrNilState
	}
	if r.driver == nil {
		return errors.New("tui: prompt driver is nil")
	}

	for _, field := range form.Fields {
		if err := ctx.Err(); err != nil {
			return err
		}
		current, _ := state.Get(field.Name)

		var (
			value string
			err   error
		)
		if field.Input == model.InputSelect && len(field.Options) > 0 {
			value, err = r.promptSelect(ctx, field, current)
		} else {
			value, err = r.promptInput(ctx, field, current)
		}
		if err != nil {
			return err
		}
		if err := state.SetField(field.Name, value); err != nil {
			return fmt.Errorf("tui: store %s: %w", field.Name, err)
		}
	}
	return nil
}

// ShowBanner prints a banner through the driver. Invisible banners are
// skipped.
func (r *Renderer) ShowBanner(ctx context.Context, banner render.Banner) error {
	if !banner.Visible() {
		return nil
	}
	prefix := r.theme.SuccessPrefix
	if banner.Severity == render.SeverityError {
		prefix = r.theme.ErrorPrefix
	}
	return r.driver.Info(ctx, prefix+banner.Message)
}

// Confirm asks a yes/no question through the driver.
func (r *Renderer) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	return r.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: def})
}

func (r *Renderer) promptInput(ctx context.Context, field model.Field, current string) (string, error) {
	cfg := InputConfig{
		Message: displayLabel(field),
		Default: current,
		Help:    field.Description,
	}
	if field.Required {
		cfg.Validator = requiredValidator(field)
	}

	for {
		value, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return "", err
		}
		if field.Required && strings.TrimSpace(value) == "" {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+requiredMessage(field)); err != nil {
				return "", err
			}
			continue
		}
		return value, nil
	}
}

func (r *Renderer) promptSelect(ctx context.Context, field model.Field, current string) (string, error) {
	labels := make([]string, 0, len(field.Options))
	defaultIndex := -1
	for i, option := range field.Options {
		labels = append(labels, option.Label)
		if option.Value == current {
			defaultIndex = i
		}
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      displayLabel(field),
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         field.Description,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(field.Options) {
		return "", fmt.Errorf("%w: %s index %d", ErrInvalidSelection, field.Name, idx)
	}
	return field.Options[idx].Value, nil
}

func (r *Renderer) serialize(form model.FormModel, values map[string]string) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		var b strings.Builder
		for _, field := range form.Fields {
			value := values[field.Name]
			if field.Input == model.InputSelect {
				value = field.OptionLabel(value)
			}
			fmt.Fprintf(&b, "%s: %s\n", displayLabel(field), value)
		}
		return []byte(b.String()), nil
	}

	payload, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("tui: encode values: %w", err)
	}
	return payload, nil
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func requiredMessage(field model.Field) string {
	return displayLabel(field) + " is required"
}

func requiredValidator(field model.Field) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(requiredMessage(field))
		}
		return nil
	}
}
