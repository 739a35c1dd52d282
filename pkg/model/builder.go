package model

import (
	"github.com/goliatone/go-heartform/internal/model"
	pkgopenapi "github.com/goliatone/go-heartform/pkg/openapi"
)

// Builder converts OpenAPI operations into form models.
type Builder interface {
	Build(op pkgopenapi.Operation) (FormModel, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	labeler     func(string) string
	submitLabel string
}

// WithLabeler overrides the label used for fields without x-heartform-label.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// WithSubmitLabel sets the submit caption used when the operation does not
// declare x-heartform-submit-label.
func WithSubmitLabel(label string) BuilderOption {
	return func(opts *builderOptions) {
		opts.submitLabel = label
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return model.New(model.Options{
		Labeler:     cfg.labeler,
		SubmitLabel: cfg.submitLabel,
	})
}
