package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	pkgopenapi "github.com/goliatone/go-heartform/pkg/openapi"
)

const (
	extLabel        = "x-heartform-label"
	extInput        = "x-heartform-input"
	extStep         = "x-heartform-step"
	extOrder        = "x-heartform-order"
	extOptionLabels = "x-heartform-option-labels"
	extSubmitLabel  = "x-heartform-submit-label"
)

// Builder converts OpenAPI operations into form models.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	if strings.TrimSpace(options.SubmitLabel) != "" {
		opts.SubmitLabel = strings.TrimSpace(options.SubmitLabel)
	}
	return &Builder{opts: opts}
}

// Build transforms an OpenAPI operation into a flat FormModel. Only the top
// level properties of the request body become fields; the form has no nested
// groups.
func (b *Builder) Build(op pkgopenapi.Operation) (FormModel, error) {
	if err := validateOperation(op); err != nil {
		return FormModel{}, err
	}

	form := FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Title:       op.Summary,
		Description: op.Description,
		SubmitLabel: b.opts.SubmitLabel,
	}
	if label := stringExtension(op.Extensions, extSubmitLabel); label != "" {
		form.SubmitLabel = label
	}

	body := op.RequestBody
	if body.Type != "" && body.Type != "object" {
		return FormModel{}, fmt.Errorf("model: request body of %q must be an object, got %s", op.ID, body.DebugString())
	}
	if len(body.Properties) == 0 {
		return FormModel{}, fmt.Errorf("model: request body of %q declares no properties", op.ID)
	}

	for _, name := range orderedProperties(body) {
		form.Fields = append(form.Fields, b.fieldFromSchema(name, body.Properties[name], body.IsRequired(name)))
	}

	if op.Description != "" {
		form.Metadata = map[string]string{"description": op.Description}
	}
	return form, nil
}

func (b *Builder) fieldFromSchema(name string, schema pkgopenapi.Schema, required bool) Field {
	field := Field{
		Name:        name,
		Type:        fieldType(schema.Type),
		Required:    required,
		Label:       stringExtension(schema.Extensions, extLabel),
		Description: schema.Description,
		Step:        stringExtension(schema.Extensions, extStep),
	}
	if field.Label == "" {
		field.Label = b.opts.Labeler(name)
	}

	switch {
	case len(schema.Enum) > 0:
		field.Input = InputSelect
		field.Options = optionsFromEnum(schema.Enum, schema.Extensions[extOptionLabels])
	case strings.EqualFold(stringExtension(schema.Extensions, extInput), string(InputNumber)),
		schema.Type == "number" || schema.Type == "integer":
		field.Input = InputNumber
	default:
		field.Input = InputText
	}

	if schema.Minimum != nil || schema.Maximum != nil {
		field.Metadata = make(map[string]string, 2)
		if schema.Minimum != nil {
			field.Metadata["min"] = formatNumber(*schema.Minimum)
		}
		if schema.Maximum != nil {
			field.Metadata["max"] = formatNumber(*schema.Maximum)
		}
	}
	return field
}

// orderedProperties honours x-heartform-order and appends any property it does
// not mention in alphabetical order so no declared field is dropped.
func orderedProperties(schema pkgopenapi.Schema) []string {
	seen := make(map[string]struct{}, len(schema.Properties))
	ordered := make([]string, 0, len(schema.Properties))

	if raw, ok := schema.Extensions[extOrder].([]any); ok {
		for _, item := range raw {
			name, ok := item.(string)
			if !ok {
				continue
			}
			if _, exists := schema.Properties[name]; !exists {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			ordered = append(ordered, name)
		}
	}

	var rest []string
	for name := range schema.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

func optionsFromEnum(values []any, rawLabels any) []Option {
	labels, _ := rawLabels.(map[string]any)
	options := make([]Option, 0, len(values))
	for _, value := range values {
		str := stringifyValue(value)
		label := str
		if candidate, ok := labels[str].(string); ok && strings.TrimSpace(candidate) != "" {
			label = candidate
		}
		options = append(options, Option{Value: str, Label: label})
	}
	return options
}

func validateOperation(op pkgopenapi.Operation) error {
	if op.ID == "" {
		return errors.New("model: operation id is required")
	}
	if op.Method == "" || op.Path == "" {
		return fmt.Errorf("model: operation %q requires method and path", op.ID)
	}
	return nil
}

func fieldType(raw string) FieldType {
	switch raw {
	case "integer":
		return FieldTypeInteger
	case "number":
		return FieldTypeNumber
	case "boolean":
		return FieldTypeBoolean
	default:
		return FieldTypeString
	}
}

func stringExtension(ext map[string]any, key string) string {
	if len(ext) == 0 {
		return ""
	}
	value, ok := ext[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func stringifyValue(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return formatNumber(typed)
	default:
		return fmt.Sprint(typed)
	}
}

func formatNumber(value float64) string {
	return fmt.Sprintf("%g", value)
}
