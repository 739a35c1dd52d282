package vanilla

import (
	"github.com/goliatone/go-heartform/pkg/model"
	"github.com/goliatone/go-heartform/pkg/render"
)

// fieldView is the template data for one control.
type fieldView struct {
	ID          string       `json:"id"`
	ErrorID     string       `json:"error_id"`
	Name        string       `json:"name"`
	Label       string       `json:"label"`
	Description string       `json:"description,omitempty"`
	Input       string       `json:"input"`
	Step        string       `json:"step,omitempty"`
	Required    bool         `json:"required"`
	Value       string       `json:"value"`
	Options     []optionView `json:"options,omitempty"`
	Errors      []string     `json:"errors,omitempty"`
}

type optionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

func buildFieldViews(form model.FormModel, options render.RenderOptions) []fieldView {
	views := make([]fieldView, 0, len(form.Fields))
	for _, field := range form.Fields {
		value := options.Values[field.Name]
		view := fieldView{
			ID:          fieldControlID(field.Name),
			ErrorID:     fieldErrorID(field.Name),
			Name:        field.Name,
			Label:       field.Label,
			Description: sanitizeDescription(field.Description),
			Input:       string(field.Input),
			Step:        field.Step,
			Required:    field.Required,
			Value:       value,
			Errors:      options.Errors[field.Name],
		}
		if view.Label == "" {
			view.Label = field.Name
		}
		if field.Input == model.InputSelect {
			view.Options = make([]optionView, 0, len(field.Options))
			for _, option := range field.Options {
				view.Options = append(view.Options, optionView{
					Value:    option.Value,
					Label:    option.Label,
					Selected: option.Value == value,
				})
			}
		}
		views = append(views, view)
	}
	return views
}
