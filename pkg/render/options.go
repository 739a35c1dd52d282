package render

import (
	"github.com/goliatone/go-theme"

	"github.com/goliatone/go-heartform/pkg/submission"
)

// RenderOptions describe per-request data that renderers use to customise
// their output without touching the form model.
type RenderOptions struct {
	// Action overrides the form action. Defaults to the current page.
	Action string
	// Values pre-populates controls with the current form state.
	Values map[string]string
	// View carries the result and error slots of the submission controller.
	View submission.View
	// Errors maps field names to presence messages produced before submit.
	Errors map[string][]string
	// Theme supplies resolved tokens and CSS variables for the page.
	Theme *theme.RendererConfig
}

// Banner derives the banner from the options' view.
func (o RenderOptions) Banner() Banner {
	return BannerFor(o.View)
}
