package render

import (
	"context"

	"github.com/goliatone/go-heartform/pkg/model"
)

// Renderer converts the prediction form plus the current display state into a
// byte representation (HTML page, terminal text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
