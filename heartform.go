// Package heartform is the entry point for embedding the heart disease
// prediction form. It hides the internal loader and parser behind the public
// interfaces and re-exports the types most callers need.
package heartform

import (
	"context"
	"io/fs"

	internalLoader "github.com/goliatone/go-heartform/internal/openapi/loader"
	internalParser "github.com/goliatone/go-heartform/internal/openapi/parser"
	"github.com/goliatone/go-heartform/pkg/model"
	pkgopenapi "github.com/goliatone/go-heartform/pkg/openapi"
	"github.com/goliatone/go-heartform/pkg/orchestrator"
	"github.com/goliatone/go-heartform/pkg/render"
	"github.com/goliatone/go-heartform/pkg/renderers/vanilla"
)

// RenderOptions describes per-request values, field errors and the
// submission view that renderers draw.
type RenderOptions = render.RenderOptions

// FormModel aliases model.FormModel.
type FormModel = model.FormModel

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// LoadForm builds the prediction form model from the embedded contract.
func LoadForm(ctx context.Context, options ...orchestrator.Option) (FormModel, error) {
	return orchestrator.New(options...).Form(ctx)
}

// GenerateHTML renders the empty prediction form with the vanilla renderer.
func GenerateHTML(ctx context.Context, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Renderer:      vanilla.Name,
		RenderOptions: opts,
	})
}

// EmbeddedTemplates exposes the built-in page template so callers can reuse
// or extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the base stylesheet bundle for static serving.
//
// Typical mount:
//
//	r.Handle("/static/*",
//	  http.StripPrefix("/static/",
//	    http.FileServerFS(heartform.EmbeddedAssets()),
//	  ),
//	)
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
