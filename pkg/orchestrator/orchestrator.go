package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-heartform/internal/openapi/loader"
	internalParser "github.com/goliatone/go-heartform/internal/openapi/parser"
	"github.com/goliatone/go-heartform/pkg/contract"
	"github.com/goliatone/go-heartform/pkg/model"
	pkgopenapi "github.com/goliatone/go-heartform/pkg/openapi"
	"github.com/goliatone/go-heartform/pkg/render"
	"github.com/goliatone/go-heartform/pkg/renderers/vanilla"
)

const defaultRendererName = vanilla.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSource reads the contract from src instead of the embedded copy.
func WithSource(src pkgopenapi.Source) Option {
	return func(o *Orchestrator) {
		o.source = src
	}
}

// WithOperationID selects the operation that becomes the form.
func WithOperationID(id string) Option {
	return func(o *Orchestrator) {
		if id != "" {
			o.operationID = id
		}
	}
}

// WithTheme sets the theme configuration applied when a request carries none.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(o *Orchestrator) {
		o.theme = cfg
	}
}

// Orchestrator coordinates the pipeline from the prediction contract to
// rendered output. Defaults: embedded contract, kin-openapi parser, vanilla
// renderer.
type Orchestrator struct {
	loader          pkgopenapi.Loader
	parser          pkgopenapi.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	source          pkgopenapi.Source
	operationID     string
	theme           *theme.RendererConfig
	initialiseErr   error

	mu   sync.Mutex
	form *model.FormModel
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		operationID:     contract.OperationID,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// Renderer names the renderer to use. Empty falls back to the default.
	Renderer string

	// RenderOptions carries the form values, controller view and field errors.
	RenderOptions render.RenderOptions
}

// Form returns the form model, loading and parsing the contract on first use.
// Failures are not cached so a later call may succeed.
func (o *Orchestrator) Form(ctx context.Context) (model.FormModel, error) {
	if ctx == nil {
		return model.FormModel{}, errors.New("orchestrator: context is required")
	}
	if err := o.initialiseErr; err != nil {
		return model.FormModel{}, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.form != nil {
		return *o.form, nil
	}

	doc, err := o.loader.Load(ctx, o.source)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	op, ok := operations[o.operationID]
	if !ok {
		return model.FormModel{}, fmt.Errorf("orchestrator: operation %q not found", o.operationID)
	}
	form, err := o.builder.Build(op)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}

	o.form = &form
	return form, nil
}

// Generate renders the form with the requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	form, err := o.Form(ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := o.Renderer(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil {
		opts.Theme = o.theme
	}

	output, err := renderer.Render(ctx, form, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderer resolves name against the registry, falling back to the default
// renderer and then to the first registered one when name is empty.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

// Registry exposes the renderer registry so callers can add front ends.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Theme returns the default theme configuration.
func (o *Orchestrator) Theme() *theme.RendererConfig {
	return o.theme
}

func (o *Orchestrator) applyDefaults() {
	if o.source == nil {
		o.source = pkgopenapi.SourceFromFS(contract.FileName)
		if o.loader == nil {
			o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions(
				pkgopenapi.WithFileSystem(contract.FS()),
			))
		}
	}
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithDefaultSources()))
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.theme == nil {
		o.theme = render.ThemeConfig(nil, "")
	}
}
