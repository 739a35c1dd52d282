package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-heartform/pkg/model"
	"github.com/goliatone/go-heartform/pkg/render"
	rendertemplate "github.com/goliatone/go-heartform/pkg/render/template"
	gotemplate "github.com/goliatone/go-heartform/pkg/render/template/gotemplate"
)

// Name is the registry key of the HTML renderer.
const Name = "vanilla"

const pageTemplate = "templates/form.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       string
	stylesheetURL    string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/form.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet replaces the inlined base stylesheet.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = css
	}
}

// WithStylesheetURL links an external stylesheet, typically the theme
// variables served by the web front end.
func WithStylesheetURL(url string) Option {
	return func(cfg *config) {
		cfg.stylesheetURL = url
	}
}

// Renderer emits the prediction form as a standalone HTML page.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	stylesheet    string
	stylesheetURL string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), stylesheet: defaultStylesheet()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:     renderer,
		stylesheet:    cfg.stylesheet,
		stylesheetURL: cfg.stylesheetURL,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the page: one control per field in form order, the submit
// button, and the banner derived from options.View.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate(pageTemplate, r.pageData(form, options))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) pageData(form model.FormModel, options render.RenderOptions) map[string]any {
	submitLabel := form.SubmitLabel
	if submitLabel == "" {
		submitLabel = "Submit"
	}

	data := map[string]any{
		"title":        form.Title,
		"action":       options.Action,
		"submit_label": submitLabel,
		"fields":       buildFieldViews(form, options),
		"stylesheet":   r.stylesheet,
		"classes": map[string]string{
			"page":    string(ClassPage),
			"form":    string(ClassForm),
			"header":  string(ClassHeader),
			"grid":    string(ClassGrid),
			"field":   string(ClassField),
			"actions": string(ClassActions),
			"errors":  string(ClassErrors),
			"help":    string(ClassHelp),
		},
	}

	cfg := options.Theme
	if cfg == nil {
		cfg = render.ThemeConfig(nil, "")
	}
	data["theme_name"] = cfg.Theme
	data["theme_variant"] = cfg.Variant
	data["css_vars"] = render.Stylesheet(cfg)
	stylesheetURL := r.stylesheetURL
	if cfg.AssetURL != nil {
		if url := cfg.AssetURL("stylesheet"); url != "" {
			stylesheetURL = url
		}
	}
	data["theme_stylesheet"] = stylesheetURL

	if banner := options.Banner(); banner.Visible() {
		role := "status"
		if banner.Kind == render.BannerError {
			role = "alert"
		}
		data["banner"] = map[string]string{
			"class":    bannerClass(string(banner.Severity)),
			"role":     role,
			"severity": string(banner.Severity),
			"message":  banner.Message,
		}
	}
	return data
}
