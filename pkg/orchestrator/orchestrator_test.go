package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-heartform/pkg/formstate"
	"github.com/goliatone/go-heartform/pkg/model"
	pkgopenapi "github.com/goliatone/go-heartform/pkg/openapi"
	"github.com/goliatone/go-heartform/pkg/orchestrator"
	"github.com/goliatone/go-heartform/pkg/predict"
	"github.com/goliatone/go-heartform/pkg/render"
	"github.com/goliatone/go-heartform/pkg/submission"
)

func TestOrchestrator_DefaultPipelineUsesEmbeddedContract(t *testing.T) {
	orch := orchestrator.New()

	form, err := orch.Form(context.Background())
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if diff := cmp.Diff(formstate.FormFields, form.FieldNames()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	output, err := orch.Generate(context.Background(), orchestrator.Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(output)
	for _, want := range []string{"Heart Disease Prediction", "Predict", `name="thal"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
}

func TestOrchestrator_FormIsBuiltOnce(t *testing.T) {
	parser := &stubParser{operations: map[string]pkgopenapi.Operation{
		"predictHeartDisease": stubOperation(),
	}}
	orch := orchestrator.New(
		orchestrator.WithParser(parser),
		orchestrator.WithRegistry(registryWith(&captureRenderer{})),
		orchestrator.WithDefaultRenderer("capture"),
	)

	for i := 0; i < 3; i++ {
		if _, err := orch.Generate(context.Background(), orchestrator.Request{}); err != nil {
			t.Fatalf("generate %d: %v", i, err)
		}
	}
	if got := parser.calls.Load(); got != 1 {
		t.Fatalf("expected parser to run once, ran %d times", got)
	}
}

func TestOrchestrator_UnknownOperation(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithOperationID("missing"))

	_, err := orch.Form(context.Background())
	if err == nil || !strings.Contains(err.Error(), `operation "missing" not found`) {
		t.Fatalf("expected missing operation error, got %v", err)
	}
}

func TestOrchestrator_FormErrorsAreNotCached(t *testing.T) {
	parser := &stubParser{err: errors.New("boom")}
	orch := orchestrator.New(orchestrator.WithParser(parser))

	if _, err := orch.Form(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}

	parser.err = nil
	parser.operations = map[string]pkgopenapi.Operation{"predictHeartDisease": stubOperation()}
	if _, err := orch.Form(context.Background()); err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
}

func TestOrchestrator_ForwardsRenderOptionsAndTheme(t *testing.T) {
	capture := &captureRenderer{}
	cfg := &theme.RendererConfig{Theme: "clinic", Variant: "dark"}
	orch := orchestrator.New(
		orchestrator.WithRegistry(registryWith(capture)),
		orchestrator.WithTheme(cfg),
	)

	result := predict.Result{Prediction: predict.HighRisk, Probability: 0.5}
	opts := render.RenderOptions{
		Values: map[string]string{"age": "63"},
		View:   submission.View{Result: &result},
	}
	if _, err := orch.Generate(context.Background(), orchestrator.Request{Renderer: "capture", RenderOptions: opts}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if capture.options.Theme != cfg {
		t.Fatalf("expected default theme to be forwarded")
	}
	if got := capture.options.Values["age"]; got != "63" {
		t.Fatalf("expected values to be forwarded, got %q", got)
	}
	if !capture.options.View.HasResult() {
		t.Fatalf("expected view to be forwarded")
	}
	if capture.form.OperationID != "predictHeartDisease" {
		t.Fatalf("unexpected form operation %q", capture.form.OperationID)
	}
}

func TestOrchestrator_RequestThemeWins(t *testing.T) {
	capture := &captureRenderer{}
	orch := orchestrator.New(
		orchestrator.WithRegistry(registryWith(capture)),
		orchestrator.WithTheme(&theme.RendererConfig{Theme: "default"}),
	)

	override := &theme.RendererConfig{Theme: "override"}
	_, err := orch.Generate(context.Background(), orchestrator.Request{
		RenderOptions: render.RenderOptions{Theme: override},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if capture.options.Theme != override {
		t.Fatalf("expected request theme to win")
	}
}

func TestOrchestrator_UnknownRenderer(t *testing.T) {
	orch := orchestrator.New()

	_, err := orch.Generate(context.Background(), orchestrator.Request{Renderer: "nope"})
	if err == nil || !strings.Contains(err.Error(), `renderer "nope"`) {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestOrchestrator_FallsBackToFirstRegisteredRenderer(t *testing.T) {
	capture := &captureRenderer{}
	orch := orchestrator.New(orchestrator.WithRegistry(registryWith(capture)))

	renderer, err := orch.Renderer("")
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	if renderer.Name() != "capture" {
		t.Fatalf("expected capture renderer, got %q", renderer.Name())
	}
}

func TestOrchestrator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := orchestrator.New().Generate(ctx, orchestrator.Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type stubParser struct {
	operations map[string]pkgopenapi.Operation
	err        error
	calls      atomic.Int32
}

func (s *stubParser) Operations(context.Context, pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.operations, nil
}

type captureRenderer struct {
	form    model.FormModel
	options render.RenderOptions
}

func (c *captureRenderer) Name() string        { return "capture" }
func (c *captureRenderer) ContentType() string { return "text/plain" }

func (c *captureRenderer) Render(_ context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	c.form = form
	c.options = options
	return []byte(form.OperationID), nil
}

func registryWith(renderers ...render.Renderer) *render.Registry {
	registry := render.NewRegistry()
	for _, renderer := range renderers {
		registry.MustRegister(renderer)
	}
	return registry
}

func stubOperation() pkgopenapi.Operation {
	schema := pkgopenapi.Schema{
		Type:     "object",
		Required: []string{"age"},
		Properties: map[string]pkgopenapi.Schema{
			"age": {Type: "string"},
		},
	}
	return pkgopenapi.MustNewOperation("predictHeartDisease", "POST", "/predict", schema, nil)
}
