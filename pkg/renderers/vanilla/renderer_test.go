package vanilla_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-heartform/pkg/formstate"
	"github.com/goliatone/go-heartform/pkg/predict"
	"github.com/goliatone/go-heartform/pkg/render"
	"github.com/goliatone/go-heartform/pkg/renderers/vanilla"
	"github.com/goliatone/go-heartform/pkg/submission"
	"github.com/goliatone/go-heartform/pkg/testsupport"
)

func renderPage(t *testing.T, options render.RenderOptions) string {
	t.Helper()

	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), testsupport.ContractForm(t), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRender_EmptyForm(t *testing.T) {
	page := renderPage(t, render.RenderOptions{})

	mustContain(t, page,
		"<title>Heart Disease Prediction</title>",
		`<h1 class="heartform-header">Heart Disease Prediction</h1>`,
		`<form class="heartform-form" method="post" action="">`,
		`<button type="submit">Predict</button>`,
		`<input id="hf-age" name="age" type="number" value="" required>`,
		`<input id="hf-oldpeak" name="oldpeak" type="number" step="0.1" value="" required>`,
		`<select id="hf-sex" name="sex" required>`,
		`<option value="1">Male</option>`,
		`<option value="0">Female</option>`,
		`<option value="1">&gt; 120 mg/dl</option>`,
		`<option value="3">Reversible Defect</option>`,
		"--accent: #2563eb;",
	)
	if strings.Contains(page, "heartform-banner") {
		t.Fatalf("expected no banner before the first submission")
	}

	for _, name := range formstate.FormFields {
		if !strings.Contains(page, `name="`+name+`"`) {
			t.Fatalf("missing control for %q", name)
		}
	}
	if got := strings.Count(page, " required"); got != len(formstate.FormFields) {
		t.Fatalf("expected %d required controls, got %d", len(formstate.FormFields), got)
	}
}

func TestRender_FieldOrder(t *testing.T) {
	page := renderPage(t, render.RenderOptions{})

	last := -1
	for _, name := range formstate.FormFields {
		idx := strings.Index(page, `name="`+name+`"`)
		if idx < last {
			t.Fatalf("field %q rendered out of order", name)
		}
		last = idx
	}
}

func TestRender_PrefilledValues(t *testing.T) {
	page := renderPage(t, render.RenderOptions{Values: testsupport.SampleMeasurements()})

	mustContain(t, page,
		`<input id="hf-age" name="age" type="number" value="63" required>`,
		`<input id="hf-oldpeak" name="oldpeak" type="number" step="0.1" value="2.3" required>`,
		`<option value="3" selected>Asymptomatic</option>`,
		`<option value="1" selected>Male</option>`,
	)
}

func TestRender_Banners(t *testing.T) {
	cases := []struct {
		name string
		view submission.View
		want []string
	}{
		{
			name: "high risk",
			view: submission.View{Result: &predict.Result{Prediction: 1, Probability: 0.8734}},
			want: []string{
				`class="heartform-banner heartform-banner--error" role="status" data-severity="error"`,
				"High risk of heart disease (87.34% probability)",
			},
		},
		{
			name: "low risk",
			view: submission.View{Result: &predict.Result{Prediction: 0, Probability: 0.12}},
			want: []string{
				`class="heartform-banner heartform-banner--success" role="status" data-severity="success"`,
				"Low risk of heart disease (12.00% probability)",
			},
		},
		{
			name: "error",
			view: submission.View{Error: "model unavailable"},
			want: []string{
				`class="heartform-banner heartform-banner--error" role="alert" data-severity="error"`,
				">model unavailable</div>",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mustContain(t, renderPage(t, render.RenderOptions{View: tc.view}), tc.want...)
		})
	}
}

func TestRender_EscapesServerMessagesVerbatim(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "markup",
			message: `<b>Model</b> not trained`,
			want:    ">&lt;b&gt;Model&lt;/b&gt; not trained</div>",
		},
		{
			name:    "bracketed value",
			message: "could not convert string to float: '<abc>'",
			want:    ">could not convert string to float: &#39;&lt;abc&gt;&#39;</div>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := renderPage(t, render.RenderOptions{View: submission.View{Error: tc.message}})
			if strings.Contains(page, "<b>") || strings.Contains(page, "<abc>") {
				t.Fatalf("expected server message to be escaped")
			}
			mustContain(t, page, tc.want)
		})
	}
}

func TestRender_FieldDescriptions(t *testing.T) {
	form := testsupport.ContractForm(t)
	for i := range form.Fields {
		if form.Fields[i].Name == "chol" {
			form.Fields[i].Description = `Serum <abbr title="cholesterol" onclick="x()">chol</abbr> in <em>mg/dl</em><script>alert(1)</script>`
		}
	}

	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)

	mustContain(t, page,
		`<small class="heartform-help">Age in years.</small>`,
		`<small class="heartform-help">Serum <abbr title="cholesterol">chol</abbr> in <em>mg/dl</em></small>`,
	)
	if strings.Contains(page, "<script>") || strings.Contains(page, "onclick") {
		t.Fatalf("expected unsafe description markup to be dropped")
	}
}

func TestRender_MissingFieldErrors(t *testing.T) {
	form := testsupport.ContractForm(t)
	page := renderPage(t, render.RenderOptions{
		Errors: render.MissingErrors(form, []string{"chol"}),
	})
	mustContain(t, page,
		`<input id="hf-chol" name="chol" type="number" value="" required aria-invalid="true" aria-describedby="hf-chol-error">`,
		`<p id="hf-chol-error" class="heartform-errors">This field is required</p>`,
	)
}

func TestRender_ThemeConfig(t *testing.T) {
	cfg := render.ThemeConfig(nil, "")
	cfg.Theme = "clinic"
	cfg.Variant = "dark"
	cfg.CSSVars = map[string]string{"--accent": "#0f766e"}

	page := renderPage(t, render.RenderOptions{Theme: cfg})
	mustContain(t, page,
		`data-theme="clinic" data-theme-variant="dark"`,
		"--accent: #0f766e;",
	)
}

func TestRenderer_Metadata(t *testing.T) {
	renderer, err := vanilla.New(vanilla.WithStylesheet(""), vanilla.WithStylesheetURL("/assets/theme.css"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}

	out, err := renderer.Render(context.Background(), testsupport.ContractForm(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	mustContain(t, string(out), `<link rel="stylesheet" href="/assets/theme.css">`)
}

func TestAssetsFS(t *testing.T) {
	data, err := vanilla.AssetsFS().Open(vanilla.StylesheetName)
	if err != nil {
		t.Fatalf("open stylesheet: %v", err)
	}
	_ = data.Close()
}

func mustContain(t *testing.T, page string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(page, fragment) {
			t.Fatalf("expected page to contain %q\npage:\n%s", fragment, page)
		}
	}
}
