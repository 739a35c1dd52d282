package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-heartform/internal/logging"
	"github.com/goliatone/go-heartform/internal/web"
	"github.com/goliatone/go-heartform/pkg/orchestrator"
	"github.com/goliatone/go-heartform/pkg/predict"
	"github.com/goliatone/go-heartform/pkg/predict/predicttest"
	"github.com/goliatone/go-heartform/pkg/testsupport"
)

func newServer(t *testing.T, responses ...predicttest.Response) (*httptest.Server, *predicttest.Server) {
	t.Helper()

	backend := predicttest.NewServer(responses...)
	t.Cleanup(backend.Close)

	srv, err := web.NewServer(orchestrator.New(),
		predict.NewClient(predict.WithBaseURL(backend.URL)),
		web.WithLogger(logging.Discard()),
	)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	front := httptest.NewServer(srv.Handler())
	t.Cleanup(front.Close)
	return front, backend
}

func postMeasurements(t *testing.T, front *httptest.Server, values map[string]string) (int, string) {
	t.Helper()

	form := url.Values{}
	for name, value := range values {
		form.Set(name, value)
	}
	resp, err := http.PostForm(front.URL+"/", form)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}

func TestServer_FormPage(t *testing.T) {
	front, backend := newServer(t)

	resp, err := http.Get(front.URL + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(body, "Heart Disease Prediction") {
		t.Fatalf("expected title in page")
	}
	if strings.Contains(body, "risk of heart disease") {
		t.Fatalf("expected no banner on an empty form")
	}
	if got := len(backend.Requests()); got != 0 {
		t.Fatalf("expected no outbound request, got %d", got)
	}
}

func TestServer_SubmitHighRisk(t *testing.T) {
	front, backend := newServer(t, predicttest.Success(1, 0.8734))

	status, body := postMeasurements(t, front, testsupport.SampleMeasurements())
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	if !strings.Contains(body, "High risk of heart disease (87.34% probability)") {
		t.Fatalf("expected high risk banner, got:\n%s", body)
	}
	if !strings.Contains(body, `value="63"`) {
		t.Fatalf("expected posted values to be re-rendered")
	}

	requests := backend.Requests()
	if len(requests) != 1 {
		t.Fatalf("expected one outbound request, got %d", len(requests))
	}
	if diff := cmp.Diff(testsupport.SampleMeasurements(), requests[0].Payload); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestServer_SubmitRendersInPlace(t *testing.T) {
	front, _ := newServer(t, predicttest.Success(0, 0.12))

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	form := url.Values{}
	for name, value := range testsupport.SampleMeasurements() {
		form.Set(name, value)
	}
	resp, err := client.PostForm(front.URL+"/", form)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected in-place render, got status %d", resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); location != "" {
		t.Fatalf("expected no navigation, got Location %q", location)
	}
	if !strings.Contains(body, "Low risk of heart disease (12.00% probability)") {
		t.Fatalf("expected result banner on the submitted page, got:\n%s", body)
	}
}

func TestServer_SubmitServerError(t *testing.T) {
	front, _ := newServer(t, predicttest.Failure(http.StatusServiceUnavailable, "model unavailable"))

	_, body := postMeasurements(t, front, testsupport.SampleMeasurements())
	if !strings.Contains(body, ">model unavailable</div>") {
		t.Fatalf("expected server error message, got:\n%s", body)
	}
	if !strings.Contains(body, `role="alert"`) {
		t.Fatalf("expected alert banner")
	}
}

func TestServer_SubmitMissingFieldsSkipsPrediction(t *testing.T) {
	front, backend := newServer(t, predicttest.Success(0, 0.12))

	values := testsupport.SampleMeasurements()
	delete(values, "chol")

	status, body := postMeasurements(t, front, values)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status %d", status)
	}
	if !strings.Contains(body, "This field is required") {
		t.Fatalf("expected required message")
	}
	if got := len(backend.Requests()); got != 0 {
		t.Fatalf("expected no outbound request, got %d", got)
	}
}

func TestServer_Health(t *testing.T) {
	front, _ := newServer(t)

	resp, err := http.Get(front.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if body := readBody(t, resp); !strings.Contains(body, `"status":"ok"`) {
		t.Fatalf("unexpected health body %q", body)
	}
}

func TestServer_ThemeStylesheet(t *testing.T) {
	front, _ := newServer(t)

	resp, err := http.Get(front.URL + web.ThemeStylesheetPath)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if body := readBody(t, resp); !strings.Contains(body, "--accent: #2563eb;") {
		t.Fatalf("expected accent token, got %q", body)
	}
}

func TestNewServer_RequiresOrchestrator(t *testing.T) {
	if _, err := web.NewServer(nil, nil); err != web.ErrNilOrchestrator {
		t.Fatalf("expected ErrNilOrchestrator, got %v", err)
	}
}
