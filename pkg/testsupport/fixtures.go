package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	internalparser "github.com/goliatone/go-heartform/internal/openapi/parser"
	"github.com/goliatone/go-heartform/pkg/contract"
	pkgmodel "github.com/goliatone/go-heartform/pkg/model"
	pkgopenapi "github.com/goliatone/go-heartform/pkg/openapi"
)

// SampleMeasurements is a complete, plausible set of form values.
func SampleMeasurements() map[string]string {
	return map[string]string{
		"age":      "63",
		"sex":      "1",
		"cp":       "3",
		"trestbps": "145",
		"chol":     "233",
		"fbs":      "1",
		"restecg":  "0",
		"thalach":  "150",
		"exang":    "0",
		"oldpeak":  "2.3",
		"slope":    "0",
		"ca":       "0",
		"thal":     "1",
	}
}

// ContractDocument wraps the embedded prediction contract in a Document.
func ContractDocument(t *testing.T) pkgopenapi.Document {
	t.Helper()

	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFS(contract.FileName), contract.Raw())
	if err != nil {
		t.Fatalf("contract document: %v", err)
	}
	return doc
}

// ContractOperation parses the embedded contract and returns the prediction
// operation.
func ContractOperation(t *testing.T) pkgopenapi.Operation {
	t.Helper()

	parser := internalparser.New(pkgopenapi.NewParserOptions())
	operations, err := parser.Operations(context.Background(), ContractDocument(t))
	if err != nil {
		t.Fatalf("parse contract: %v", err)
	}
	op, ok := operations[contract.OperationID]
	if !ok {
		t.Fatalf("contract is missing operation %q", contract.OperationID)
	}
	return op
}

// ContractForm builds the prediction form from the embedded contract.
func ContractForm(t *testing.T) pkgmodel.FormModel {
	t.Helper()

	form, err := pkgmodel.NewBuilder().Build(ContractOperation(t))
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	return form
}

// LoadDocument reads a fixture and builds an openapi.Document using a file
// source.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustLoadFormModel loads a JSON golden file into a FormModel structure.
func MustLoadFormModel(t *testing.T, path string) pkgmodel.FormModel {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read form model: %v", err)
	}
	var out pkgmodel.FormModel
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal form model: %v", err)
	}
	return out
}

// WriteFormModel writes a form model golden when UPDATE_GOLDENS is enabled.
func WriteFormModel(t *testing.T, path string, value pkgmodel.FormModel) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal form model: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
