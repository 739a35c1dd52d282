package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-heartform/pkg/formstate"
	"github.com/goliatone/go-heartform/pkg/model"
	"github.com/goliatone/go-heartform/pkg/predict"
	"github.com/goliatone/go-heartform/pkg/render"
	"github.com/goliatone/go-heartform/pkg/submission"
	"github.com/goliatone/go-heartform/pkg/testsupport"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	inputConfigs []InputConfig
	selectConfig []SelectConfig
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectConfig = append(s.selectConfig, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

// scriptedContractDriver answers the thirteen contract prompts with the sample
// measurements.
func scriptedContractDriver() *stubDriver {
	return &stubDriver{
		// age, trestbps, chol, thalach, oldpeak
		inputs: []string{"63", "145", "233", "150", "2.3"},
		// sex=1, cp=3, fbs=1, restecg=0, exang=0, slope=0, ca=0, thal=1
		selectIdx: []int{0, 3, 0, 0, 1, 0, 0, 0},
	}
}

func TestCollect_ContractForm(t *testing.T) {
	driver := scriptedContractDriver()
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	state := formstate.NewDefault()
	if err := r.Collect(context.Background(), testsupport.ContractForm(t), state); err != nil {
		t.Fatalf("collect: %v", err)
	}

	if diff := cmp.Diff(testsupport.SampleMeasurements(), state.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if driver.inputPos != 5 || driver.selectPos != 8 {
		t.Fatalf("prompts not consumed as expected: inputs=%d selects=%d", driver.inputPos, driver.selectPos)
	}
	if diff := cmp.Diff([]string{"Male", "Female"}, driver.selectConfig[0].Options); diff != "" {
		t.Fatalf("sex options mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_RepromptsBlankRequiredField(t *testing.T) {
	driver := &stubDriver{inputs: []string{"  ", "abc"}}
	r, _ := New(WithPromptDriver(driver))

	form := model.FormModel{Fields: []model.Field{
		{Name: "age", Label: "Age", Input: model.InputNumber, Required: true},
	}}
	state := formstate.New("age")
	if err := r.Collect(context.Background(), form, state); err != nil {
		t.Fatalf("collect: %v", err)
	}

	if got, _ := state.Get("age"); got != "abc" {
		t.Fatalf("expected free-form value to be accepted, got %q", got)
	}
	if diff := cmp.Diff([]string{DefaultTheme.ErrorPrefix + "Age is required"}, driver.infoMessages); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_UsesStateAsDefaults(t *testing.T) {
	driver := &stubDriver{inputs: []string{"70"}, selectIdx: []int{1}}
	r, _ := New(WithPromptDriver(driver))

	form := model.FormModel{Fields: []model.Field{
		{Name: "age", Label: "Age", Input: model.InputNumber, Required: true},
		{Name: "sex", Label: "Sex", Input: model.InputSelect, Required: true, Options: []model.Option{
			{Value: "1", Label: "Male"}, {Value: "0", Label: "Female"},
		}},
	}}
	state := formstate.FromValues([]string{"age", "sex"}, map[string]string{"age": "63", "sex": "0"})
	if err := r.Collect(context.Background(), form, state); err != nil {
		t.Fatalf("collect: %v", err)
	}

	if driver.inputConfigs[0].Default != "63" {
		t.Fatalf("expected input default from state, got %q", driver.inputConfigs[0].Default)
	}
	if driver.selectConfig[0].DefaultIndex != 1 {
		t.Fatalf("expected select default index 1, got %d", driver.selectConfig[0].DefaultIndex)
	}
	want := map[string]string{"age": "70", "sex": "0"}
	if diff := cmp.Diff(want, state.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_InvalidSelection(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{5}}
	r, _ := New(WithPromptDriver(driver))

	form := model.FormModel{Fields: []model.Field{
		{Name: "sex", Input: model.InputSelect, Options: []model.Option{{Value: "1", Label: "Male"}}},
	}}
	err := r.Collect(context.Background(), form, formstate.New("sex"))
	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestCollect_NilState(t *testing.T) {
	r, _ := New(WithPromptDriver(&stubDriver{}))
	if err := r.Collect(context.Background(), model.FormModel{}, nil); !errors.Is(err, ErrNilState) {
		t.Fatalf("expected ErrNilState, got %v", err)
	}
}

func TestRender_JSONAndBanner(t *testing.T) {
	driver := scriptedContractDriver()
	r, _ := New(WithPromptDriver(driver))

	out, err := r.Render(context.Background(), testsupport.ContractForm(t), render.RenderOptions{
		View: submission.View{Result: &predict.Result{Prediction: 1, Probability: 0.8734}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if r.ContentType() != "application/json" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
	want := `{"age":"63","ca":"0","chol":"233","cp":"3","exang":"0","fbs":"1","oldpeak":"2.3","restecg":"0","sex":"1","slope":"0","thal":"1","thalach":"150","trestbps":"145"}`
	if string(out) != want {
		t.Fatalf("unexpected json\nwant: %s\n got: %s", want, out)
	}
	wantInfo := []string{DefaultTheme.ErrorPrefix + "High risk of heart disease (87.34% probability)"}
	if diff := cmp.Diff(wantInfo, driver.infoMessages); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_PrettyText(t *testing.T) {
	driver := &stubDriver{inputs: []string{"63"}, selectIdx: []int{0}}
	r, _ := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText))

	form := model.FormModel{Fields: []model.Field{
		{Name: "age", Label: "Age", Input: model.InputNumber},
		{Name: "fbs", Label: "Fasting Blood Sugar", Input: model.InputSelect, Options: []model.Option{
			{Value: "1", Label: "> 120 mg/dl"}, {Value: "0", Label: "≤ 120 mg/dl"},
		}},
	}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Age: 63\nFasting Blood Sugar: > 120 mg/dl\n"
	if string(out) != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, out)
	}
	if len(driver.infoMessages) != 0 {
		t.Fatalf("expected no banner without a view, got %v", driver.infoMessages)
	}
}

func TestShowBanner_LowRisk(t *testing.T) {
	driver := &stubDriver{}
	r, _ := New(WithPromptDriver(driver), WithTheme(Theme{SuccessPrefix: "[ok] ", ErrorPrefix: "[x] "}))

	banner := render.BannerFor(submission.View{Result: &predict.Result{Prediction: 0, Probability: 0.12}})
	if err := r.ShowBanner(context.Background(), banner); err != nil {
		t.Fatalf("show banner: %v", err)
	}
	want := []string{"[ok] Low risk of heart disease (12.00% probability)"}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}
}

func TestConfirm(t *testing.T) {
	driver := &stubDriver{confirm: []bool{true}}
	r, _ := New(WithPromptDriver(driver))
	ok, err := r.Confirm(context.Background(), "Submit again?", false)
	if err != nil || !ok {
		t.Fatalf("unexpected confirm result %v, %v", ok, err)
	}
}
