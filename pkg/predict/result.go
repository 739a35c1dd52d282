package predict

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Label is the binary risk indicator returned by the service.
type Label int

const (
	LowRisk  Label = 0
	HighRisk Label = 1
)

// Result is the classification returned by the remote service.
type Result struct {
	Prediction  Label   `json:"prediction"`
	Probability float64 `json:"probability"`
}

// HighRisk reports whether the service classified the measurements as high
// risk. Any label other than 1 counts as low risk.
func (r Result) HighRisk() bool {
	return r.Prediction == HighRisk
}

// Percent returns the probability as a percentage formatted with two decimals,
// for example "87.34".
func (r Result) Percent() string {
	return fmt.Sprintf("%.2f", r.Probability*100)
}

// decodeResult parses a success body. Both keys must be present; anything else
// is a malformed response.
func decodeResult(body []byte) (Result, error) {
	var probe struct {
		Prediction  *json.Number `json:"prediction"`
		Probability *json.Number `json:"probability"`
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&probe); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if probe.Prediction == nil || probe.Probability == nil {
		return Result{}, fmt.Errorf("%w: prediction and probability are required", ErrMalformedResponse)
	}

	label, err := probe.Prediction.Int64()
	if err != nil {
		return Result{}, fmt.Errorf("%w: prediction: %v", ErrMalformedResponse, err)
	}
	probability, err := probe.Probability.Float64()
	if err != nil {
		return Result{}, fmt.Errorf("%w: probability: %v", ErrMalformedResponse, err)
	}
	return Result{Prediction: Label(label), Probability: probability}, nil
}

// decodeErrorMessage extracts the "error" string of a failure body. Any other
// shape yields "".
func decodeErrorMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	message, _ := payload["error"].(string)
	return message
}
