package submission

import "errors"

var (
	// ErrNilState is returned when Submit is invoked without a form state.
	ErrNilState = errors.New("submission: form state is nil")
	// ErrNilPredictor is returned when the controller has nowhere to send the
	// measurements.
	ErrNilPredictor = errors.New("submission: predictor is nil")
)
