package submission

import "github.com/goliatone/go-heartform/pkg/predict"

// View is the display snapshot of a controller: at most one of Result and
// Error is set. Both are empty before the first submission settles and while a
// submission is in flight.
type View struct {
	Result *predict.Result
	Error  string
}

// Empty reports whether neither slot holds a value.
func (v View) Empty() bool {
	return v.Result == nil && v.Error == ""
}

// HasResult reports whether a classification is available.
func (v View) HasResult() bool {
	return v.Result != nil
}

// HasError reports whether the last submission failed.
func (v View) HasError() bool {
	return v.Error != ""
}

func (v View) clone() View {
	if v.Result == nil {
		return v
	}
	result := *v.Result
	return View{Result: &result, Error: v.Error}
}

// Outcome describes a settled submission.
type Outcome struct {
	AttemptID string
	View      View
	// Err is the underlying failure, nil on success.
	Err error
}

// Succeeded reports whether the attempt produced a classification.
func (o Outcome) Succeeded() bool {
	return o.Err == nil && o.View.Result != nil
}
