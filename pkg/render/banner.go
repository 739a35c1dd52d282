package render

import (
	"fmt"

	"github.com/goliatone/go-heartform/pkg/predict"
	"github.com/goliatone/go-heartform/pkg/submission"
)

// BannerKind identifies which slot produced a banner.
type BannerKind string

const (
	BannerNone   BannerKind = ""
	BannerError  BannerKind = "error"
	BannerResult BannerKind = "result"
)

// Severity drives the visual treatment of a banner.
type Severity string

const (
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

// Banner is the single notice shown beneath the form.
type Banner struct {
	Kind     BannerKind
	Severity Severity
	Message  string
}

// Visible reports whether anything should be displayed.
func (b Banner) Visible() bool {
	return b.Kind != BannerNone
}

// BannerFor maps the controller view onto the banner shown to the user. The
// error slot wins when both are somehow set.
func BannerFor(view submission.View) Banner {
	switch {
	case view.Error != "":
		return Banner{Kind: BannerError, Severity: SeverityError, Message: view.Error}
	case view.Result != nil:
		return ResultBanner(*view.Result)
	default:
		return Banner{}
	}
}

// ResultBanner formats a classification. Label 1 is high risk; any other label
// reads as low risk.
func ResultBanner(result predict.Result) Banner {
	if result.HighRisk() {
		return Banner{
			Kind:     BannerResult,
			Severity: SeverityError,
			Message:  fmt.Sprintf("High risk of heart disease (%s%% probability)", FormatProbability(result.Probability)),
		}
	}
	return Banner{
		Kind:     BannerResult,
		Severity: SeveritySuccess,
		Message:  fmt.Sprintf("Low risk of heart disease (%s%% probability)", FormatProbability(result.Probability)),
	}
}

// FormatProbability renders probability*100 with two decimals.
func FormatProbability(probability float64) string {
	return predict.Result{Probability: probability}.Percent()
}
