package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassPage    ChromeClass = "heartform-page"
	ClassForm    ChromeClass = "heartform-form"
	ClassHeader  ChromeClass = "heartform-header"
	ClassGrid    ChromeClass = "heartform-grid"
	ClassField   ChromeClass = "heartform-field"
	ClassActions ChromeClass = "heartform-actions"
	ClassErrors  ChromeClass = "heartform-errors"
	ClassHelp    ChromeClass = "heartform-help"
	ClassBanner  ChromeClass = "heartform-banner"
)

// bannerClass returns the modifier class for a banner severity, for example
// "heartform-banner--success".
func bannerClass(severity string) string {
	if severity == "" {
		return string(ClassBanner)
	}
	return string(ClassBanner) + " " + string(ClassBanner) + "--" + severity
}
