package domain

import "strings"

// BackgroundStyle is the cosmetic class used to theme the page
type BackgroundStyle string

const (
	BackgroundRain    BackgroundStyle = "rain-bg"
	BackgroundCloud   BackgroundStyle = "cloud-bg"
	BackgroundSnow    BackgroundStyle = "snow-bg"
	BackgroundClear   BackgroundStyle = "clear-bg"
	BackgroundDefault BackgroundStyle = "default-bg"
)

// backgroundRules are checked in order, first match wins.
// "light rain and snow" is a rain day.
var backgroundRules = []struct {
	keyword string
	style   BackgroundStyle
}{
	{"rain", BackgroundRain},
	{"cloud", BackgroundCloud},
	{"snow", BackgroundSnow},
	{"clear", BackgroundClear},
}

// ClassifyBackground maps a weather description to exactly one style
func ClassifyBackground(desc string) BackgroundStyle {
	d := strings.ToLower(desc)
	for _, rule := range backgroundRules {
		if strings.Contains(d, rule.keyword) {
			return rule.style
		}
	}
	return BackgroundDefault
}
