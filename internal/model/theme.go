package model

import "regexp"

type FontStyle string

const (
	FontSans       FontStyle = "sans"
	FontSerif      FontStyle = "serif"
	FontMono       FontStyle = "mono"
	FontLora       FontStyle = "lora"
	FontEB         FontStyle = "eb"
	FontMontserrat FontStyle = "montserrat"
)

func (f FontStyle) IsValid() bool {
	switch f {
	case FontSans, FontSerif, FontMono, FontLora, FontEB, FontMontserrat:
		return true
	default:
		return false
	}
}

type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

func (f FontSize) IsValid() bool {
	switch f {
	case FontSizeSmall, FontSizeMedium, FontSizeLarge:
		return true
	default:
		return false
	}
}

const (
	DefaultGradient  = "linear-gradient(90deg, #6366f1, #a855f7, #ec4899)"
	DefaultFontColor = "#ffffff"
)

// ThemeSettings carries display preferences. Unrecognized values fall back
// to defaults at render time, not at write time.
type ThemeSettings struct {
	FontFamily      FontStyle
	PrimaryGradient string
	FontSize        FontSize
	FontColor       string
}

func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		FontFamily:      FontSans,
		PrimaryGradient: DefaultGradient,
		FontSize:        FontSizeMedium,
		FontColor:       DefaultFontColor,
	}
}

// ThemePatch is a partial theme update; nil fields are left untouched.
type ThemePatch struct {
	FontFamily      *FontStyle
	PrimaryGradient *string
	FontSize        *FontSize
	FontColor       *string
}

// Merge applies the patch shallowly over the receiver.
func (t ThemeSettings) Merge(patch ThemePatch) ThemeSettings {
	out := t
	if patch.FontFamily != nil {
		out.FontFamily = *patch.FontFamily
	}
	if patch.PrimaryGradient != nil {
		out.PrimaryGradient = *patch.PrimaryGradient
	}
	if patch.FontSize != nil {
		out.FontSize = *patch.FontSize
	}
	if patch.FontColor != nil {
		out.FontColor = *patch.FontColor
	}
	return out
}

var hexColorPattern = regexp.MustCompile(`#[a-fA-F0-9]{6}`)

// GradientStops extracts the six-digit hex colors from a gradient
// descriptor. Fewer than two matches fall back to the default stops.
func (t ThemeSettings) GradientStops() (string, string) {
	matches := hexColorPattern.FindAllString(t.PrimaryGradient, -1)
	start, end := "#6366f1", "#ec4899"
	if len(matches) > 0 {
		start = matches[0]
	}
	if len(matches) > 1 {
		end = matches[1]
	}
	return start, end
}
