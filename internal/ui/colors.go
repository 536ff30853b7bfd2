package ui

// The Color* helpers read the active theme so callers never need to hold
// a Theme value themselves; output built from them still reads as plain
// text when NO_COLOR strips these to empty strings.
func ColorPrimary() string   { return GetCurrentTheme().Primary }
func ColorSuccess() string   { return GetCurrentTheme().Success }
func ColorWarning() string   { return GetCurrentTheme().Warning }
func ColorError() string     { return GetCurrentTheme().Error }
func ColorUnderline() string { return GetCurrentTheme().Underline }
func ColorReset() string     { return GetCurrentTheme().Reset }
