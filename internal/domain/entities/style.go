package entities

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// RGB is a 24-bit color
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// White is used for text over filled backgrounds
var White = RGB{R: 255, G: 255, B: 255}

// Hex returns the color as RRGGBB, the form OOXML srgbClr expects
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the color as #RRGGBB
func (c RGB) String() string {
	return "#" + c.Hex()
}

// MarshalText implements encoding.TextMarshaler
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseRGB parses "#RRGGBB" or "RRGGBB"
func ParseRGB(s string) (RGB, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}

	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return RGB{R: raw[0], G: raw[1], B: raw[2]}, nil
}

// ColorScheme is the four-color palette of a deck
type ColorScheme struct {
	Primary   RGB `yaml:"primary" json:"primary"`
	Secondary RGB `yaml:"secondary" json:"secondary"`
	Accent    RGB `yaml:"accent" json:"accent"`
	Text      RGB `yaml:"text" json:"text"`
}

// DefaultColorScheme is the blue-purple palette of the cloud security deck
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Primary:   RGB{R: 102, G: 126, B: 234},
		Secondary: RGB{R: 118, G: 75, B: 162},
		Accent:    RGB{R: 240, G: 147, B: 251},
		Text:      RGB{R: 30, G: 41, B: 59},
	}
}

// Typography holds the font sizes (points) used by a deck
type Typography struct {
	Title    int `toml:"title" yaml:"title"`
	Heading  int `toml:"heading" yaml:"heading"`
	Body     int `toml:"body" yaml:"body"`
	Detail   int `toml:"detail" yaml:"detail"`
	Emphasis int `toml:"emphasis" yaml:"emphasis"`

	CoverTitle    int `toml:"cover_title" yaml:"cover_title"`
	CoverSubtitle int `toml:"cover_subtitle" yaml:"cover_subtitle"`
	CoverDate     int `toml:"cover_date" yaml:"cover_date"`

	ClosingTitle    int `toml:"closing_title" yaml:"closing_title"`
	ClosingSubtitle int `toml:"closing_subtitle" yaml:"closing_subtitle"`
}

// DefaultTypography returns the stock font sizes
func DefaultTypography() Typography {
	return Typography{
		Title:           40,
		Heading:         24,
		Body:            20,
		Detail:          18,
		Emphasis:        22,
		CoverTitle:      44,
		CoverSubtitle:   24,
		CoverDate:       18,
		ClosingTitle:    54,
		ClosingSubtitle: 28,
	}
}

// Validate ensures every size is positive
func (t Typography) Validate() error {
	sizes := map[string]int{
		"title":            t.Title,
		"heading":          t.Heading,
		"body":             t.Body,
		"detail":           t.Detail,
		"emphasis":         t.Emphasis,
		"cover_title":      t.CoverTitle,
		"cover_subtitle":   t.CoverSubtitle,
		"cover_date":       t.CoverDate,
		"closing_title":    t.ClosingTitle,
		"closing_subtitle": t.ClosingSubtitle,
	}
	for name, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("font size %s must be positive", name)
		}
	}
	return nil
}

// Spacing holds paragraph gaps (points)
type Spacing struct {
	List    int `toml:"list" yaml:"list"`
	Item    int `toml:"item" yaml:"item"`
	Group   int `toml:"group" yaml:"group"`
	Section int `toml:"section" yaml:"section"`
	Quote   int `toml:"quote" yaml:"quote"`
}

// DefaultSpacing returns the stock paragraph gaps
func DefaultSpacing() Spacing {
	return Spacing{
		List:    8,
		Item:    12,
		Group:   15,
		Section: 20,
		Quote:   25,
	}
}

// Validate ensures no gap is negative
func (s Spacing) Validate() error {
	if s.List < 0 || s.Item < 0 || s.Group < 0 || s.Section < 0 || s.Quote < 0 {
		return fmt.Errorf("paragraph spacing must be non-negative")
	}
	return nil
}

// Style is the immutable formatting configuration handed to a deck source.
// It is passed by value; nothing mutates it after construction.
type Style struct {
	Colors     ColorScheme `yaml:"colors" json:"colors"`
	Typography Typography  `yaml:"typography" json:"typography"`
	Spacing    Spacing     `yaml:"spacing" json:"spacing"`
}

// DefaultStyle returns the stock style
func DefaultStyle() Style {
	return Style{
		Colors:     DefaultColorScheme(),
		Typography: DefaultTypography(),
		Spacing:    DefaultSpacing(),
	}
}

// Validate validates the style
func (s Style) Validate() error {
	if err := s.Typography.Validate(); err != nil {
		return fmt.Errorf("typography: %w", err)
	}
	if err := s.Spacing.Validate(); err != nil {
		return fmt.Errorf("spacing: %w", err)
	}
	return nil
}
