package entities

import (
	"errors"
	"fmt"
	"math"
)

// EMU is an OOXML length: 914400 per inch, 12700 per point
type EMU int64

const (
	EMUPerInch  EMU = 914400
	EMUPerPoint EMU = 12700
)

// Inches converts a length in inches to EMU
func Inches(v float64) EMU {
	return EMU(math.Round(v * float64(EMUPerInch)))
}

// Points converts a length in points to EMU
func Points(v float64) EMU {
	return EMU(math.Round(v * float64(EMUPerPoint)))
}

// InchesValue returns the length in inches
func (e EMU) InchesValue() float64 {
	return float64(e) / float64(EMUPerInch)
}

// Standard 4:3 page, 10in x 7.5in
var (
	DefaultSlideWidth  = Inches(10)
	DefaultSlideHeight = Inches(7.5)
)

// Deck is an ordered sequence of slides plus page dimensions
type Deck struct {
	// Title is stored in the document properties
	Title string `yaml:"title" json:"title"`

	// Author is stored as the document creator
	Author string `yaml:"author,omitempty" json:"author,omitempty"`

	// Company is stored in the extended document properties
	Company string `yaml:"company,omitempty" json:"company,omitempty"`

	// Width is the page width
	Width EMU `yaml:"width" json:"width"`

	// Height is the page height
	Height EMU `yaml:"height" json:"height"`

	// Colors becomes the document theme's color scheme
	Colors ColorScheme `yaml:"colors" json:"colors"`

	// Slides contains all slides in output order
	Slides []SlideSpec `yaml:"slides" json:"slides"`
}

// NewDeck creates an empty deck with the standard page size
func NewDeck(title string) *Deck {
	return &Deck{
		Title:  title,
		Width:  DefaultSlideWidth,
		Height: DefaultSlideHeight,
		Colors: DefaultColorScheme(),
	}
}

// AddSlide appends a slide; order of calls is output order
func (d *Deck) AddSlide(slide SlideSpec) {
	d.Slides = append(d.Slides, slide)
}

// Validate ensures the deck can be serialized
func (d *Deck) Validate() error {
	if d.Title == "" {
		return errors.New("deck title is required")
	}

	if d.Width <= 0 || d.Height <= 0 {
		return errors.New("deck dimensions must be positive")
	}

	if len(d.Slides) == 0 {
		return errors.New("deck must have at least one slide")
	}

	for i := range d.Slides {
		if err := d.Slides[i].Validate(); err != nil {
			return fmt.Errorf("slide %d validation failed: %w", i+1, err)
		}
	}

	return nil
}

// GetSlideByIndex returns a slide by its index (0-based)
func (d *Deck) GetSlideByIndex(index int) (*SlideSpec, error) {
	if index < 0 || index >= len(d.Slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(d.Slides)-1)
	}
	return &d.Slides[index], nil
}

// SlideCount returns the total number of slides
func (d *Deck) SlideCount() int {
	return len(d.Slides)
}
