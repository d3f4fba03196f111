package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Layout names the slide layout template a slide is created from
type Layout string

const (
	// LayoutBlank has no placeholders; everything is placed by hand
	LayoutBlank Layout = "blank"

	// LayoutTitleContent provides a title placeholder and a body placeholder
	LayoutTitleContent Layout = "title_content"
)

// IsValid reports whether the layout is one of the known kinds
func (l Layout) IsValid() bool {
	return l == LayoutBlank || l == LayoutTitleContent
}

// Alignment is the horizontal alignment of a paragraph
type Alignment string

const (
	// AlignInherit leaves alignment to the layout
	AlignInherit Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
)

// MaxLevel is the deepest paragraph nesting level a presentation supports
const MaxLevel = 8

// ContentBlock is one formatted paragraph
type ContentBlock struct {
	// Text is the paragraph text
	Text string `yaml:"text" json:"text"`

	// Level is the nesting level used for indentation (0 = top level)
	Level int `yaml:"level,omitempty" json:"level,omitempty"`

	// Size is the font size in points
	Size int `yaml:"size" json:"size"`

	// Bold selects bold weight
	Bold bool `yaml:"bold,omitempty" json:"bold,omitempty"`

	// Italic selects italic style
	Italic bool `yaml:"italic,omitempty" json:"italic,omitempty"`

	// Color is the run color
	Color RGB `yaml:"color" json:"color"`

	// Align is the paragraph alignment; empty inherits from the layout
	Align Alignment `yaml:"align,omitempty" json:"align,omitempty"`

	// SpaceBefore is the gap above the paragraph in points; zero omits it
	SpaceBefore int `yaml:"space_before,omitempty" json:"space_before,omitempty"`
}

// Validate ensures the block is fully specified
func (b ContentBlock) Validate() error {
	if strings.TrimSpace(b.Text) == "" {
		return errors.New("block text cannot be empty")
	}

	if b.Size <= 0 {
		return fmt.Errorf("block %q: font size must be positive", b.Text)
	}

	if b.Level < 0 || b.Level > MaxLevel {
		return fmt.Errorf("block %q: level must be between 0 and %d", b.Text, MaxLevel)
	}

	if b.SpaceBefore < 0 {
		return fmt.Errorf("block %q: space before must be non-negative", b.Text)
	}

	switch b.Align {
	case AlignInherit, AlignLeft, AlignCenter:
	default:
		return fmt.Errorf("block %q: unknown alignment %q", b.Text, b.Align)
	}

	return nil
}

// Frame is an absolute position and size on the slide
type Frame struct {
	X      EMU `yaml:"x" json:"x"`
	Y      EMU `yaml:"y" json:"y"`
	Width  EMU `yaml:"width" json:"width"`
	Height EMU `yaml:"height" json:"height"`
}

// TextBox is a free-floating text region; each block becomes one paragraph
type TextBox struct {
	Frame  Frame          `yaml:"frame" json:"frame"`
	Blocks []ContentBlock `yaml:"blocks" json:"blocks"`
}

// SlideSpec describes one slide of a deck
type SlideSpec struct {
	// Layout selects the layout template
	Layout Layout `yaml:"layout" json:"layout"`

	// Title fills the title placeholder (title_content only)
	Title *ContentBlock `yaml:"title,omitempty" json:"title,omitempty"`

	// Body fills the body placeholder, one paragraph per block (title_content only)
	Body []ContentBlock `yaml:"body,omitempty" json:"body,omitempty"`

	// Background is the fill of the full-bleed rectangle (blank only)
	Background *RGB `yaml:"background,omitempty" json:"background,omitempty"`

	// TextBoxes are placed over the background in order (blank only)
	TextBoxes []TextBox `yaml:"text_boxes,omitempty" json:"text_boxes,omitempty"`
}

// Validate ensures the slide carries exactly what its layout needs
func (s *SlideSpec) Validate() error {
	switch s.Layout {
	case LayoutTitleContent:
		if s.Title == nil {
			return errors.New("title and content slide requires a title")
		}
		if err := s.Title.Validate(); err != nil {
			return fmt.Errorf("title: %w", err)
		}
		if len(s.Body) == 0 {
			return errors.New("title and content slide requires at least one body paragraph")
		}
		if s.Background != nil || len(s.TextBoxes) > 0 {
			return errors.New("title and content slide cannot carry free-floating shapes")
		}
		for i, block := range s.Body {
			if err := block.Validate(); err != nil {
				return fmt.Errorf("body paragraph %d: %w", i+1, err)
			}
		}

	case LayoutBlank:
		if s.Title != nil || len(s.Body) > 0 {
			return errors.New("blank slide cannot use title or body placeholders")
		}
		if s.Background == nil {
			return errors.New("blank slide requires a background")
		}
		if len(s.TextBoxes) == 0 {
			return errors.New("blank slide requires at least one text box")
		}
		for i, box := range s.TextBoxes {
			if box.Frame.Width <= 0 || box.Frame.Height <= 0 {
				return fmt.Errorf("text box %d: frame must have a positive size", i+1)
			}
			if len(box.Blocks) == 0 {
				return fmt.Errorf("text box %d: no paragraphs", i+1)
			}
			for j, block := range box.Blocks {
				if err := block.Validate(); err != nil {
					return fmt.Errorf("text box %d paragraph %d: %w", i+1, j+1, err)
				}
			}
		}

	default:
		return fmt.Errorf("unknown layout %q", s.Layout)
	}

	return nil
}

// TitleText returns the headline of the slide: the title placeholder text,
// or the first text box paragraph on blank slides
func (s *SlideSpec) TitleText() string {
	if s.Title != nil {
		return s.Title.Text
	}
	for _, box := range s.TextBoxes {
		if len(box.Blocks) > 0 {
			return box.Blocks[0].Text
		}
	}
	return ""
}

// Paragraphs returns every paragraph of the slide in document order
func (s *SlideSpec) Paragraphs() []ContentBlock {
	var out []ContentBlock
	if s.Title != nil {
		out = append(out, *s.Title)
	}
	out = append(out, s.Body...)
	for _, box := range s.TextBoxes {
		out = append(out, box.Blocks...)
	}
	return out
}
