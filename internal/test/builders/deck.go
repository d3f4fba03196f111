package builders

import (
	"strconv"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

var testColor = entities.RGB{R: 102, G: 126, B: 234}

// DeckBuilder helps build Deck entities for testing
type DeckBuilder struct {
	deck *entities.Deck
}

// NewDeckBuilder creates a new deck builder with sensible defaults
func NewDeckBuilder() *DeckBuilder {
	deck := entities.NewDeck("Test Deck")
	deck.Author = "Test Author"
	return &DeckBuilder{deck: deck}
}

// WithTitle sets the deck title
func (b *DeckBuilder) WithTitle(title string) *DeckBuilder {
	b.deck.Title = title
	return b
}

// WithAuthor sets the deck author
func (b *DeckBuilder) WithAuthor(author string) *DeckBuilder {
	b.deck.Author = author
	return b
}

// WithSize sets the page dimensions
func (b *DeckBuilder) WithSize(width, height entities.EMU) *DeckBuilder {
	b.deck.Width = width
	b.deck.Height = height
	return b
}

// WithSlide adds a single slide to the deck
func (b *DeckBuilder) WithSlide(slide entities.SlideSpec) *DeckBuilder {
	b.deck.Slides = append(b.deck.Slides, slide)
	return b
}

// WithSlideCount adds the specified number of default slides
func (b *DeckBuilder) WithSlideCount(count int) *DeckBuilder {
	for i := 0; i < count; i++ {
		b.deck.Slides = append(b.deck.Slides, NewSlideBuilder().
			WithTitle("Slide "+strconv.Itoa(i+1)).
			Build())
	}
	return b
}

// Build creates the final Deck entity
func (b *DeckBuilder) Build() *entities.Deck {
	out := *b.deck
	out.Slides = make([]entities.SlideSpec, 0, len(b.deck.Slides))
	for _, s := range b.deck.Slides {
		out.Slides = append(out.Slides, copySlide(s))
	}
	return &out
}

// SlideBuilder helps build SlideSpec entities for testing
type SlideBuilder struct {
	slide entities.SlideSpec
}

// NewSlideBuilder creates a title and content slide with one body paragraph
func NewSlideBuilder() *SlideBuilder {
	title := entities.ContentBlock{Text: "Test Slide", Size: 40, Color: testColor}
	return &SlideBuilder{
		slide: entities.SlideSpec{
			Layout: entities.LayoutTitleContent,
			Title:  &title,
			Body:   []entities.ContentBlock{Paragraph("Test content", 0)},
		},
	}
}

// Paragraph returns a plain body paragraph at the given level
func Paragraph(text string, level int) entities.ContentBlock {
	return entities.ContentBlock{Text: text, Level: level, Size: 20, Color: entities.RGB{R: 30, G: 41, B: 59}}
}

// WithTitle sets the title text; on blank slides it replaces the first text box text
func (b *SlideBuilder) WithTitle(text string) *SlideBuilder {
	if b.slide.Layout == entities.LayoutBlank {
		b.slide.TextBoxes[0].Blocks[0].Text = text
		return b
	}
	title := *b.slide.Title
	title.Text = text
	b.slide.Title = &title
	return b
}

// WithBody replaces the body paragraphs
func (b *SlideBuilder) WithBody(blocks ...entities.ContentBlock) *SlideBuilder {
	b.slide.Body = append([]entities.ContentBlock{}, blocks...)
	return b
}

// WithParagraph appends a body paragraph
func (b *SlideBuilder) WithParagraph(text string, level int) *SlideBuilder {
	b.slide.Body = append(b.slide.Body, Paragraph(text, level))
	return b
}

// Blank turns the slide into a filled blank slide with one centered text box
func (b *SlideBuilder) Blank() *SlideBuilder {
	text := "Test Slide"
	if b.slide.Title != nil {
		text = b.slide.Title.Text
	}
	bg := testColor
	b.slide = entities.SlideSpec{
		Layout:     entities.LayoutBlank,
		Background: &bg,
		TextBoxes: []entities.TextBox{{
			Frame: entities.Frame{X: entities.Inches(1), Y: entities.Inches(2.5), Width: entities.Inches(8), Height: entities.Inches(1)},
			Blocks: []entities.ContentBlock{{
				Text:  text,
				Size:  44,
				Bold:  true,
				Color: entities.White,
				Align: entities.AlignCenter,
			}},
		}},
	}
	return b
}

// WithTextBox appends a text box to a blank slide
func (b *SlideBuilder) WithTextBox(box entities.TextBox) *SlideBuilder {
	b.slide.TextBoxes = append(b.slide.TextBoxes, box)
	return b
}

// WithLayout overrides the layout without touching content, for validation tests
func (b *SlideBuilder) WithLayout(layout entities.Layout) *SlideBuilder {
	b.slide.Layout = layout
	return b
}

// Build creates the final SlideSpec entity
func (b *SlideBuilder) Build() entities.SlideSpec {
	return copySlide(b.slide)
}

// copySlide creates a deep copy so builders can be reused
func copySlide(s entities.SlideSpec) entities.SlideSpec {
	out := entities.SlideSpec{Layout: s.Layout}
	if s.Title != nil {
		title := *s.Title
		out.Title = &title
	}
	if s.Background != nil {
		bg := *s.Background
		out.Background = &bg
	}
	if s.Body != nil {
		out.Body = append([]entities.ContentBlock{}, s.Body...)
	}
	for _, box := range s.TextBoxes {
		out.TextBoxes = append(out.TextBoxes, entities.TextBox{
			Frame:  box.Frame,
			Blocks: append([]entities.ContentBlock{}, box.Blocks...),
		})
	}
	return out
}

// Common deck types for testing

// MinimalDeck creates a one-slide deck for basic tests
func MinimalDeck() *entities.Deck {
	return NewDeckBuilder().
		WithTitle("Minimal").
		WithSlideCount(1).
		Build()
}

// LargeDeck creates a deck with many slides for ordering tests
func LargeDeck() *entities.Deck {
	return NewDeckBuilder().
		WithTitle("Large Deck").
		WithSlideCount(50).
		Build()
}
