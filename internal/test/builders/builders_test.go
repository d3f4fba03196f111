package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

func TestDeckBuilder(t *testing.T) {
	t.Run("builds deck with defaults", func(t *testing.T) {
		deck := NewDeckBuilder().Build()

		assert.Equal(t, "Test Deck", deck.Title)
		assert.Equal(t, "Test Author", deck.Author)
		assert.Equal(t, entities.DefaultSlideWidth, deck.Width)
		assert.Empty(t, deck.Slides)
	})

	t.Run("builds deck with custom values", func(t *testing.T) {
		deck := NewDeckBuilder().
			WithTitle("Custom Title").
			WithAuthor("Custom Author").
			WithSize(entities.Inches(13.333), entities.Inches(7.5)).
			WithSlideCount(3).
			Build()

		assert.Equal(t, "Custom Title", deck.Title)
		assert.Equal(t, "Custom Author", deck.Author)
		assert.Equal(t, entities.Inches(13.333), deck.Width)
		require.Len(t, deck.Slides, 3)
		assert.Equal(t, "Slide 3", deck.Slides[2].TitleText())
		assert.NoError(t, deck.Validate())
	})

	t.Run("minimal and large helpers", func(t *testing.T) {
		assert.Len(t, MinimalDeck().Slides, 1)
		assert.Len(t, LargeDeck().Slides, 50)
		assert.NoError(t, LargeDeck().Validate())
	})

	t.Run("build returns independent copies", func(t *testing.T) {
		b := NewDeckBuilder().WithSlideCount(1)
		first := b.Build()
		first.Slides[0].Title.Text = "mutated"

		second := b.Build()
		assert.Equal(t, "Slide 1", second.Slides[0].TitleText())
	})
}

func TestSlideBuilder(t *testing.T) {
	t.Run("title and content by default", func(t *testing.T) {
		slide := NewSlideBuilder().Build()

		assert.Equal(t, entities.LayoutTitleContent, slide.Layout)
		assert.Equal(t, "Test Slide", slide.TitleText())
		assert.Len(t, slide.Body, 1)
		assert.NoError(t, slide.Validate())
	})

	t.Run("custom body", func(t *testing.T) {
		slide := NewSlideBuilder().
			WithTitle("Agenda").
			WithBody(Paragraph("Intro", 0)).
			WithParagraph("Details", 1).
			Build()

		assert.Equal(t, "Agenda", slide.TitleText())
		require.Len(t, slide.Body, 2)
		assert.Equal(t, 1, slide.Body[1].Level)
	})

	t.Run("blank slide", func(t *testing.T) {
		slide := NewSlideBuilder().WithTitle("Cover").Blank().Build()

		assert.Equal(t, entities.LayoutBlank, slide.Layout)
		assert.Nil(t, slide.Title)
		require.NotNil(t, slide.Background)
		assert.Equal(t, "Cover", slide.TitleText())
		assert.NoError(t, slide.Validate())
	})

	t.Run("layout override produces invalid slide", func(t *testing.T) {
		slide := NewSlideBuilder().WithLayout(entities.LayoutBlank).Build()
		assert.Error(t, slide.Validate())
	})
}
