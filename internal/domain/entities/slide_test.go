package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func block(text string) ContentBlock {
	return ContentBlock{Text: text, Size: 20, Color: RGB{R: 30, G: 41, B: 59}}
}

func TestContentBlock_Validate(t *testing.T) {
	tests := []struct {
		name    string
		block   ContentBlock
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid block",
			block:   block("Data encryption"),
			wantErr: false,
		},
		{
			name:    "empty text",
			block:   ContentBlock{Text: "  ", Size: 20},
			wantErr: true,
			errMsg:  "block text cannot be empty",
		},
		{
			name:    "zero size",
			block:   ContentBlock{Text: "Compliance"},
			wantErr: true,
			errMsg:  "font size must be positive",
		},
		{
			name:    "level too deep",
			block:   ContentBlock{Text: "Deep", Size: 18, Level: MaxLevel + 1},
			wantErr: true,
			errMsg:  "level must be between 0 and 8",
		},
		{
			name:    "negative spacing",
			block:   ContentBlock{Text: "Gap", Size: 18, SpaceBefore: -1},
			wantErr: true,
			errMsg:  "space before must be non-negative",
		},
		{
			name:    "unknown alignment",
			block:   ContentBlock{Text: "Right", Size: 18, Align: "right"},
			wantErr: true,
			errMsg:  "unknown alignment",
		},
		{
			name:    "centered and nested",
			block:   ContentBlock{Text: "Nested", Size: 18, Level: 1, Align: AlignCenter},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.block.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlideSpec_Validate(t *testing.T) {
	title := block("Agenda")
	bg := RGB{R: 102, G: 126, B: 234}
	box := TextBox{
		Frame:  Frame{X: Inches(1), Y: Inches(2.5), Width: Inches(8), Height: Inches(1)},
		Blocks: []ContentBlock{block("Cloud Security")},
	}

	tests := []struct {
		name    string
		slide   SlideSpec
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid title and content",
			slide: SlideSpec{Layout: LayoutTitleContent, Title: &title, Body: []ContentBlock{block("Why It Matters")}},
		},
		{
			name:    "title and content without title",
			slide:   SlideSpec{Layout: LayoutTitleContent, Body: []ContentBlock{block("x")}},
			wantErr: true,
			errMsg:  "requires a title",
		},
		{
			name:    "title and content without body",
			slide:   SlideSpec{Layout: LayoutTitleContent, Title: &title},
			wantErr: true,
			errMsg:  "at least one body paragraph",
		},
		{
			name:    "title and content with text boxes",
			slide:   SlideSpec{Layout: LayoutTitleContent, Title: &title, Body: []ContentBlock{block("x")}, TextBoxes: []TextBox{box}},
			wantErr: true,
			errMsg:  "free-floating shapes",
		},
		{
			name:    "invalid body paragraph names position",
			slide:   SlideSpec{Layout: LayoutTitleContent, Title: &title, Body: []ContentBlock{block("x"), {Text: "y"}}},
			wantErr: true,
			errMsg:  "body paragraph 2",
		},
		{
			name:  "valid blank",
			slide: SlideSpec{Layout: LayoutBlank, Background: &bg, TextBoxes: []TextBox{box}},
		},
		{
			name:    "blank without background",
			slide:   SlideSpec{Layout: LayoutBlank, TextBoxes: []TextBox{box}},
			wantErr: true,
			errMsg:  "requires a background",
		},
		{
			name:    "blank without text boxes",
			slide:   SlideSpec{Layout: LayoutBlank, Background: &bg},
			wantErr: true,
			errMsg:  "at least one text box",
		},
		{
			name:    "blank with title",
			slide:   SlideSpec{Layout: LayoutBlank, Title: &title, Background: &bg, TextBoxes: []TextBox{box}},
			wantErr: true,
			errMsg:  "cannot use title or body placeholders",
		},
		{
			name:    "blank with empty frame",
			slide:   SlideSpec{Layout: LayoutBlank, Background: &bg, TextBoxes: []TextBox{{Blocks: box.Blocks}}},
			wantErr: true,
			errMsg:  "positive size",
		},
		{
			name:    "unknown layout",
			slide:   SlideSpec{Layout: "two_column"},
			wantErr: true,
			errMsg:  "unknown layout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.slide.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlideSpec_TitleText(t *testing.T) {
	t.Run("title placeholder wins", func(t *testing.T) {
		title := block("Conclusion")
		slide := SlideSpec{Layout: LayoutTitleContent, Title: &title, Body: []ContentBlock{block("Key Takeaway")}}
		assert.Equal(t, "Conclusion", slide.TitleText())
	})

	t.Run("blank slide uses first text box", func(t *testing.T) {
		slide := SlideSpec{
			Layout: LayoutBlank,
			TextBoxes: []TextBox{
				{Blocks: []ContentBlock{block("Questions & Answers")}},
				{Blocks: []ContentBlock{block("Thank you for your attention!")}},
			},
		}
		assert.Equal(t, "Questions & Answers", slide.TitleText())
	})

	t.Run("empty slide", func(t *testing.T) {
		assert.Empty(t, (&SlideSpec{}).TitleText())
	})
}

func TestSlideSpec_Paragraphs(t *testing.T) {
	title := block("Agenda")
	slide := SlideSpec{
		Layout: LayoutTitleContent,
		Title:  &title,
		Body:   []ContentBlock{block("one"), block("two")},
	}

	paragraphs := slide.Paragraphs()
	require.Len(t, paragraphs, 3)
	assert.Equal(t, "Agenda", paragraphs[0].Text)
	assert.Equal(t, "two", paragraphs[2].Text)
}

func TestLayout_IsValid(t *testing.T) {
	assert.True(t, LayoutBlank.IsValid())
	assert.True(t, LayoutTitleContent.IsValid())
	assert.False(t, Layout("section").IsValid())
}
