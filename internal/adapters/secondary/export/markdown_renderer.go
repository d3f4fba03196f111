package export

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// MarkdownRenderer writes a speaker handout: every slide's text as an outline
type MarkdownRenderer struct {
	fs ports.FileSystem
}

// NewMarkdownRenderer creates a new markdown renderer
func NewMarkdownRenderer(fsys ports.FileSystem) *MarkdownRenderer {
	return &MarkdownRenderer{fs: fsys}
}

// Render exports the deck to markdown format
func (r *MarkdownRenderer) Render(ctx context.Context, deck *entities.Deck, options *entities.ExportOptions) (*entities.ExportResult, error) {
	content, err := Handout(deck)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := ports.WriteFileAtomic(r.fs, options.OutputPath, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("writing markdown file: %w", err)
	}

	return &entities.ExportResult{
		Success:    true,
		Format:     string(entities.FormatMarkdown),
		OutputPath: options.OutputPath,
		FileSize:   int64(len(content)),
		SlideCount: deck.SlideCount(),
	}, nil
}

// Supports returns true if this renderer supports the given format
func (r *MarkdownRenderer) Supports(format entities.ExportFormat) bool {
	return format == entities.FormatMarkdown
}

// GetMimeType returns the MIME type for markdown exports
func (r *MarkdownRenderer) GetMimeType() string {
	return "text/markdown"
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Author    string `yaml:"author,omitempty"`
	Slides    int    `yaml:"slides"`
	Generator string `yaml:"generator"`
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
)

// Handout renders the deck as a markdown document with YAML front matter.
// Body paragraphs become nested list items by level; bold and italic runs
// keep their emphasis.
func Handout(deck *entities.Deck) (string, error) {
	meta, err := yaml.Marshal(frontMatter{
		Title:     deck.Title,
		Author:    deck.Author,
		Slides:    deck.SlideCount(),
		Generator: "deckgen",
	})
	if err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}

	var content strings.Builder
	content.WriteString("---\n")
	content.Write(meta)
	content.WriteString("---\n\n")
	content.WriteString(HandoutBody(deck))

	return content.String(), nil
}

// HandoutBody is the handout without front matter
func HandoutBody(deck *entities.Deck) string {
	var content strings.Builder
	fmt.Fprintf(&content, "# %s\n", escapeMarkdown(deck.Title))

	for i := range deck.Slides {
		slide := &deck.Slides[i]

		fmt.Fprintf(&content, "\n## %d. %s\n\n", i+1, escapeMarkdown(slide.TitleText()))
		fmt.Fprintf(&content, "*Layout: %s*\n", LayoutName(slide.Layout))

		if body := slideBody(slide); body != "" {
			content.WriteString("\n")
			content.WriteString(body)
		}
	}

	return content.String()
}

// SlideMarkdown renders one slide as a markdown section headed by its title
func SlideMarkdown(slide *entities.SlideSpec) string {
	heading := "## " + escapeMarkdown(slide.TitleText()) + "\n"
	if body := slideBody(slide); body != "" {
		return heading + "\n" + body
	}
	return heading
}

// slideBody renders every paragraph after the headline
func slideBody(slide *entities.SlideSpec) string {
	paragraphs := slide.Paragraphs()
	if len(paragraphs) > 0 {
		// The headline is already the section heading
		paragraphs = paragraphs[1:]
	}

	var content strings.Builder
	for _, block := range paragraphs {
		if slide.Layout == entities.LayoutBlank {
			fmt.Fprintf(&content, "%s\n\n", emphasize(block))
			continue
		}
		fmt.Fprintf(&content, "%s- %s\n", strings.Repeat("  ", block.Level), emphasize(block))
	}

	return content.String()
}

// LayoutName returns a layout identifier in title case, "title_content" as
// "Title Content"
func LayoutName(layout entities.Layout) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(layout), "_", " "))
}

func emphasize(block entities.ContentBlock) string {
	text := escapeMarkdown(block.Text)
	switch {
	case block.Bold && block.Italic:
		return "***" + text + "***"
	case block.Bold:
		return "**" + text + "**"
	case block.Italic:
		return "*" + text + "*"
	default:
		return text
	}
}

func escapeMarkdown(s string) string {
	s = markdownEscaper.Replace(s)

	// List markers only count at the start of a line
	if i := strings.IndexFunc(s, notDigit); i > 0 && (s[i] == '.' || s[i] == ')') {
		return s[:i] + `\` + s[i:]
	}
	if strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "+ ") {
		return `\` + s
	}
	return s
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}
