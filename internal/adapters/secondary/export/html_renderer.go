package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// HTMLRenderer writes the deck as a standalone page that presents one slide
// at a time in the browser
type HTMLRenderer struct {
	fs        ports.FileSystem
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
	template  *template.Template
}

// NewHTMLRenderer creates a new HTML renderer
func NewHTMLRenderer(fsys ports.FileSystem) *HTMLRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	return &HTMLRenderer{
		fs:        fsys,
		md:        md,
		sanitizer: createHTMLSanitizer(),
		template:  template.Must(template.New("viewer").Parse(viewerTemplate)),
	}
}

// createHTMLSanitizer allows the elements a rendered slide can contain
func createHTMLSanitizer() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	// Allow basic text formatting
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowElements("p", "br", "hr")
	p.AllowElements("strong", "b", "em", "i")
	p.AllowElements("ul", "ol", "li")

	// Heading anchors
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return p
}

// Render exports the deck to static HTML
func (r *HTMLRenderer) Render(ctx context.Context, deck *entities.Deck, options *entities.ExportOptions) (*entities.ExportResult, error) {
	page, err := r.Page(deck)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := ports.WriteFileAtomic(r.fs, options.OutputPath, page, 0o644); err != nil {
		return nil, fmt.Errorf("writing html file: %w", err)
	}

	return &entities.ExportResult{
		Success:    true,
		Format:     string(entities.FormatHTML),
		OutputPath: options.OutputPath,
		FileSize:   int64(len(page)),
		SlideCount: deck.SlideCount(),
	}, nil
}

// slideView is one rendered slide of the page
type slideView struct {
	Index int
	Blank bool
	HTML  template.HTML
}

// Page renders the complete HTML document for a deck
func (r *HTMLRenderer) Page(deck *entities.Deck) ([]byte, error) {
	slides := make([]slideView, 0, len(deck.Slides))
	for i := range deck.Slides {
		slide := &deck.Slides[i]

		var body bytes.Buffer
		if err := r.md.Convert([]byte(SlideMarkdown(slide)), &body); err != nil {
			return nil, fmt.Errorf("rendering slide %d: %w", i+1, err)
		}

		slides = append(slides, slideView{
			Index: i + 1,
			Blank: slide.Layout == entities.LayoutBlank,
			HTML:  template.HTML(r.sanitizer.SanitizeBytes(body.Bytes())), // #nosec G203 - sanitized above
		})
	}

	data := struct {
		Title     string
		Author    string
		Primary   string
		Secondary string
		Accent    string
		Text      string
		Slides    []slideView
	}{
		Title:     deck.Title,
		Author:    deck.Author,
		Primary:   deck.Colors.Primary.String(),
		Secondary: deck.Colors.Secondary.String(),
		Accent:    deck.Colors.Accent.String(),
		Text:      deck.Colors.Text.String(),
		Slides:    slides,
	}

	var page bytes.Buffer
	if err := r.template.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return page.Bytes(), nil
}

// Supports returns true if this renderer supports the given format
func (r *HTMLRenderer) Supports(format entities.ExportFormat) bool {
	return format == entities.FormatHTML
}

// GetMimeType returns the MIME type for HTML exports
func (r *HTMLRenderer) GetMimeType() string {
	return "text/html"
}

// viewerTemplate shows the active slide only. Arrows and space step through
// the deck, Home and End jump, F toggles fullscreen, P prints every slide and
// H shows the shortcuts.
const viewerTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    {{- if .Author}}
    <meta name="author" content="{{.Author}}">
    {{- end}}
    <meta name="generator" content="deckgen">
    <style>
        html, body { margin: 0; height: 100%; }
        body {
            font-family: Calibri, "Segoe UI", sans-serif;
            color: {{.Text}};
            background: #f1f5f9;
            overflow: hidden;
        }
        .progress { position: fixed; top: 0; left: 0; right: 0; height: 4px; background: #e2e8f0; }
        .progress-fill { height: 100%; width: 0; background: {{.Accent}}; transition: width 0.3s ease; }
        .slide {
            display: none;
            box-sizing: border-box;
            height: 100vh;
            padding: 6vh 8vw;
            background: #ffffff;
            flex-direction: column;
            justify-content: flex-start;
        }
        .slide.active { display: flex; }
        .slide h2 {
            color: {{.Primary}};
            border-bottom: 2px solid {{.Secondary}};
            padding-bottom: 0.25rem;
            font-size: 2.5rem;
        }
        .slide li { font-size: 1.4rem; margin: 0.4rem 0; }
        .slide.blank {
            background: {{.Primary}};
            color: #ffffff;
            justify-content: center;
            text-align: center;
        }
        .slide.blank h2 { color: #ffffff; border: none; font-size: 3rem; }
        .slide.blank p { font-size: 1.6rem; }
        .navigation {
            position: fixed;
            bottom: 1.5rem;
            right: 2rem;
            display: flex;
            align-items: center;
            gap: 1rem;
        }
        .navigation button {
            border: none;
            border-radius: 50%;
            width: 2.75rem;
            height: 2.75rem;
            font-size: 1.5rem;
            color: #ffffff;
            background: {{.Primary}};
            cursor: pointer;
        }
        .navigation button:disabled { opacity: 0.5; cursor: not-allowed; }
        .help {
            position: fixed;
            inset: 0;
            display: flex;
            align-items: center;
            justify-content: center;
            background: rgba(0, 0, 0, 0.9);
            color: #ffffff;
        }
        .help[hidden] { display: none; }
        @media print {
            body { overflow: visible; }
            .slide { display: flex; page-break-after: always; }
            .progress, .navigation, .help { display: none; }
        }
    </style>
</head>
<body>
    <div class="progress"><div class="progress-fill" id="progressFill"></div></div>

    <main class="presentation">
        {{- range .Slides}}
        <section class="slide{{if .Blank}} blank{{end}}{{if eq .Index 1}} active{{end}}" data-index="{{.Index}}">
{{.HTML}}
        </section>
        {{- end}}
    </main>

    <nav class="navigation">
        <button id="prevBtn" aria-label="Previous slide">‹</button>
        <div class="slide-counter"><span id="currentSlide">1</span> / <span id="totalSlides">{{len .Slides}}</span></div>
        <button id="nextBtn" aria-label="Next slide">›</button>
    </nav>

    <div class="help" id="helpOverlay" hidden>
        <div>
            <h2>Keyboard Shortcuts</h2>
            <p><strong>→ / Space:</strong> Next slide</p>
            <p><strong>←:</strong> Previous slide</p>
            <p><strong>Home:</strong> First slide</p>
            <p><strong>End:</strong> Last slide</p>
            <p><strong>F:</strong> Toggle fullscreen</p>
            <p><strong>P:</strong> Print presentation</p>
            <p><strong>H:</strong> Show/hide this help</p>
            <p><strong>Esc:</strong> Close help</p>
        </div>
    </div>

    <script>
    (function () {
        var slides = document.querySelectorAll('.slide');
        var total = slides.length;
        var current = 1;
        var prevBtn = document.getElementById('prevBtn');
        var nextBtn = document.getElementById('nextBtn');
        var counter = document.getElementById('currentSlide');
        var progress = document.getElementById('progressFill');
        var help = document.getElementById('helpOverlay');

        function show(n) {
            current = Math.min(Math.max(n, 1), total);
            slides.forEach(function (slide, i) {
                slide.classList.toggle('active', i + 1 === current);
            });
            counter.textContent = current;
            prevBtn.disabled = current === 1;
            nextBtn.disabled = current === total;
            progress.style.width = (current * 100 / total) + '%';
        }

        function toggleHelp(visible) {
            help.hidden = !visible;
        }

        prevBtn.addEventListener('click', function () { show(current - 1); });
        nextBtn.addEventListener('click', function () { show(current + 1); });
        help.addEventListener('click', function () { toggleHelp(false); });

        document.addEventListener('keydown', function (e) {
            switch (e.key) {
            case 'ArrowRight':
            case ' ':
                e.preventDefault();
                show(current + 1);
                break;
            case 'ArrowLeft':
                e.preventDefault();
                show(current - 1);
                break;
            case 'Home':
                e.preventDefault();
                show(1);
                break;
            case 'End':
                e.preventDefault();
                show(total);
                break;
            case 'f':
            case 'F':
                if (!document.fullscreenElement) {
                    document.documentElement.requestFullscreen();
                } else {
                    document.exitFullscreen();
                }
                break;
            case 'p':
            case 'P':
                e.preventDefault();
                window.print();
                break;
            case 'h':
            case 'H':
                e.preventDefault();
                toggleHelp(help.hidden);
                break;
            case 'Escape':
                toggleHelp(false);
                break;
            }
        });

        var touchStartX = 0;
        document.addEventListener('touchstart', function (e) {
            touchStartX = e.changedTouches[0].screenX;
        });
        document.addEventListener('touchend', function (e) {
            var diff = touchStartX - e.changedTouches[0].screenX;
            if (Math.abs(diff) > 50) {
                show(diff > 0 ? current + 1 : current - 1);
            }
        });

        show(1);
    })();
    </script>
</body>
</html>
`
