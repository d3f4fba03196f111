package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// Read-side element types. encoding/xml matches on local names; the
// relationship id on sldId must be namespace-qualified so it is not
// confused with the plain id attribute.

type readRels struct {
	Items []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type readPresentation struct {
	Slides []struct {
		RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
	Size struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"sldSz"`
}

type readCore struct {
	Title string `xml:"title"`
}

type readLayout struct {
	CSld struct {
		Name string `xml:"name,attr"`
	} `xml:"cSld"`
}

type readSlide struct {
	Shapes []readShape `xml:"cSld>spTree>sp"`
}

type readShape struct {
	CNvSpPr struct {
		TxBox string `xml:"txBox,attr"`
	} `xml:"nvSpPr>cNvSpPr"`
	Placeholder *struct {
		Type string `xml:"type,attr"`
		Idx  string `xml:"idx,attr"`
	} `xml:"nvSpPr>nvPr>ph"`
	Geometry *struct {
		Prst string `xml:"prst,attr"`
	} `xml:"spPr>prstGeom"`
	Paragraphs []struct {
		Runs []struct {
			Text string `xml:"t"`
		} `xml:"r"`
	} `xml:"txBody>p"`
}

func (s readShape) paragraphs() []string {
	out := make([]string, 0, len(s.Paragraphs))
	for _, p := range s.Paragraphs {
		var b strings.Builder
		for _, r := range p.Runs {
			b.WriteString(r.Text)
		}
		out = append(out, b.String())
	}
	return out
}

func (s readShape) placeholderType() string {
	if s.Placeholder == nil {
		return ""
	}
	if s.Placeholder.Type != "" {
		return s.Placeholder.Type
	}
	// An idx-only placeholder is a body placeholder
	return "body"
}

// Inspector reads written presentations back into summaries
type Inspector struct {
	fs ports.FileSystem
}

// NewInspector creates an inspector over the real file system
func NewInspector() *Inspector {
	return &Inspector{fs: ports.NewRealFileSystem()}
}

// Inspect opens the document at path and summarizes it. The slide count is
// the one a general-purpose presentation reader sees; the per-slide shape
// details come from Summarize, which keeps fill-only shapes and placeholder
// kinds that reader drops.
func (i *Inspector) Inspect(ctx context.Context, path string) (*entities.DeckSummary, error) {
	data, err := i.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	pres, err := ppt.ReadFrom(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening presentation: %w", err)
	}

	summary, err := Summarize(ctx, data)
	if err != nil {
		return nil, err
	}

	if n := pres.GetSlideCount(); n != len(summary.Slides) {
		return nil, fmt.Errorf("%w: presentation reader found %d, slide list has %d",
			entities.ErrSlideCountMismatch, n, len(summary.Slides))
	}
	summary.SlideCount = pres.GetSlideCount()

	return summary, nil
}

// Summarize parses the bytes of a .pptx package
func Summarize(ctx context.Context, data []byte) (*entities.DeckSummary, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening package: %w", err)
	}

	pkg := packageReader{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		pkg.files[f.Name] = f
	}

	var pres readPresentation
	if err := pkg.decode(partPresentation, &pres); err != nil {
		return nil, err
	}
	presRels, err := pkg.rels(partPresentation)
	if err != nil {
		return nil, err
	}

	summary := &entities.DeckSummary{
		Width:  entities.EMU(pres.Size.Cx),
		Height: entities.EMU(pres.Size.Cy),
	}

	var core readCore
	if err := pkg.decode(partCore, &core); err == nil {
		summary.Title = core.Title
	}

	for idx, ref := range pres.Slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		target, ok := presRels[ref.RID]
		if !ok {
			return nil, fmt.Errorf("slide %d: dangling relationship %q", idx+1, ref.RID)
		}
		slidePart := path.Join(path.Dir(partPresentation), target)

		s, err := pkg.slide(slidePart)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", idx+1, err)
		}
		s.Index = idx + 1
		summary.Slides = append(summary.Slides, *s)
	}
	summary.SlideCount = len(summary.Slides)

	return summary, nil
}

type packageReader struct {
	files map[string]*zip.File
}

func (p packageReader) decode(name string, v interface{}) error {
	f, ok := p.files[name]
	if !ok {
		return fmt.Errorf("missing part %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer func() { _ = rc.Close() }()

	if err := xml.NewDecoder(rc).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// rels loads the relationships of a part, keyed by id, with targets resolved
// relative to the part's directory
func (p packageReader) rels(name string) (map[string]string, error) {
	relsName := path.Join(path.Dir(name), "_rels", path.Base(name)+".rels")
	var r readRels
	if err := p.decode(relsName, &r); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(r.Items))
	for _, item := range r.Items {
		out[item.ID] = item.Target
	}
	return out, nil
}

func (p packageReader) slide(name string) (*entities.SlideSummary, error) {
	var doc readSlide
	if err := p.decode(name, &doc); err != nil {
		return nil, err
	}

	summary := &entities.SlideSummary{}

	rels, err := p.rels(name)
	if err != nil {
		return nil, err
	}
	for _, target := range rels {
		if !strings.Contains(target, "slideLayout") {
			continue
		}
		var layout readLayout
		if err := p.decode(path.Join(path.Dir(name), target), &layout); err != nil {
			return nil, err
		}
		summary.Layout = layoutKind(layout.CSld.Name)
	}

	var firstBoxText string
	for _, sh := range doc.Shapes {
		texts := sh.paragraphs()
		summary.Paragraphs = append(summary.Paragraphs, texts...)

		switch {
		case sh.Placeholder != nil:
			kind := sh.placeholderType()
			summary.Placeholders = append(summary.Placeholders, kind)
			if kind == "title" && len(texts) > 0 {
				summary.Title = strings.Join(texts, "\n")
			}
		case sh.CNvSpPr.TxBox == "1":
			summary.TextBoxes++
			if firstBoxText == "" && len(texts) > 0 {
				firstBoxText = texts[0]
			}
		case sh.Geometry != nil && sh.Geometry.Prst == "rect":
			summary.Rectangles++
		}
	}
	if summary.Title == "" {
		summary.Title = firstBoxText
	}

	return summary, nil
}

// Ensure Inspector implements ports.DeckInspector
var _ ports.DeckInspector = (*Inspector)(nil)
