package pptx

import (
	"fmt"
	"strconv"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// slideDocument translates one slide definition into its part
func slideDocument(slide *entities.SlideSpec, width, height entities.EMU) *xmlSlide {
	doc := &xmlSlide{
		XmlnsA: nsDrawing,
		XmlnsR: nsRelationships,
		XmlnsP: nsPresentation,
		Tree: xmlShapeTree{
			Group: xmlGroupNonVisual{CNvPr: xmlCNvPr{ID: 1, Name: ""}},
		},
	}

	ids := shapeIDs{next: 2}

	switch slide.Layout {
	case entities.LayoutTitleContent:
		doc.Tree.Shapes = append(doc.Tree.Shapes,
			placeholder(ids.take(), "Title", &xmlPlaceholder{Type: "title"}, []entities.ContentBlock{*slide.Title}),
			placeholder(ids.take(), "Content Placeholder", &xmlPlaceholder{Idx: "1"}, slide.Body),
		)

	case entities.LayoutBlank:
		doc.Tree.Shapes = append(doc.Tree.Shapes, background(ids.take(), *slide.Background, width, height))
		for _, box := range slide.TextBoxes {
			doc.Tree.Shapes = append(doc.Tree.Shapes, textBox(ids.take(), box))
		}
	}

	return doc
}

type shapeIDs struct {
	next int
}

func (s *shapeIDs) take() int {
	id := s.next
	s.next++
	return id
}

func placeholder(id int, label string, ph *xmlPlaceholder, blocks []entities.ContentBlock) xmlShape {
	return xmlShape{
		NonVisual: xmlShapeNonVisual{
			CNvPr:   xmlCNvPr{ID: id, Name: fmt.Sprintf("%s %d", label, id-1)},
			CNvSpPr: xmlCNvSpPr{SpLocks: &xmlSpLocks{NoGrp: "1"}},
			NvPr:    xmlNvPr{Placeholder: ph},
		},
		TextBody: &xmlTextBody{Paragraphs: paragraphs(blocks)},
	}
}

func background(id int, fill entities.RGB, width, height entities.EMU) xmlShape {
	return xmlShape{
		NonVisual: xmlShapeNonVisual{
			CNvPr: xmlCNvPr{ID: id, Name: fmt.Sprintf("Background %d", id-1)},
		},
		Props: xmlShapeProps{
			Xfrm: &xmlXfrm{
				Off: xmlOffset{X: 0, Y: 0},
				Ext: xmlExtent{Cx: int64(width), Cy: int64(height)},
			},
			Geometry:  &xmlPrstGeom{Prst: "rect"},
			SolidFill: solidFill(fill),
			Line:      &xmlLine{},
		},
	}
}

func textBox(id int, box entities.TextBox) xmlShape {
	return xmlShape{
		NonVisual: xmlShapeNonVisual{
			CNvPr:   xmlCNvPr{ID: id, Name: fmt.Sprintf("TextBox %d", id-1)},
			CNvSpPr: xmlCNvSpPr{TxBox: "1"},
		},
		Props: xmlShapeProps{
			Xfrm: &xmlXfrm{
				Off: xmlOffset{X: int64(box.Frame.X), Y: int64(box.Frame.Y)},
				Ext: xmlExtent{Cx: int64(box.Frame.Width), Cy: int64(box.Frame.Height)},
			},
			Geometry: &xmlPrstGeom{Prst: "rect"},
			NoFill:   &struct{}{},
		},
		TextBody: &xmlTextBody{
			BodyPr:     xmlBodyPr{Wrap: "square", RtlCol: "0", SpAutoFit: &struct{}{}},
			Paragraphs: paragraphs(box.Blocks),
		},
	}
}

func paragraphs(blocks []entities.ContentBlock) []xmlParagraph {
	out := make([]xmlParagraph, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, paragraph(b))
	}
	return out
}

// paragraph emits one run per block. Level zero, inherited alignment and zero
// spacing are left to the layout.
func paragraph(b entities.ContentBlock) xmlParagraph {
	var props xmlParagraphProps
	if b.Level > 0 {
		props.Level = strconv.Itoa(b.Level)
	}
	switch b.Align {
	case entities.AlignLeft:
		props.Align = "l"
	case entities.AlignCenter:
		props.Align = "ctr"
	}
	if b.SpaceBefore > 0 {
		props.SpaceBefore = &xmlSpaceBefore{Points: xmlSpacePoints{Val: b.SpaceBefore * 100}}
	}

	p := xmlParagraph{
		Runs: []xmlRun{{
			Props: xmlRunProps{
				Lang:      "en-US",
				Size:      b.Size * 100,
				Bold:      flag(b.Bold),
				Italic:    flag(b.Italic),
				Dirty:     "0",
				SolidFill: *solidFill(b.Color),
			},
			Text: text(b.Text),
		}},
	}
	if props != (xmlParagraphProps{}) {
		p.Props = &props
	}
	return p
}

func solidFill(c entities.RGB) *xmlSolidFill {
	return &xmlSolidFill{Color: xmlSRGB{Val: c.Hex()}}
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
