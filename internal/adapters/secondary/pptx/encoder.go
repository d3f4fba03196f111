// Package pptx writes decks as Office Open XML presentations and reads them back.
package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// Application is recorded in the extended document properties
const Application = "deckgen"

// zipEpoch is the modification time stamped on every entry so output is reproducible
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

type part struct {
	name string
	data []byte
}

// Encode serializes the deck into the bytes of a .pptx package. The same deck
// always encodes to the same bytes.
func Encode(ctx context.Context, deck *entities.Deck) ([]byte, error) {
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	parts, err := buildParts(ctx, deck)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		})
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := w.Write(p.data); err != nil {
			return nil, fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}

	return buf.Bytes(), nil
}

func buildParts(ctx context.Context, deck *entities.Deck) ([]part, error) {
	slideParts := make([]part, 0, 2*len(deck.Slides))
	for i := range deck.Slides {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("building slide %d: %w", i+1, err)
		}

		slide := &deck.Slides[i]
		data, err := marshalPart(slideDocument(slide, deck.Width, deck.Height))
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		layout, err := layoutIndex(slide.Layout)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		rels, err := marshalPart(relationships(xmlRelationship{
			ID:     "rId1",
			Type:   relSlideLayout,
			Target: fmt.Sprintf("../slideLayouts/slideLayout%d.xml", layout),
		}))
		if err != nil {
			return nil, err
		}

		slideParts = append(slideParts,
			part{name: fmt.Sprintf(partSlidePattern, i+1), data: data},
			part{name: fmt.Sprintf(partSlideRels, i+1), data: rels},
		)
	}

	var parts []part
	add := func(name string, v interface{}) error {
		data, err := marshalPart(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		parts = append(parts, part{name: name, data: data})
		return nil
	}

	n := len(deck.Slides)
	steps := []struct {
		name string
		v    interface{}
	}{
		{partContentTypes, contentTypes(n)},
		{partRootRels, relationships(
			xmlRelationship{ID: "rId1", Type: relOfficeDocument, Target: partPresentation},
			xmlRelationship{ID: "rId2", Type: relCoreProps, Target: partCore},
			xmlRelationship{ID: "rId3", Type: relExtendedProps, Target: partApp},
		)},
		{partCore, coreProperties(deck)},
		{partApp, appProperties(deck)},
		{partPresentation, presentation(deck)},
		{partPresRels, presentationRels(n)},
	}
	for _, s := range steps {
		if err := add(s.name, s.v); err != nil {
			return nil, err
		}
	}

	parts = append(parts,
		part{name: partPresProps, data: []byte(presPropsXML)},
		part{name: partViewProps, data: []byte(viewPropsXML)},
		part{name: partTableStyles, data: []byte(tableStylesXML)},
		part{name: partTheme, data: themeXML(deck.Colors)},
		part{name: partMaster, data: masterXML(deck.Width, deck.Height)},
	)

	masterRels := make([]xmlRelationship, 0, len(layouts)+1)
	for i := range layouts {
		masterRels = append(masterRels, xmlRelationship{
			ID:     "rId" + strconv.Itoa(i+1),
			Type:   relSlideLayout,
			Target: fmt.Sprintf("../slideLayouts/slideLayout%d.xml", i+1),
		})
	}
	masterRels = append(masterRels, xmlRelationship{
		ID:     "rId" + strconv.Itoa(len(layouts)+1),
		Type:   relTheme,
		Target: "../theme/theme1.xml",
	})
	if err := add(partMasterRels, relationships(masterRels...)); err != nil {
		return nil, err
	}

	for i, l := range layouts {
		parts = append(parts, part{name: fmt.Sprintf(partLayoutPattern, i+1), data: layoutXML(l)})
		if err := add(fmt.Sprintf(partLayoutRels, i+1), relationships(xmlRelationship{
			ID:     "rId1",
			Type:   relSlideMaster,
			Target: "../slideMasters/slideMaster1.xml",
		})); err != nil {
			return nil, err
		}
	}

	return append(parts, slideParts...), nil
}

func marshalPart(v interface{}) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling xml: %w", err)
	}
	return append([]byte(xmlHeader), data...), nil
}

func relationships(items ...xmlRelationship) *xmlRelationships {
	return &xmlRelationships{Xmlns: nsPackageRels, Items: items}
}

func contentTypes(slides int) *xmlContentTypes {
	ct := &xmlContentTypes{
		Xmlns: nsContentTypes,
		Defaults: []xmlDefault{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []xmlOverride{
			{PartName: "/" + partPresentation, ContentType: ctPresentation},
			{PartName: "/" + partMaster, ContentType: ctSlideMaster},
		},
	}
	for i := range layouts {
		ct.Overrides = append(ct.Overrides, xmlOverride{
			PartName:    "/" + fmt.Sprintf(partLayoutPattern, i+1),
			ContentType: ctSlideLayout,
		})
	}
	for i := 1; i <= slides; i++ {
		ct.Overrides = append(ct.Overrides, xmlOverride{
			PartName:    "/" + fmt.Sprintf(partSlidePattern, i),
			ContentType: ctSlide,
		})
	}
	ct.Overrides = append(ct.Overrides,
		xmlOverride{PartName: "/" + partTheme, ContentType: ctTheme},
		xmlOverride{PartName: "/" + partPresProps, ContentType: ctPresProps},
		xmlOverride{PartName: "/" + partViewProps, ContentType: ctViewProps},
		xmlOverride{PartName: "/" + partTableStyles, ContentType: ctTableStyles},
		xmlOverride{PartName: "/" + partCore, ContentType: ctCoreProps},
		xmlOverride{PartName: "/" + partApp, ContentType: ctExtendedProps},
	)
	return ct
}

// Identifier derives a stable document identifier from the deck content
func Identifier(deck *entities.Deck) uuid.UUID {
	var b strings.Builder
	b.WriteString(deck.Title)
	for i := range deck.Slides {
		b.WriteByte('\n')
		b.WriteString(deck.Slides[i].TitleText())
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:deckgen:"+b.String()))
}

func coreProperties(deck *entities.Deck) *xmlCoreProperties {
	return &xmlCoreProperties{
		XmlnsCP:    nsCoreProps,
		XmlnsDC:    nsDublinCore,
		XmlnsTerms: nsDCTerms,
		XmlnsXSI:   nsXSI,
		Title:      text(deck.Title),
		Creator:    text(deck.Author),
		Identifier: Identifier(deck).URN(),
	}
}

func appProperties(deck *entities.Deck) *xmlAppProperties {
	return &xmlAppProperties{
		Xmlns:              nsExtended,
		XmlnsVT:            nsDocPropsVT,
		Application:        Application,
		PresentationFormat: presentationFormat(deck.Width, deck.Height),
		Slides:             len(deck.Slides),
		Company:            text(deck.Company),
	}
}

func isFourByThree(width, height entities.EMU) bool {
	return int64(width)*3 == int64(height)*4
}

func presentationFormat(width, height entities.EMU) string {
	if isFourByThree(width, height) {
		return "On-screen Show (4:3)"
	}
	return "Custom"
}

func presentation(deck *entities.Deck) *xmlPresentation {
	p := &xmlPresentation{
		XmlnsA:          nsDrawing,
		XmlnsR:          nsRelationships,
		XmlnsP:          nsPresentation,
		SaveSubsetFonts: "1",
		Masters:         []xmlSlideMasterID{{ID: masterID, RID: "rId1"}},
		SlideSize:       xmlSlideSize{Cx: int64(deck.Width), Cy: int64(deck.Height)},
		// Notes pages are portrait letter regardless of slide size
		NotesSize: xmlExtent{Cx: 6858000, Cy: 9144000},
	}
	if isFourByThree(deck.Width, deck.Height) {
		p.SlideSize.Type = "screen4x3"
	}
	for i := range deck.Slides {
		p.Slides = append(p.Slides, xmlSlideID{
			ID:  firstSlideID + uint32(i),
			RID: "rId" + strconv.Itoa(i+2),
		})
	}
	return p
}

func presentationRels(slides int) *xmlRelationships {
	items := []xmlRelationship{{ID: "rId1", Type: relSlideMaster, Target: "slideMasters/slideMaster1.xml"}}
	for i := 1; i <= slides; i++ {
		items = append(items, xmlRelationship{
			ID:     "rId" + strconv.Itoa(i+1),
			Type:   relSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i),
		})
	}
	next := slides + 2
	for _, r := range []struct{ typ, target string }{
		{relPresProps, "presProps.xml"},
		{relViewProps, "viewProps.xml"},
		{relTheme, "theme/theme1.xml"},
		{relTableStyles, "tableStyles.xml"},
	} {
		items = append(items, xmlRelationship{ID: "rId" + strconv.Itoa(next), Type: r.typ, Target: r.target})
		next++
	}
	return relationships(items...)
}

// text normalizes slide text to NFC so equivalent input encodes identically
func text(s string) string {
	return norm.NFC.String(s)
}
