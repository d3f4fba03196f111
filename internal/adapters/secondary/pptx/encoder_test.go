package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/deckgen/internal/decks"
	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

func cloudSecurityDeck(t *testing.T) *entities.Deck {
	t.Helper()
	deck, err := decks.NewCloudSecurity("Security Team").Deck(entities.DefaultStyle())
	require.NoError(t, err)
	return deck
}

func smallDeck() *entities.Deck {
	deck := entities.NewDeck("Small")
	title := entities.ContentBlock{Text: "Hello", Size: 40, Color: entities.RGB{R: 102, G: 126, B: 234}}
	deck.AddSlide(entities.SlideSpec{
		Layout: entities.LayoutTitleContent,
		Title:  &title,
		Body:   []entities.ContentBlock{{Text: "World", Size: 20}},
	})
	return deck
}

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestEncode_Deterministic(t *testing.T) {
	first, err := Encode(context.Background(), cloudSecurityDeck(t))
	require.NoError(t, err)
	second, err := Encode(context.Background(), cloudSecurityDeck(t))
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "encoding the same deck twice must yield identical bytes")
}

func TestEncode_PackageLayout(t *testing.T) {
	data, err := Encode(context.Background(), cloudSecurityDeck(t))
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.NotEmpty(t, zr.File)
	assert.Equal(t, partContentTypes, zr.File[0].Name)

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
		assert.True(t, f.Modified.Equal(zipEpoch), f.Name)
	}
	for _, want := range []string{partRootRels, partCore, partApp, partPresentation, partPresRels, partTheme, partMaster, "ppt/slides/slide12.xml"} {
		assert.True(t, names[want], want)
	}
	assert.False(t, names["ppt/slides/slide13.xml"])

	types := readPart(t, data, partContentTypes)
	assert.Equal(t, 12, strings.Count(types, ctSlide+`"`))

	pres := readPart(t, data, partPresentation)
	assert.Contains(t, pres, `<p:sldSz cx="9144000" cy="6858000" type="screen4x3">`)
	assert.Contains(t, pres, `<p:sldId id="256" r:id="rId2">`)
	assert.Contains(t, pres, `<p:sldId id="267" r:id="rId13">`)

	app := readPart(t, data, partApp)
	assert.Contains(t, app, "<Slides>12</Slides>")
	assert.Contains(t, app, "On-screen Show (4:3)")

	core := readPart(t, data, partCore)
	assert.Contains(t, core, "<dc:title>Cloud Security: Protecting Your Digital Sky</dc:title>")
	assert.Contains(t, core, "<dc:creator>Security Team</dc:creator>")
	assert.Contains(t, core, Identifier(cloudSecurityDeck(t)).URN())

	theme := readPart(t, data, partTheme)
	assert.Contains(t, theme, `<a:accent1><a:srgbClr val="667EEA"/></a:accent1>`)
	assert.Contains(t, theme, `<a:accent2><a:srgbClr val="764BA2"/></a:accent2>`)
}

func TestEncode_WellFormedParts(t *testing.T) {
	data, err := Encode(context.Background(), cloudSecurityDeck(t))
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		dec := xml.NewDecoder(rc)
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			require.NoError(t, err, f.Name)
		}
		rc.Close()
	}
}

func TestEncode_SlideMarkup(t *testing.T) {
	data, err := Encode(context.Background(), cloudSecurityDeck(t))
	require.NoError(t, err)

	t.Run("cover slide", func(t *testing.T) {
		slide := readPart(t, data, "ppt/slides/slide1.xml")
		assert.NotContains(t, slide, "<p:ph")
		assert.Equal(t, 3, strings.Count(slide, `txBox="1"`))
		assert.Contains(t, slide, `<a:srgbClr val="667EEA">`)
		assert.Contains(t, slide, `<a:ext cx="9144000" cy="6858000">`)
		assert.Contains(t, slide, `<a:off x="914400" y="2286000">`)
		assert.Contains(t, slide, `sz="4400" b="1" i="0"`)
		assert.Contains(t, slide, `algn="ctr"`)
		assert.Contains(t, slide, `wrap="square"`)

		rels := readPart(t, data, "ppt/slides/_rels/slide1.xml.rels")
		assert.Contains(t, rels, "slideLayout2.xml")
	})

	t.Run("content slide", func(t *testing.T) {
		slide := readPart(t, data, "ppt/slides/slide5.xml")
		assert.Contains(t, slide, `<p:ph type="title">`)
		assert.Contains(t, slide, `<p:ph idx="1">`)
		assert.Contains(t, slide, `<a:pPr lvl="1"><a:spcBef><a:spcPts val="800">`)
		assert.Contains(t, slide, `sz="1800" b="0" i="0"`)
		assert.Contains(t, slide, `<a:t>Common Threats</a:t>`)
		assert.NotContains(t, slide, `txBox="1"`)

		rels := readPart(t, data, "ppt/slides/_rels/slide5.xml.rels")
		assert.Contains(t, rels, "slideLayout1.xml")
	})

	t.Run("escaping", func(t *testing.T) {
		slide := readPart(t, data, "ppt/slides/slide2.xml")
		assert.Contains(t, slide, "<a:t>Q&amp;A</a:t>")
	})
}

func TestEncode_NormalizesText(t *testing.T) {
	deck := smallDeck()
	deck.Slides[0].Body[0].Text = "Cafe\u0301"

	data, err := Encode(context.Background(), deck)
	require.NoError(t, err)

	slide := readPart(t, data, "ppt/slides/slide1.xml")
	assert.Contains(t, slide, "Caf\u00e9")
	assert.NotContains(t, slide, "e\u0301")
}

func TestEncode_Errors(t *testing.T) {
	t.Run("invalid deck", func(t *testing.T) {
		_, err := Encode(context.Background(), entities.NewDeck("Empty"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid deck")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Encode(ctx, smallDeck())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIdentifier(t *testing.T) {
	a := Identifier(smallDeck())
	assert.Equal(t, a, Identifier(smallDeck()))

	other := smallDeck()
	other.Title = "Other"
	assert.NotEqual(t, a, Identifier(other))
}

func TestParagraph(t *testing.T) {
	tests := []struct {
		name    string
		block   entities.ContentBlock
		want    []string
		without []string
	}{
		{
			name:    "top level inherits everything",
			block:   entities.ContentBlock{Text: "Plain", Size: 20, Color: entities.RGB{R: 30, G: 41, B: 59}},
			want:    []string{`sz="2000"`, `b="0"`, `i="0"`, `<a:srgbClr val="1E293B">`},
			without: []string{"<a:pPr", "lvl=", "algn="},
		},
		{
			name:  "nested italic with spacing",
			block: entities.ContentBlock{Text: "Aside", Level: 1, Size: 18, Italic: true, SpaceBefore: 20},
			want:  []string{`lvl="1"`, `i="1"`, `<a:spcPts val="2000">`},
		},
		{
			name:  "centered bold",
			block: entities.ContentBlock{Text: "Banner", Size: 44, Bold: true, Align: entities.AlignCenter},
			want:  []string{`algn="ctr"`, `b="1"`, `sz="4400"`},
		},
		{
			name:  "left aligned",
			block: entities.ContentBlock{Text: "Left", Size: 12, Align: entities.AlignLeft},
			want:  []string{`algn="l"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := xml.Marshal(paragraph(tt.block))
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, string(out), w)
			}
			for _, w := range tt.without {
				assert.NotContains(t, string(out), w)
			}
		})
	}
}

func TestEncode_Company(t *testing.T) {
	data, err := Encode(context.Background(), smallDeck())
	require.NoError(t, err)
	assert.NotContains(t, readPart(t, data, partApp), "<Company>")

	deck := smallDeck()
	deck.Company = "Acme"
	data, err = Encode(context.Background(), deck)
	require.NoError(t, err)
	assert.Contains(t, readPart(t, data, partApp), "<Company>Acme</Company>")
}
