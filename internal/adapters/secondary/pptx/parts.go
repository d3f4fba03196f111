package pptx

import (
	"fmt"
	"strings"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Namespaces
const (
	nsDrawing       = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPresentation  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDublinCore    = "http://purl.org/dc/elements/1.1/"
	nsDCTerms       = "http://purl.org/dc/terms/"
	nsXSI           = "http://www.w3.org/2001/XMLSchema-instance"
	nsExtended      = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDocPropsVT    = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
)

// Relationship types
const (
	relOfficeDocument = nsRelationships + "/officeDocument"
	relExtendedProps  = nsRelationships + "/extended-properties"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relSlideMaster    = nsRelationships + "/slideMaster"
	relSlideLayout    = nsRelationships + "/slideLayout"
	relSlide          = nsRelationships + "/slide"
	relTheme          = nsRelationships + "/theme"
	relPresProps      = nsRelationships + "/presProps"
	relViewProps      = nsRelationships + "/viewProps"
	relTableStyles    = nsRelationships + "/tableStyles"
)

// Content types
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctPresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps     = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps     = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles   = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Part names
const (
	partContentTypes  = "[Content_Types].xml"
	partRootRels      = "_rels/.rels"
	partCore          = "docProps/core.xml"
	partApp           = "docProps/app.xml"
	partPresentation  = "ppt/presentation.xml"
	partPresRels      = "ppt/_rels/presentation.xml.rels"
	partPresProps     = "ppt/presProps.xml"
	partViewProps     = "ppt/viewProps.xml"
	partTableStyles   = "ppt/tableStyles.xml"
	partTheme         = "ppt/theme/theme1.xml"
	partMaster        = "ppt/slideMasters/slideMaster1.xml"
	partMasterRels    = "ppt/slideMasters/_rels/slideMaster1.xml.rels"
	partLayoutPattern = "ppt/slideLayouts/slideLayout%d.xml"
	partLayoutRels    = "ppt/slideLayouts/_rels/slideLayout%d.xml.rels"
	partSlidePattern  = "ppt/slides/slide%d.xml"
	partSlideRels     = "ppt/slides/_rels/slide%d.xml.rels"
)

const (
	masterID      uint32 = 2147483648
	firstLayoutID uint32 = 2147483649
	firstSlideID  uint32 = 256
)

// layoutDef is one slide layout of the master, in master order
type layoutDef struct {
	kind   entities.Layout
	name   string
	ooxml  string
	shapes string
}

var layouts = []layoutDef{
	{
		kind:   entities.LayoutTitleContent,
		name:   "Title and Content",
		ooxml:  "obj",
		shapes: placeholderShape(2, "Title 1", `type="title"`, "Click to edit Master title style") + placeholderShape(3, "Content Placeholder 2", `idx="1"`, "Click to edit Master text styles"),
	},
	{
		kind:  entities.LayoutBlank,
		name:  "Blank",
		ooxml: "blank",
	},
}

// layoutIndex returns the 1-based part number of a layout
func layoutIndex(kind entities.Layout) (int, error) {
	for i, l := range layouts {
		if l.kind == kind {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no layout for %q", kind)
}

// layoutKind maps a layout display name back to its kind
func layoutKind(name string) string {
	for _, l := range layouts {
		if l.name == name {
			return string(l.kind)
		}
	}
	return name
}

const groupShapeXML = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

const rootNamespaces = `xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRelationships + `" xmlns:p="` + nsPresentation + `"`

func placeholderShape(id int, name, ph, prompt string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>`+
		`<p:nvPr><p:ph %s/></p:nvPr></p:nvSpPr><p:spPr/>`+
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`,
		id, name, ph, prompt)
}

func layoutXML(l layoutDef) []byte {
	return []byte(xmlHeader +
		`<p:sldLayout ` + rootNamespaces + ` type="` + l.ooxml + `" preserve="1">` +
		`<p:cSld name="` + l.name + `"><p:spTree>` + groupShapeXML + l.shapes + `</p:spTree></p:cSld>` +
		`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`)
}

// bodyLevel is the master's default indentation and bullet for one nesting level
type bodyLevel struct {
	marL   int
	indent int
	bullet string
	size   int
}

var bodyLevels = []bodyLevel{
	{342900, -342900, "•", 3200},
	{742950, -285750, "–", 2800},
	{1143000, -228600, "•", 2400},
	{1600200, -228600, "–", 2000},
	{2057400, -228600, "»", 2000},
	{2514600, -228600, "•", 2000},
	{2971800, -228600, "•", 2000},
	{3429000, -228600, "•", 2000},
	{3886200, -228600, "•", 2000},
}

func textRunDefaults(size int, font string) string {
	return fmt.Sprintf(`<a:defRPr sz="%d" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill>`+
		`<a:latin typeface="+%[2]s-lt"/><a:ea typeface="+%[2]s-ea"/><a:cs typeface="+%[2]s-cs"/></a:defRPr>`, size, font)
}

func masterXML(width, height entities.EMU) []byte {
	// Placeholder frames scale with the page; the defaults are laid out for 10in x 7.5in.
	sx := func(v int64) int64 { return v * int64(width) / int64(entities.DefaultSlideWidth) }
	sy := func(v int64) int64 { return v * int64(height) / int64(entities.DefaultSlideHeight) }

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sldMaster ` + rootNamespaces + `>`)
	b.WriteString(`<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg><p:spTree>`)
	b.WriteString(groupShapeXML)
	fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="2" name="Title Placeholder 1"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>`+
		`<p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
		`<p:txBody><a:bodyPr vert="horz" lIns="91440" tIns="45720" rIns="91440" bIns="45720" rtlCol="0" anchor="ctr"><a:normAutofit/></a:bodyPr>`+
		`<a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>Click to edit Master title style</a:t></a:r></a:p></p:txBody></p:sp>`,
		sx(457200), sy(274638), sx(8229600), sy(1143000))
	fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="3" name="Text Placeholder 2"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>`+
		`<p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
		`<p:txBody><a:bodyPr vert="horz" lIns="91440" tIns="45720" rIns="91440" bIns="45720" rtlCol="0"><a:normAutofit/></a:bodyPr>`+
		`<a:lstStyle/><a:p><a:pPr lvl="0"/><a:r><a:rPr lang="en-US"/><a:t>Click to edit Master text styles</a:t></a:r></a:p></p:txBody></p:sp>`,
		sx(457200), sy(1600200), sx(8229600), sy(4525963))
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" ` +
		`accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`)
	b.WriteString(`<p:sldLayoutIdLst>`)
	for i := range layouts {
		fmt.Fprintf(&b, `<p:sldLayoutId id="%d" r:id="rId%d"/>`, firstLayoutID+uint32(i), i+1)
	}
	b.WriteString(`</p:sldLayoutIdLst>`)
	b.WriteString(`<p:txStyles><p:titleStyle><a:lvl1pPr algn="l" defTabSz="914400" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1">` +
		`<a:spcBef><a:spcPct val="0"/></a:spcBef><a:buNone/>` + textRunDefaults(4400, "mj") + `</a:lvl1pPr></p:titleStyle>`)
	b.WriteString(`<p:bodyStyle>`)
	for i, lvl := range bodyLevels {
		fmt.Fprintf(&b, `<a:lvl%dpPr marL="%d" indent="%d" algn="l" defTabSz="914400" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1">`+
			`<a:spcBef><a:spcPct val="20000"/></a:spcBef><a:buFont typeface="Arial"/><a:buChar char="%s"/>%s</a:lvl%dpPr>`,
			i+1, lvl.marL, lvl.indent, lvl.bullet, textRunDefaults(lvl.size, "mn"), i+1)
	}
	b.WriteString(`</p:bodyStyle>`)
	b.WriteString(`<p:otherStyle><a:defPPr><a:defRPr lang="en-US"/></a:defPPr></p:otherStyle></p:txStyles></p:sldMaster>`)
	return []byte(b.String())
}

func themeXML(colors entities.ColorScheme) []byte {
	srgb := func(tag string, c entities.RGB) string {
		return `<a:` + tag + `><a:srgbClr val="` + c.Hex() + `"/></a:` + tag + `>`
	}
	fixed := func(tag, hex string) string {
		return `<a:` + tag + `><a:srgbClr val="` + hex + `"/></a:` + tag + `>`
	}
	solid := `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<a:theme xmlns:a="` + nsDrawing + `" name="Deck Theme"><a:themeElements>`)
	b.WriteString(`<a:clrScheme name="Deck">`)
	b.WriteString(`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1><a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>`)
	b.WriteString(srgb("dk2", colors.Text))
	b.WriteString(fixed("lt2", "EEECE1"))
	b.WriteString(srgb("accent1", colors.Primary))
	b.WriteString(srgb("accent2", colors.Secondary))
	b.WriteString(srgb("accent3", colors.Accent))
	b.WriteString(fixed("accent4", "4BACC6"))
	b.WriteString(fixed("accent5", "F79646"))
	b.WriteString(fixed("accent6", "9BBB59"))
	b.WriteString(fixed("hlink", "0000FF"))
	b.WriteString(fixed("folHlink", "800080"))
	b.WriteString(`</a:clrScheme>`)
	font := `<a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/>`
	b.WriteString(`<a:fontScheme name="Deck"><a:majorFont>` + font + `</a:majorFont><a:minorFont>` + font + `</a:minorFont></a:fontScheme>`)
	b.WriteString(`<a:fmtScheme name="Deck"><a:fillStyleLst>` + strings.Repeat(solid, 3) + `</a:fillStyleLst><a:lnStyleLst>`)
	for _, w := range []int{9525, 25400, 38100} {
		fmt.Fprintf(&b, `<a:ln w="%d" cap="flat" cmpd="sng" algn="ctr">%s<a:prstDash val="solid"/></a:ln>`, w, solid)
	}
	b.WriteString(`</a:lnStyleLst><a:effectStyleLst>` + strings.Repeat(`<a:effectStyle><a:effectLst/></a:effectStyle>`, 3) + `</a:effectStyleLst>`)
	b.WriteString(`<a:bgFillStyleLst>` + strings.Repeat(solid, 3) + `</a:bgFillStyleLst></a:fmtScheme>`)
	b.WriteString(`</a:themeElements><a:objectDefaults/><a:extraClrSchemeLst/></a:theme>`)
	return []byte(b.String())
}

const (
	presPropsXML   = xmlHeader + `<p:presentationPr ` + rootNamespaces + `/>`
	viewPropsXML   = xmlHeader + `<p:viewPr ` + rootNamespaces + `/>`
	tableStylesXML = xmlHeader + `<a:tblStyleLst xmlns:a="` + nsDrawing + `" def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`
)
