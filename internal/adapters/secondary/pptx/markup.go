package pptx

import "encoding/xml"

// Write-side element types. Tags carry their literal prefixes; the namespace
// declarations live on each root element.

type xmlRelationships struct {
	XMLName xml.Name          `xml:"Relationships"`
	Xmlns   string            `xml:"xmlns,attr"`
	Items   []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xmlContentTypes struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlCoreProperties struct {
	XMLName    xml.Name `xml:"cp:coreProperties"`
	XmlnsCP    string   `xml:"xmlns:cp,attr"`
	XmlnsDC    string   `xml:"xmlns:dc,attr"`
	XmlnsTerms string   `xml:"xmlns:dcterms,attr"`
	XmlnsXSI   string   `xml:"xmlns:xsi,attr"`
	Title      string   `xml:"dc:title"`
	Creator    string   `xml:"dc:creator,omitempty"`
	Identifier string   `xml:"dc:identifier"`
}

type xmlAppProperties struct {
	XMLName            xml.Name `xml:"Properties"`
	Xmlns              string   `xml:"xmlns,attr"`
	XmlnsVT            string   `xml:"xmlns:vt,attr"`
	Application        string   `xml:"Application"`
	PresentationFormat string   `xml:"PresentationFormat"`
	Slides             int      `xml:"Slides"`
	Company            string   `xml:"Company,omitempty"`
}

type xmlPresentation struct {
	XMLName         xml.Name           `xml:"p:presentation"`
	XmlnsA          string             `xml:"xmlns:a,attr"`
	XmlnsR          string             `xml:"xmlns:r,attr"`
	XmlnsP          string             `xml:"xmlns:p,attr"`
	SaveSubsetFonts string             `xml:"saveSubsetFonts,attr"`
	Masters         []xmlSlideMasterID `xml:"p:sldMasterIdLst>p:sldMasterId"`
	Slides          []xmlSlideID       `xml:"p:sldIdLst>p:sldId"`
	SlideSize       xmlSlideSize       `xml:"p:sldSz"`
	NotesSize       xmlExtent          `xml:"p:notesSz"`
}

type xmlSlideMasterID struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type xmlSlideID struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type xmlSlideSize struct {
	Cx   int64  `xml:"cx,attr"`
	Cy   int64  `xml:"cy,attr"`
	Type string `xml:"type,attr,omitempty"`
}

type xmlSlide struct {
	XMLName   xml.Name     `xml:"p:sld"`
	XmlnsA    string       `xml:"xmlns:a,attr"`
	XmlnsR    string       `xml:"xmlns:r,attr"`
	XmlnsP    string       `xml:"xmlns:p,attr"`
	Tree      xmlShapeTree `xml:"p:cSld>p:spTree"`
	ClrMapOvr xmlClrMapOvr `xml:"p:clrMapOvr"`
}

type xmlClrMapOvr struct {
	Master struct{} `xml:"a:masterClrMapping"`
}

type xmlShapeTree struct {
	Group      xmlGroupNonVisual `xml:"p:nvGrpSpPr"`
	GroupProps xmlGroupProps     `xml:"p:grpSpPr"`
	Shapes     []xmlShape        `xml:"p:sp"`
}

type xmlGroupNonVisual struct {
	CNvPr      xmlCNvPr `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

type xmlGroupProps struct {
	Xfrm xmlGroupXfrm `xml:"a:xfrm"`
}

type xmlGroupXfrm struct {
	Off   xmlOffset `xml:"a:off"`
	Ext   xmlExtent `xml:"a:ext"`
	ChOff xmlOffset `xml:"a:chOff"`
	ChExt xmlExtent `xml:"a:chExt"`
}

type xmlShape struct {
	NonVisual xmlShapeNonVisual `xml:"p:nvSpPr"`
	Props     xmlShapeProps     `xml:"p:spPr"`
	TextBody  *xmlTextBody      `xml:"p:txBody,omitempty"`
}

type xmlShapeNonVisual struct {
	CNvPr   xmlCNvPr   `xml:"p:cNvPr"`
	CNvSpPr xmlCNvSpPr `xml:"p:cNvSpPr"`
	NvPr    xmlNvPr    `xml:"p:nvPr"`
}

type xmlCNvPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type xmlCNvSpPr struct {
	TxBox   string      `xml:"txBox,attr,omitempty"`
	SpLocks *xmlSpLocks `xml:"a:spLocks,omitempty"`
}

type xmlSpLocks struct {
	NoGrp string `xml:"noGrp,attr"`
}

type xmlNvPr struct {
	Placeholder *xmlPlaceholder `xml:"p:ph,omitempty"`
}

type xmlPlaceholder struct {
	Type string `xml:"type,attr,omitempty"`
	Idx  string `xml:"idx,attr,omitempty"`
}

type xmlShapeProps struct {
	Xfrm      *xmlXfrm      `xml:"a:xfrm,omitempty"`
	Geometry  *xmlPrstGeom  `xml:"a:prstGeom,omitempty"`
	SolidFill *xmlSolidFill `xml:"a:solidFill,omitempty"`
	NoFill    *struct{}     `xml:"a:noFill,omitempty"`
	Line      *xmlLine      `xml:"a:ln,omitempty"`
}

type xmlXfrm struct {
	Off xmlOffset `xml:"a:off"`
	Ext xmlExtent `xml:"a:ext"`
}

type xmlOffset struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type xmlExtent struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type xmlPrstGeom struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type xmlSolidFill struct {
	Color xmlSRGB `xml:"a:srgbClr"`
}

type xmlSRGB struct {
	Val string `xml:"val,attr"`
}

type xmlLine struct {
	NoFill struct{} `xml:"a:noFill"`
}

type xmlTextBody struct {
	BodyPr     xmlBodyPr      `xml:"a:bodyPr"`
	LstStyle   struct{}       `xml:"a:lstStyle"`
	Paragraphs []xmlParagraph `xml:"a:p"`
}

type xmlBodyPr struct {
	Wrap      string    `xml:"wrap,attr,omitempty"`
	RtlCol    string    `xml:"rtlCol,attr,omitempty"`
	SpAutoFit *struct{} `xml:"a:spAutoFit,omitempty"`
}

type xmlParagraph struct {
	Props *xmlParagraphProps `xml:"a:pPr,omitempty"`
	Runs  []xmlRun           `xml:"a:r"`
}

type xmlParagraphProps struct {
	Level       string          `xml:"lvl,attr,omitempty"`
	Align       string          `xml:"algn,attr,omitempty"`
	SpaceBefore *xmlSpaceBefore `xml:"a:spcBef,omitempty"`
}

type xmlSpaceBefore struct {
	Points xmlSpacePoints `xml:"a:spcPts"`
}

type xmlSpacePoints struct {
	Val int `xml:"val,attr"`
}

type xmlRun struct {
	Props xmlRunProps `xml:"a:rPr"`
	Text  string      `xml:"a:t"`
}

type xmlRunProps struct {
	Lang      string       `xml:"lang,attr"`
	Size      int          `xml:"sz,attr"`
	Bold      string       `xml:"b,attr"`
	Italic    string       `xml:"i,attr"`
	Dirty     string       `xml:"dirty,attr"`
	SolidFill xmlSolidFill `xml:"a:solidFill"`
}
