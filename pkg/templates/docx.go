package templates

import (
	"fmt"

	"autosigns/pkg/ooxml"
	"autosigns/pkg/profile"
)

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

// Signage builds a blank Word document with the page geometry and Normal
// style of the profile's signs.
func Signage(p *profile.LocationProfile) *ooxml.Package {
	s := p.Signage
	pkg := ooxml.New()
	pkg.Set("[Content_Types].xml", []byte(docxContentTypes))
	pkg.Set("_rels/.rels", []byte(docxRootRels))
	pkg.Set("word/_rels/document.xml.rels", []byte(docxDocumentRels))

	orient := "portrait"
	if s.Landscape {
		orient = "landscape"
	}
	margin := ooxml.Twips(s.MarginIn)
	document := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="%s" xmlns:r="%s"><w:body><w:p/>`+
		`<w:sectPr><w:pgSz w:w="%d" w:h="%d" w:orient="%s"/>`+
		`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`+
		`</w:sectPr></w:body></w:document>`,
		nsW, nsR, ooxml.Twips(s.PageWidthIn), ooxml.Twips(s.PageHeightIn), orient, margin, margin, margin, margin)
	pkg.Set("word/document.xml", []byte(document))

	bold := ""
	if s.Bold {
		bold = "<w:b/>"
	}
	styles := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="%s"><w:docDefaults><w:rPrDefault><w:rPr>`+
		`<w:rFonts w:ascii="%[2]s" w:hAnsi="%[2]s" w:cs="%[2]s"/>%[3]s<w:sz w:val="%[4]d"/><w:szCs w:val="%[4]d"/>`+
		`</w:rPr></w:rPrDefault><w:pPrDefault><w:pPr><w:spacing w:before="0" w:after="%[5]d" w:line="240" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults>`+
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>`+
		`<w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/><w:tblPr><w:tblInd w:w="0" w:type="dxa"/>`+
		`<w:tblCellMar><w:top w:w="0" w:type="dxa"/><w:left w:w="108" w:type="dxa"/><w:bottom w:w="0" w:type="dxa"/><w:right w:w="108" w:type="dxa"/></w:tblCellMar></w:tblPr></w:style>`+
		`</w:styles>`,
		nsW, ooxml.Escape(s.FontFamily), bold, ooxml.HalfPoints(s.BaseFontPt), ooxml.Twips(s.SpaceAfterPt/72))
	pkg.Set("word/styles.xml", []byte(styles))
	return pkg
}
