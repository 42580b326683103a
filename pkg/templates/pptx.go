package templates

import (
	"fmt"
	"strings"

	"autosigns/pkg/ooxml"
	"autosigns/pkg/profile"
)

// HeaderPlaceholder marks the run that receives the per-day header line.
const HeaderPlaceholder = "{{HEADER}}"

const (
	nsA  = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsP  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsPR = "http://schemas.openxmlformats.org/package/2006/relationships"

	relSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTheme       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relOfficeDoc   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"

	slideWidth  = 12192000
	slideHeight = 6858000
	rowHeight   = 370840
	margin      = 228600
)

var columnTitles = map[string]string{
	profile.FieldStart:      "Start",
	profile.FieldEnd:        "End",
	profile.FieldSection:    "Section",
	profile.FieldTitle:      "Course",
	profile.FieldInstructor: "Instructor",
	profile.FieldRoom:       "Room",
	profile.FieldRoomNumber: "Room",
}

// Slides builds a deck with a cover slide followed by one schedule slide per
// block slide of the profile. Each schedule slide holds a header text box with
// HeaderPlaceholder and a table with the profile's header rows plus one
// sample body row.
func Slides(p *profile.LocationProfile) *ooxml.Package {
	s := p.Slides
	count := 1
	for _, bs := range s.BlockSlides {
		if bs.Slide > count {
			count = bs.Slide
		}
	}

	pkg := ooxml.New()

	var types strings.Builder
	types.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	types.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	types.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	types.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	types.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	types.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	types.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&types, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	types.WriteString(`</Types>`)
	pkg.Set("[Content_Types].xml", []byte(types.String()))

	pkg.Set("_rels/.rels", []byte(rels(relation{"rId1", relOfficeDoc, "ppt/presentation.xml"})))

	presRels := []relation{{"rId1", relSlideMaster, "slideMasters/slideMaster1.xml"}, {"rId2", relTheme, "theme/theme1.xml"}}
	var ids strings.Builder
	for i := 1; i <= count; i++ {
		rid := fmt.Sprintf("rId%d", i+2)
		presRels = append(presRels, relation{rid, relSlide, fmt.Sprintf("slides/slide%d.xml", i)})
		fmt.Fprintf(&ids, `<p:sldId id="%d" r:id="%s"/>`, 255+i, rid)
	}
	pkg.Set("ppt/presentation.xml", []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" saveSubsetFonts="1">`+
		`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`+
		`<p:sldIdLst>%s</p:sldIdLst>`+
		`<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="6858000" cy="9144000"/></p:presentation>`,
		nsA, nsR, nsP, ids.String(), slideWidth, slideHeight)))
	pkg.Set("ppt/_rels/presentation.xml.rels", []byte(rels(presRels...)))

	pkg.Set("ppt/slideMasters/slideMaster1.xml", []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"><p:cSld>`+
		`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="000000"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`+
		`%s</p:cSld>`+
		`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`+
		`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst></p:sldMaster>`,
		nsA, nsR, nsP, emptyTree)))
	pkg.Set("ppt/slideMasters/_rels/slideMaster1.xml.rels", []byte(rels(
		relation{"rId1", relSlideLayout, "../slideLayouts/slideLayout1.xml"},
		relation{"rId2", relTheme, "../theme/theme1.xml"},
	)))

	pkg.Set("ppt/slideLayouts/slideLayout1.xml", []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" type="blank" preserve="1"><p:cSld name="Blank">%s</p:cSld>`+
		`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`,
		nsA, nsR, nsP, emptyTree)))
	pkg.Set("ppt/slideLayouts/_rels/slideLayout1.xml.rels", []byte(rels(
		relation{"rId1", relSlideMaster, "../slideMasters/slideMaster1.xml"},
	)))

	pkg.Set("ppt/theme/theme1.xml", []byte(theme(s.BodyFont.Family)))

	layoutRel := []byte(rels(relation{"rId1", relSlideLayout, "../slideLayouts/slideLayout1.xml"}))
	for i := 1; i <= count; i++ {
		var shapes string
		if i == 1 {
			shapes = textBox(2, "Title", p.Title+" - "+p.Label(), s.HeaderFont)
		} else {
			shapes = scheduleTable(p) + textBox(3, "Header", HeaderPlaceholder, s.HeaderFont)
		}
		pkg.Set(fmt.Sprintf("ppt/slides/slide%d.xml", i), []byte(slide(shapes)))
		pkg.Set(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i), layoutRel)
	}
	return pkg
}

const emptyTree = `<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr></p:spTree>`

type relation struct {
	id, typ, target string
}

func rels(items ...relation) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&b, `<Relationships xmlns="%s">`, nsPR)
	for _, r := range items {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"/>`, r.id, r.typ, r.target)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func slide(shapes string) string {
	tree := strings.Replace(emptyTree, "</p:spTree>", shapes+"</p:spTree>", 1)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"><p:cSld>%s</p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`,
		nsA, nsR, nsP, tree)
}

func textBox(id int, name, text string, font profile.Font) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
		`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`+
		`<a:p><a:pPr algn="ctr"/><a:r><a:rPr lang="en-US" sz="%d" dirty="0"><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`,
		id, name, margin, margin/2, slideWidth-2*margin, 4*rowHeight,
		int(font.SizePt*100), ooxml.Escape(font.Family), ooxml.Escape(text))
}

func scheduleTable(p *profile.LocationProfile) string {
	s := p.Slides
	weights := make([]int, len(s.Columns))
	total := 0
	for i, c := range s.Columns {
		weights[i] = 2
		if c == profile.FieldTitle {
			weights[i] = 5
		}
		total += weights[i]
	}

	width := slideWidth - 2*margin
	var grid strings.Builder
	for _, w := range weights {
		fmt.Fprintf(&grid, `<a:gridCol w="%d"/>`, width*w/total)
	}

	var rows strings.Builder
	for i := 0; i < s.HeaderRows; i++ {
		rows.WriteString(fmt.Sprintf(`<a:tr h="%d">`, rowHeight))
		for _, c := range s.Columns {
			rows.WriteString(cell(columnTitles[c], s.BodyFont))
		}
		rows.WriteString(`</a:tr>`)
	}
	rows.WriteString(fmt.Sprintf(`<a:tr h="%d">`, rowHeight))
	for range s.Columns {
		rows.WriteString(cell("", s.BodyFont))
	}
	rows.WriteString(`</a:tr>`)

	return fmt.Sprintf(`<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="4" name="Schedule"/>`+
		`<p:cNvGraphicFramePr><a:graphicFrameLocks noGrp="1"/></p:cNvGraphicFramePr><p:nvPr/></p:nvGraphicFramePr>`+
		`<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`+
		`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table">`+
		`<a:tbl><a:tblPr firstRow="1"/><a:tblGrid>%s</a:tblGrid>%s</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`,
		margin, 5*rowHeight, width, (s.HeaderRows+1)*rowHeight, grid.String(), rows.String())
}

func cell(text string, font profile.Font) string {
	if text == "" {
		return `<a:tc><a:txBody><a:bodyPr/><a:lstStyle/><a:p><a:endParaRPr lang="en-US" dirty="0"/></a:p></a:txBody><a:tcPr/></a:tc>`
	}
	return fmt.Sprintf(`<a:tc><a:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" b="1" dirty="0">`+
		`<a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r></a:p></a:txBody><a:tcPr/></a:tc>`,
		ooxml.Escape(font.Family), ooxml.Escape(text))
}
