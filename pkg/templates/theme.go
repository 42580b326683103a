package templates

import (
	"fmt"

	"autosigns/pkg/ooxml"
)

// theme returns a minimal Office theme using font for both major and minor text.
func theme(font string) string {
	if font == "" {
		font = "Calibri"
	}
	font = ooxml.Escape(font)

	colors := []struct{ name, rgb string }{
		{"dk1", "000000"}, {"lt1", "FFFFFF"}, {"dk2", "1F497D"}, {"lt2", "EEECE1"},
		{"accent1", "4F81BD"}, {"accent2", "C0504D"}, {"accent3", "9BBB59"},
		{"accent4", "8064A2"}, {"accent5", "4BACC6"}, {"accent6", "F79646"},
		{"hlink", "0000FF"}, {"folHlink", "800080"},
	}
	var scheme string
	for _, c := range colors {
		scheme += fmt.Sprintf(`<a:%s><a:srgbClr val="%s"/></a:%s>`, c.name, c.rgb, c.name)
	}

	fill := `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`
	line := `<a:ln w="9525"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>`
	effect := `<a:effectStyle><a:effectLst/></a:effectStyle>`

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="%s" name="autosigns"><a:themeElements>`+
		`<a:clrScheme name="autosigns">%s</a:clrScheme>`+
		`<a:fontScheme name="autosigns"><a:majorFont><a:latin typeface="%[3]s"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>`+
		`<a:minorFont><a:latin typeface="%[3]s"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme>`+
		`<a:fmtScheme name="autosigns"><a:fillStyleLst>%[4]s%[4]s%[4]s</a:fillStyleLst>`+
		`<a:lnStyleLst>%[5]s%[5]s%[5]s</a:lnStyleLst>`+
		`<a:effectStyleLst>%[6]s%[6]s%[6]s</a:effectStyleLst>`+
		`<a:bgFillStyleLst>%[4]s%[4]s%[4]s</a:bgFillStyleLst></a:fmtScheme>`+
		`</a:themeElements></a:theme>`,
		nsA, scheme, font, fill, line, effect)
}
