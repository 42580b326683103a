package ooxml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const presentationPart = "ppt/presentation.xml"

type presentation struct {
	SlideIDs []struct {
		RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
}

// Slides returns the slide part names of a presentation in show order.
func (p *Package) Slides() ([]string, error) {
	data, ok := p.parts[presentationPart]
	if !ok {
		return nil, fmt.Errorf("not a presentation: %s missing", presentationPart)
	}

	var pres presentation
	if err := xml.Unmarshal(data, &pres); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", presentationPart, err)
	}

	rels, err := p.Rels(presentationPart)
	if err != nil {
		return nil, err
	}

	slides := make([]string, 0, len(pres.SlideIDs))
	for _, sid := range pres.SlideIDs {
		rel, ok := rels[sid.RID]
		if !ok {
			return nil, fmt.Errorf("slide relationship %s not found", sid.RID)
		}
		if _, ok := p.parts[rel.Target]; !ok {
			return nil, fmt.Errorf("slide part %s missing", rel.Target)
		}
		slides = append(slides, rel.Target)
	}
	return slides, nil
}

// SetHidden marks a slide hidden (show="0") or visible.
func SetHidden(slideXML string, hidden bool) string {
	start := strings.Index(slideXML, "<p:sld")
	for start >= 0 {
		// Skip <p:sldLayoutId and similar longer tags.
		next := slideXML[start+len("<p:sld"):]
		if len(next) > 0 && (next[0] == ' ' || next[0] == '>' || next[0] == '\n' || next[0] == '\r' || next[0] == '\t') {
			break
		}
		idx := strings.Index(next, "<p:sld")
		if idx < 0 {
			return slideXML
		}
		start += len("<p:sld") + idx
	}
	if start < 0 {
		return slideXML
	}

	end := strings.Index(slideXML[start:], ">")
	if end < 0 {
		return slideXML
	}
	end += start

	tag := slideXML[start:end]
	tag = removeAttr(tag, "show")
	if hidden {
		tag = "<p:sld show=\"0\"" + tag[len("<p:sld"):]
	}
	return slideXML[:start] + tag + slideXML[end:]
}

func removeAttr(tag, name string) string {
	key := " " + name + "=\""
	i := strings.Index(tag, key)
	if i < 0 {
		return tag
	}
	j := strings.Index(tag[i+len(key):], "\"")
	if j < 0 {
		return tag
	}
	return tag[:i] + tag[i+len(key)+j+1:]
}
