// Package ooxml reads and rewrites Office Open XML packages (.docx, .pptx)
// part by part, so renderers can start from a template file.
package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"autosigns/pkg/atomicfile"
)

const contentTypesPart = "[Content_Types].xml"

// Package is an in-memory OOXML zip. Part order is preserved on write.
type Package struct {
	names []string
	parts map[string][]byte
}

// New returns an empty package.
func New() *Package {
	return &Package{parts: make(map[string][]byte)}
}

// Open loads the package at path.
func Open(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Read(data)
}

// Read loads a package from its zip bytes.
func Read(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read package (zip): %w", err)
	}

	p := New()
	for _, file := range zr.File {
		if file.FileInfo().IsDir() {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open part %s: %w", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read part %s: %w", file.Name, err)
		}
		p.Set(file.Name, content)
	}

	if _, ok := p.parts[contentTypesPart]; !ok {
		return nil, fmt.Errorf("not an OOXML package: %s missing", contentTypesPart)
	}
	return p, nil
}

// Part returns the content of a part.
func (p *Package) Part(name string) ([]byte, bool) {
	data, ok := p.parts[name]
	return data, ok
}

// Set adds or replaces a part.
func (p *Package) Set(name string, data []byte) {
	if _, ok := p.parts[name]; !ok {
		p.names = append(p.names, name)
	}
	p.parts[name] = data
}

// Clone returns a deep copy, so one template can seed many documents.
func (p *Package) Clone() *Package {
	c := New()
	for _, name := range p.names {
		c.Set(name, append([]byte(nil), p.parts[name]...))
	}
	return c
}

// WriteTo writes the package as a zip archive. The content types part goes
// first, as Office expects.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	ordered := make([]string, 0, len(p.names))
	if _, ok := p.parts[contentTypesPart]; ok {
		ordered = append(ordered, contentTypesPart)
	}
	for _, name := range p.names {
		if name != contentTypesPart {
			ordered = append(ordered, name)
		}
	}

	for _, name := range ordered {
		fw, err := zw.Create(name)
		if err != nil {
			return cw.n, fmt.Errorf("failed to create part %s: %w", name, err)
		}
		if _, err := fw.Write(p.parts[name]); err != nil {
			return cw.n, fmt.Errorf("failed to write part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("failed to close package: %w", err)
	}
	return cw.n, nil
}

// Bytes returns the zip encoding of the package.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the package to path. A failed save leaves path untouched.
func (p *Package) Save(path string) error {
	return atomicfile.Write(path, func(w io.Writer) error {
		_, err := p.WriteTo(w)
		return err
	})
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type relationships struct {
	Items []Relationship `xml:"Relationship"`
}

// Rels parses the relationships of source (e.g. "ppt/presentation.xml").
// Targets are resolved to package part names.
func (p *Package) Rels(source string) (map[string]Relationship, error) {
	dir, file := path.Split(source)
	relsName := dir + "_rels/" + file + ".rels"
	data, ok := p.parts[relsName]
	if !ok {
		return nil, fmt.Errorf("relationships part %s missing", relsName)
	}

	var rels relationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", relsName, err)
	}

	out := make(map[string]Relationship, len(rels.Items))
	for _, r := range rels.Items {
		target := r.Target
		if strings.HasPrefix(target, "/") {
			target = strings.TrimPrefix(target, "/")
		} else {
			target = path.Clean(path.Join(dir, target))
		}
		r.Target = target
		out[r.ID] = r
	}
	return out, nil
}

// Escape returns s with XML special characters escaped for element text and
// attribute values.
func Escape(s string) string {
	var b strings.Builder
	// EscapeText only fails when the writer does.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
