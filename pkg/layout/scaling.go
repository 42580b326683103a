// Package layout holds the size laws the renderers use to fit a day's schedule
// onto a fixed slide or sheet.
package layout

import (
	"strings"
	"unicode/utf8"

	"autosigns/pkg/schedule"
)

// DensityFont shrinks the font linearly as a slide fills up.
// Size(rows) = clamp(Slope*rows + Intercept, Min, Max), truncated to whole points.
type DensityFont struct {
	Slope     float64 `yaml:"slope"`
	Intercept float64 `yaml:"intercept"`
	Max       float64 `yaml:"max"`
	Min       float64 `yaml:"min"`
}

func (d DensityFont) Size(rows int) int {
	size := d.Slope*float64(rows) + d.Intercept
	if size > d.Max {
		size = d.Max
	}
	if size < d.Min {
		size = d.Min
	}
	return int(size)
}

// FloorRows counts the table rows a floor-bucketed block occupies on a slide:
// every non-empty floor takes one header row plus its records, followed by a
// spacer row unless it is the last configured bucket.
func FloorRows(floors []schedule.FloorGroup) int {
	rows := 0
	for i, f := range floors {
		if len(f.Records) == 0 {
			continue
		}
		rows += len(f.Records) + 1
		if i < len(floors)-1 {
			rows++
		}
	}
	return rows
}

// WidthFont picks the largest font that keeps Size(rows)*rows within Budget.
type WidthFont struct {
	Budget int `yaml:"budget"`
	Max    int `yaml:"max"`
}

func (w WidthFont) Size(rows int) int {
	if rows <= 0 {
		return w.Max
	}
	size := w.Budget / rows
	if size > w.Max {
		size = w.Max
	}
	if size < 1 {
		size = 1
	}
	return size
}

// ColumnScale sizes a spreadsheet column from the longest value it holds.
// Width = (max(MinChars, longest) + Offset) * Factor. Values in Exclude, values
// longer than MaxChars (when set) and blanks do not take part in the scan.
type ColumnScale struct {
	MinChars int      `yaml:"min_chars" validate:"gte=0"`
	MaxChars int      `yaml:"max_chars,omitempty" validate:"gte=0"`
	Offset   float64  `yaml:"offset"`
	Factor   float64  `yaml:"factor" validate:"gt=0"`
	Exclude  []string `yaml:"exclude,omitempty"`
}

func (c ColumnScale) Width(values []string) float64 {
	longest := c.MinChars
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || c.excluded(v) {
			continue
		}
		n := utf8.RuneCountInString(v)
		if c.MaxChars > 0 && n > c.MaxChars {
			continue
		}
		if n > longest {
			longest = n
		}
	}
	return (float64(longest) + c.Offset) * c.Factor
}

func (c ColumnScale) excluded(v string) bool {
	for _, e := range c.Exclude {
		if v == e {
			return true
		}
	}
	return false
}
