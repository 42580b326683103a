package profile

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"

	"autosigns/pkg/schedule"
)

var validate = validator.New()

// Validate checks the struct tags of every profile and the rules tags cannot
// express: blocks tile the whole day, names are unique, slides refer to real
// blocks and the font law matches the selected scaling.
func (s *Set) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid profiles: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid profiles: %w", err)
	}

	seen := make(map[string]bool)
	for i := range s.Profiles {
		p := &s.Profiles[i]
		key := strings.ToUpper(p.Name)
		if seen[key] {
			return fmt.Errorf("duplicate profile %q", p.Name)
		}
		seen[key] = true

		if err := p.validate(); err != nil {
			return fmt.Errorf("profile %s: %w", p.Name, err)
		}
	}
	return nil
}

func (p *LocationProfile) validate() error {
	if _, err := p.Location(); err != nil {
		return fmt.Errorf("unknown time zone %q: %w", p.TimeZone, err)
	}
	if err := checkTiling(p.Blocks); err != nil {
		return err
	}

	floors := make(map[string]bool)
	for _, f := range p.Floors {
		if floors[f.Name] {
			return fmt.Errorf("duplicate floor bucket %q", f.Name)
		}
		floors[f.Name] = true
		if f.Min != "" && f.Max != "" && f.Min > f.Max {
			return fmt.Errorf("floor bucket %q has min %q above max %q", f.Name, f.Min, f.Max)
		}
	}

	blocks := make(map[string]bool)
	for _, b := range p.Blocks {
		blocks[b.Name] = true
	}
	slides := make(map[int]bool)
	for _, bs := range p.Slides.BlockSlides {
		if !blocks[bs.Block] {
			return fmt.Errorf("slide %d refers to unknown block %q", bs.Slide, bs.Block)
		}
		if slides[bs.Slide] {
			return fmt.Errorf("slide %d is used by more than one block", bs.Slide)
		}
		slides[bs.Slide] = true
	}

	switch p.Slides.Scaling {
	case ScalingDensity:
		d := p.Slides.Density
		if d.Slope > 0 {
			return fmt.Errorf("density slope must not be positive, got %v", d.Slope)
		}
		if d.Max <= 0 || d.Min > d.Max {
			return fmt.Errorf("density bounds [%v, %v] are invalid", d.Min, d.Max)
		}
	case ScalingWidth:
		if p.Slides.Width.Budget <= 0 || p.Slides.Width.Max <= 0 {
			return fmt.Errorf("width scaling needs a positive budget and max")
		}
	}
	return nil
}

// checkTiling verifies that blocks cover [00:00, 24:00) without gaps or overlaps.
func checkTiling(blocks []schedule.TimeBlock) error {
	names := make(map[string]bool)
	sorted := make([]schedule.TimeBlock, len(blocks))
	copy(sorted, blocks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })

	var cursor schedule.Clock
	for _, b := range sorted {
		if names[b.Name] {
			return fmt.Errorf("duplicate time block %q", b.Name)
		}
		names[b.Name] = true

		if b.From >= b.To {
			return fmt.Errorf("time block %q is empty (%s-%s)", b.Name, b.From, b.To)
		}
		if b.From != cursor {
			return fmt.Errorf("time blocks leave a gap or overlap at %s (block %q starts at %s)", cursor, b.Name, b.From)
		}
		cursor = b.To
	}
	if cursor != schedule.DayEnd {
		return fmt.Errorf("time blocks end at %s instead of %s", cursor, schedule.DayEnd)
	}
	return nil
}
