package profile

import "strings"

// Token returns the building code of a report Building value, the text before
// the first " - " ("GBC - UC Berkeley Extension ..." -> "GBC").
func Token(building string) string {
	building = strings.TrimSpace(building)
	if i := strings.Index(building, " - "); i >= 0 {
		return strings.TrimSpace(building[:i])
	}
	return building
}

// Resolve picks the profile for a report Building value. An exact Building
// match wins, otherwise the building code is compared case-insensitively.
func (s *Set) Resolve(building string) (*LocationProfile, bool) {
	trimmed := strings.TrimSpace(building)
	for i := range s.Profiles {
		if s.Profiles[i].Building != "" && s.Profiles[i].Building == trimmed {
			return &s.Profiles[i], true
		}
	}
	token := Token(trimmed)
	for i := range s.Profiles {
		if strings.EqualFold(s.Profiles[i].BuildingToken, token) {
			return &s.Profiles[i], true
		}
	}
	return nil, false
}

// Lookup returns the profile with the given short name.
func (s *Set) Lookup(name string) (*LocationProfile, bool) {
	for i := range s.Profiles {
		if strings.EqualFold(s.Profiles[i].Name, name) {
			return &s.Profiles[i], true
		}
	}
	return nil, false
}

// Names lists the profile short names in order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.Profiles))
	for _, p := range s.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// Instructor renders an instructor cell. The TBA sentinel always becomes the
// TBA token; an empty value becomes the token only when blankAsTBA is set.
func (s *Set) Instructor(name string, blankAsTBA bool) string {
	name = strings.TrimSpace(name)
	switch {
	case name == s.TBASentinel:
		return s.TBAToken
	case name == "" && blankAsTBA:
		return s.TBAToken
	}
	return name
}
