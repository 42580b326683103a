package ooxml

// Twips converts inches to twentieths of a point, the WordprocessingML
// length unit.
func Twips(inches float64) int {
	return int(inches*1440 + 0.5)
}

// HalfPoints converts a font size to the w:sz unit.
func HalfPoints(pt float64) int {
	return int(pt*2 + 0.5)
}

// Hundredths converts a font size to the DrawingML sz unit.
func Hundredths(pt float64) int {
	return int(pt*100 + 0.5)
}
