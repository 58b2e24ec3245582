package internal

// Padding defines spacing on all four sides of an element. Widget margins
// are a uniform Padding scaled by the display factor, so panel insets stay
// proportional across screen sizes.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}
