package banner

// Spec is one target banner size in pixels.
type Spec struct {
	Width  int
	Height int
}

// Sizes is the fixed set of banner dimensions rendered for every upload.
// Render and publish order follows this list.
var Sizes = []Spec{
	{Width: 300, Height: 250},
	{Width: 728, Height: 90},
	{Width: 160, Height: 600},
	{Width: 300, Height: 600},
}

// Image is one rendered variant together with the spec it was rendered for.
type Image struct {
	Spec Spec
	Data []byte
}
