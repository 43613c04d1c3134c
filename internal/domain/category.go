package domain

// Category groups tasks by area of study.
// It is an immutable reference: tasks point at it via CategoryID and
// sessions carry a snapshot of it taken at creation time.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // hex color used for badges and chart lines
}
