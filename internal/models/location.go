package models

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within [-90,90] x [-180,180].
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// ResolvedLocation is a word label returned by a lookup provider together with the coordinates of the square it resolved.
type ResolvedLocation struct {
	Words      string     `json:"words"`
	Coordinate Coordinate `json:"coordinate"`
}

// SelectionResult pairs the resolved words of a coordinate and of its antipode.
type SelectionResult struct {
	Primary  ResolvedLocation `json:"primary"`
	Antipode ResolvedLocation `json:"antipode"`
}

// Role tags an annotation as the selected point or its antipode.
type Role string

const (
	RolePrimary  Role = "primary"
	RoleAntipode Role = "antipode"
)

// LocationAnnotation is the presentation-facing pin for one side of a selection.
type LocationAnnotation struct {
	Coordinate Coordinate `json:"coordinate"`
	Words      string     `json:"words"`
	Role       Role       `json:"role"`
}
