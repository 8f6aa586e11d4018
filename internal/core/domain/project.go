package domain

import "fmt"

// Nepal bounding box. Every accepted project lies inside it.
const (
	NepalLatMin = 26.3479
	NepalLatMax = 30.4227
	NepalLngMin = 80.0884
	NepalLngMax = 88.2015
)

// Project is a completed engagement shown on the projects page and map.
type Project struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Client   string          `json:"client"`
	Category string          `json:"category"`
	Year     int             `json:"year"`
	Location ProjectLocation `json:"location"`
	Scope    []string        `json:"scope"`
	Media    ProjectMedia    `json:"media"`
	Featured bool            `json:"featured"`
}

// ProjectLocation is where a project took place.
type ProjectLocation struct {
	Name        string      `json:"name"`
	District    string      `json:"district,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ProjectMedia holds paths relative to the projects content root,
// e.g. "ktft-fast-track/images/01.jpg".
type ProjectMedia struct {
	Images    []string `json:"images"`
	PDFs      []string `json:"pdfs"`
	HeroImage string   `json:"heroImage,omitempty"`
}

// ValidateCoordinates checks the point against the Nepal bounding box.
func ValidateCoordinates(c Coordinates, projectID string) error {
	if c.Lat < NepalLatMin || c.Lat > NepalLatMax {
		return &ValidationError{
			EntityID: projectID,
			Field:    "coordinates_lat",
			Value:    fmt.Sprint(c.Lat),
			Reason:   fmt.Sprintf("valid range for Nepal is %v°N to %v°N", NepalLatMin, NepalLatMax),
			Kind:     ErrOutOfBounds,
		}
	}
	if c.Lng < NepalLngMin || c.Lng > NepalLngMax {
		return &ValidationError{
			EntityID: projectID,
			Field:    "coordinates_lng",
			Value:    fmt.Sprint(c.Lng),
			Reason:   fmt.Sprintf("valid range for Nepal is %v°E to %v°E", NepalLngMin, NepalLngMax),
			Kind:     ErrOutOfBounds,
		}
	}
	return nil
}
