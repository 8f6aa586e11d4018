package domain

// HeroImage is one slide of the homepage carousel.
type HeroImage struct {
	// Order is the 1-based position in the sorted directory listing.
	Order    int    `json:"order"`
	Filename string `json:"filename"`
	Alt      string `json:"alt"`

	// Path is the public path, e.g. "/hero/01-founding.jpg".
	Path string `json:"path"`
}
