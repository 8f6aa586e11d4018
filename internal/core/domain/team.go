package domain

// TeamMember is one person on the about page.
type TeamMember struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Education  string  `json:"education"`
	Experience string  `json:"experience"`
	Order      float64 `json:"order"`

	// Image is the public path, e.g. "/team/arun-pandit.jpg".
	Image    string `json:"image,omitempty"`
	HasImage bool   `json:"hasImage"`
}

// Slug is the member's identifier for image matching and uniqueness.
func (m TeamMember) Slug() string {
	return Slugify(m.Name)
}
