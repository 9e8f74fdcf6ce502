package entity

import "time"

const (
	UnknownUserName    = "Unknown User"
	ProfilePlaceholder = "/placeholder.svg?height=96&width=96"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ProfileLocation always serializes region and suburb, possibly empty.
type ProfileLocation struct {
	Region      string       `json:"region"`
	Suburb      string       `json:"suburb"`
	Country     string       `json:"country,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Label       string       `json:"label,omitempty"`
}

type Profile struct {
	UID         string                 `json:"uid"`
	DisplayName string                 `json:"displayName"`
	FirstName   string                 `json:"firstName,omitempty"`
	LastName    string                 `json:"lastName,omitempty"`
	Email       string                 `json:"email"`
	Phone       string                 `json:"phone"`
	PhotoURL    string                 `json:"photoURL"`
	Location    ProfileLocation        `json:"location"`
	CreatedAt   *time.Time             `json:"createdAt,omitempty"`
	Exists      bool                   `json:"exists"`
	Extra       map[string]interface{} `json:"extra,omitempty"`
}

// NeedsBackfill reports whether any contact or location field is still empty.
func (p *Profile) NeedsBackfill() bool {
	return p.DisplayName == "" || p.PhotoURL == "" || p.Email == "" || p.Phone == "" ||
		(p.Location.Region == "" && p.Location.Suburb == "")
}
