package entity

// ListingImage is an image stored in object storage for a listing.
type ListingImage struct {
	URL  string `json:"url" firestore:"url"`
	Path string `json:"path" firestore:"path"`
	Name string `json:"name" firestore:"name"`
	Size int64  `json:"size" firestore:"size"`
	Type string `json:"type" firestore:"type"`
}

type ServicePostInput struct {
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company"`
	Category     string   `json:"category"`
	ServiceTypes []string `json:"serviceTypes" validate:"required,min=1"`
	Expertise    []string `json:"expertise" validate:"required,min=1"`
	Region       string   `json:"region" validate:"required"`
	Suburb       string   `json:"suburb" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone" validate:"required,ghphone"`
	Address      string   `json:"address"`
}

type PropertyLocationInput struct {
	Town      string  `json:"town"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PropertyPostInput struct {
	PropertyTypes     string                `json:"propertyTypes" validate:"required"`
	RentPrice         string                `json:"rentPrice" validate:"required,numeric"`
	BedBath           string                `json:"bedbath"`
	LeaseDuration     string                `json:"leaseDuration"`
	PropertyAddie     string                `json:"propertyAddie" validate:"required"`
	Details           string                `json:"details"`
	PhoneNumber       string                `json:"phoneNumber" validate:"required"`
	Email             string                `json:"email" validate:"omitempty,email"`
	Location          PropertyLocationInput `json:"location"`
	PropertyAmenities []string              `json:"propertyAmenities"`
	Lifestyles        []string              `json:"lifestyles"`
	// Existing image URLs kept when editing.
	Images []string `json:"images"`
}

const (
	PropertyStatusAvailable = "available"
	PropertyStatusActive    = "active"
	PropertyStatusFilled    = "filled"
)

type PropertyStatusInput struct {
	Status string `json:"status" validate:"required,oneof=available active filled"`
}
