package entity

import "time"

type JobCard struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Salary      string     `json:"salary"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	JobType     string     `json:"jobType,omitempty"`
	Skills      []string   `json:"skills"`
	PostedAt    *time.Time `json:"postedAt,omitempty"`
	PostedText  string     `json:"postedText"`
}

type ServiceCard struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ServiceTypes []string   `json:"serviceTypes"`
	Expertise    []string   `json:"expertise"`
	Location     string     `json:"location"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	Image        string     `json:"image"`
	Company      string     `json:"company"`
	Address      string     `json:"address"`
	PostedAt     *time.Time `json:"postedAt,omitempty"`
	PostedText   string     `json:"postedText"`
}

type PropertyCard struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Address    string     `json:"address"`
	BedBath    string     `json:"bedbath"`
	Details    string     `json:"details"`
	Location   string     `json:"location"`
	Price      float64    `json:"price"`
	PriceText  string     `json:"priceText"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	Image      string     `json:"image"`
	VendorName string     `json:"vendorName"`
	Status     string     `json:"status"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
	DistanceKm *float64   `json:"distanceKm,omitempty"`
	PostedAt   *time.Time `json:"postedAt,omitempty"`
	PostedText string     `json:"postedText"`
}

type ProductCard struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Image      string     `json:"image"`
	Price      float64    `json:"price"`
	PriceText  string     `json:"priceText"`
	Location   string     `json:"location"`
	Category   string     `json:"category"`
	Href       string     `json:"href"`
	PostedAt   *time.Time `json:"postedAt,omitempty"`
	PostedText string     `json:"postedText"`
}
