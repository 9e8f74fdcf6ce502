package usecase

import (
	"strings"

	"huhu/internal/domain/entity"
	"huhu/pkg/utils"
)

// FieldAliases lists the document paths that carry one logical field, in
// order of preference, and the literal used when all of them are empty.
type FieldAliases struct {
	Paths   []string
	Default string
}

func aliases(fallback string, paths ...string) FieldAliases {
	return FieldAliases{Paths: paths, Default: fallback}
}

// Value is the first non-empty raw value among the paths.
func (a FieldAliases) Value(l *entity.Listing) (interface{}, bool) {
	for _, path := range a.Paths {
		v, ok := l.Field(path)
		if ok && !isEmptyValue(v) {
			return v, true
		}
	}
	return nil, false
}

// String resolves the field as text: the first alias with a text form wins,
// else the default.
func (a FieldAliases) String(l *entity.Listing) string {
	for _, path := range a.Paths {
		v, ok := l.Field(path)
		if !ok || isEmptyValue(v) {
			continue
		}
		if s := textOf(v); s != "" {
			return s
		}
	}
	return a.Default
}

func isEmptyValue(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []interface{}:
		return len(t) == 0
	case []string:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	case float64:
		return t == 0
	case int64:
		return t == 0
	case bool:
		return !t
	default:
		return false
	}
}

func textOf(v interface{}) string {
	switch t := v.(type) {
	case []interface{}:
		return strings.Join(utils.StringSlice(t, ""), " ")
	case []string:
		return strings.Join(t, " ")
	default:
		return utils.String(v)
	}
}

type jobFieldTable struct {
	Title, Company, Salary, Image, Category, Description, Location, JobType, Skills, PostedAt FieldAliases
}

type serviceFieldTable struct {
	Title, Description, ServiceTypes, Expertise, Location, Phone, Email, Image, Company, Address, PostedAt FieldAliases
}

type propertyFieldTable struct {
	Title, Address, BedBath, Details, Town, State, Price, Phone, Email, Image, Vendor, Status, Latitude, Longitude, PostedAt FieldAliases
}

type productFieldTable struct {
	Name, Image, Price, Category, PropertyLocation, Region, Suburb, Country, PostedAt FieldAliases
}

var jobFields = jobFieldTable{
	Title:       aliases("Untitled Job", "title", "name"),
	Company:     aliases("Company", "company", "vendor.Company"),
	Salary:      aliases("Salary not specified", "salary"),
	Image:       aliases("/suit_case.jpg", "image", "vendor.photoUrl"),
	Category:    aliases("", "category", "consultType"),
	Description: aliases("", "description", "jDescription"),
	Location:    aliases("", "location.region", "region", "location.suburb", "suburb"),
	JobType:     aliases("", "jobType"),
	Skills:      aliases("", "skills"),
	PostedAt:    aliases("", "createdAt", "datePosted"),
}

var serviceFields = serviceFieldTable{
	Title:        aliases("Service Provider", "title", "vendor.Company"),
	Description:  aliases("", "description", "details"),
	ServiceTypes: aliases("", "serviceTypes", "serviceType"),
	Expertise:    aliases("", "expertise", "Expertise"),
	Location:     aliases("", "location.region", "location.state", "location.town"),
	Phone:        aliases("", "phone", "PhoneNumber"),
	Email:        aliases("", "email", "consultantEmail"),
	Image:        aliases("/user_placeholder.png", "image", "vendor.photoUrl"),
	Company:      aliases("", "company", "vendor.Company"),
	Address:      aliases("", "vendor.addresss", "address"),
	PostedAt:     aliases("", "createdAt", "datePosted"),
}

var propertyFields = propertyFieldTable{
	Title:     aliases("Property", "propertyTypes"),
	Address:   aliases("", "propertyAddie"),
	BedBath:   aliases("", "bedbath"),
	Details:   aliases("", "details", "description"),
	Town:      aliases("", "location.town"),
	State:     aliases("", "location.state"),
	Price:     aliases("", "rentPrice"),
	Phone:     aliases("", "phoneNumber", "phone"),
	Email:     aliases("", "email"),
	Image:     aliases("/property_placeholder.png", "images.0", "image"),
	Vendor:    aliases("Property Owner", "vendor.firstName"),
	Status:    aliases(entity.PropertyStatusAvailable, "status"),
	Latitude:  aliases("", "location.latitude"),
	Longitude: aliases("", "location.longitude"),
	PostedAt:  aliases("", "createdAt", "datePosted"),
}

var productFields = productFieldTable{
	Name:             aliases("Product", "name", "title"),
	Image:            aliases("/placeholder.svg?height=400&width=400", "images.0"),
	Price:            aliases("0", "price", "rentPrice"),
	Category:         aliases("", "category"),
	PropertyLocation: aliases("", "propertyLocation"),
	Region:           aliases("", "location.region", "location.state", "location.province"),
	Suburb:           aliases("", "location.suburb", "location.town", "location.city"),
	Country:          aliases("", "location.country"),
	PostedAt:         aliases("", "createdAt", "datePosted"),
}

// Search chains for each listing type.
var (
	jobSearchFields      = []FieldAliases{jobFields.Title, jobFields.Category, jobFields.Description, jobFields.Company}
	serviceSearchFields  = []FieldAliases{serviceFields.Title, aliases("", "category", "serviceType"), serviceFields.Description, aliases("", "Expertise"), aliases("", "expertise")}
	propertySearchFields = []FieldAliases{propertyFields.Title, propertyFields.Address, propertyFields.BedBath, aliases("", "details"), propertyFields.Town, propertyFields.State}
	productSearchFields  = []FieldAliases{productFields.Name, aliases("", "description"), productFields.Category}
)

func searchFieldsFor(kind entity.ListingKind) []FieldAliases {
	switch kind {
	case entity.KindJob:
		return jobSearchFields
	case entity.KindService:
		return serviceSearchFields
	case entity.KindProperty:
		return propertySearchFields
	default:
		return productSearchFields
	}
}
