package usecase

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/type/latlng"

	"huhu/internal/domain/entity"
	"huhu/internal/domain/repository"
	"huhu/pkg/logger"
	"huhu/pkg/utils"
)

var (
	profileNameKeys  = []string{"displayName", "name", "fullName", "@fullname", "companyName", "company", "username"}
	profileEmailKeys = []string{"email", "contactEmail", "contact.email", "primaryEmail"}
	profilePhoneKeys = []string{"phone", "contactPhone", "contact.phone", "phoneNumber", "primaryPhone"}
	profilePhotoKeys = []string{"photoURL", "photoUrl", "image", "avatar", "profilePicture", "photo"}

	regionKeys  = []string{"region", "state", "province"}
	suburbKeys  = []string{"suburb", "town", "city", "district"}
	countryKeys = []string{"country"}
)

type ProfileUseCase struct {
	vendorRepo  repository.VendorRepository
	listingRepo repository.ListingRepository
}

func NewProfileUseCase(vendorRepo repository.VendorRepository, listingRepo repository.ListingRepository) *ProfileUseCase {
	return &ProfileUseCase{
		vendorRepo:  vendorRepo,
		listingRepo: listingRepo,
	}
}

// profileSource is a partial profile read from one document.
type profileSource struct {
	displayName string
	email       string
	phone       string
	photoURL    string
	location    entity.ProfileLocation
	createdAt   *time.Time
}

// GetUserProfile reads the vendor profile and fills gaps from the user's own
// listings. The vendor document wins wherever it has a value.
func (uc *ProfileUseCase) GetUserProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if vendor != nil {
		data = vendor.Data
	}
	base := vendorProfileSource(data)

	profile := &entity.Profile{
		UID:         userID,
		DisplayName: base.displayName,
		Email:       base.email,
		Phone:       base.phone,
		PhotoURL:    base.photoURL,
		Location:    base.location,
		CreatedAt:   base.createdAt,
		Exists:      vendor != nil,
	}
	if data != nil {
		if uid := utils.String(data["uid"]); uid != "" {
			profile.UID = uid
		}
		profile.FirstName = utils.String(data["firstName"])
		profile.LastName = utils.String(data["lastName"])
		profile.Extra = extraProfileFields(data)
	}

	if vendor == nil || profile.NeedsBackfill() {
		if fallback := uc.fallbackProfile(ctx, userID); fallback != nil {
			mergeProfile(profile, fallback)
		}
	}

	if profile.DisplayName == "" {
		profile.DisplayName = entity.UnknownUserName
	}
	if profile.PhotoURL == "" {
		profile.PhotoURL = entity.ProfilePlaceholder
	}

	return profile, nil
}

// fallbackProfile looks at the user's product listing, then job listing.
// Read failures are logged and treated as no fallback.
func (uc *ProfileUseCase) fallbackProfile(ctx context.Context, userID string) *profileSource {
	product, err := uc.listingRepo.FindLatestByVendor(ctx, entity.KindProduct, userID)
	if err != nil {
		logger.Warn("Error fetching fallback profile for %s from products: %v", userID, err)
		return nil
	}
	if product != nil {
		return productProfileSource(product)
	}

	job, err := uc.listingRepo.FindLatestByVendor(ctx, entity.KindJob, userID)
	if err != nil {
		logger.Warn("Error fetching fallback profile for %s from jobs: %v", userID, err)
		return nil
	}
	if job != nil {
		return jobProfileSource(job)
	}
	return nil
}

func vendorProfileSource(data map[string]interface{}) profileSource {
	if data == nil {
		return profileSource{}
	}

	sources := []map[string]interface{}{utils.Map(data["location"]), utils.Map(data["address"]), data}
	location := pickLocation(sources)
	location.Label = locationLabel(data["location"], data["propertyLocation"])

	return profileSource{
		displayName: firstString(data, profileNameKeys),
		email:       firstString(data, profileEmailKeys),
		phone:       firstString(data, profilePhoneKeys),
		photoURL:    firstString(data, profilePhotoKeys),
		location:    location,
		createdAt:   utils.TimePtr(data["createdAt"]),
	}
}

func productProfileSource(l *entity.Listing) *profileSource {
	locationValue := l.Data["location"]
	sources := []map[string]interface{}{utils.Map(locationValue), l.Data}
	location := pickLocation(sources)

	location.Label = utils.String(l.Data["propertyLocation"])
	if location.Label == "" {
		location.Label = utils.String(locationValue)
	}

	return &profileSource{
		displayName: firstString(l.Data, []string{"vendor.name", "vendor.displayName", "vendor.fullName"}),
		photoURL:    firstString(l.Data, []string{"vendor.image", "vendor.photoURL", "vendor.photoUrl", "vendor.avatar"}),
		email:       firstString(l.Data, []string{"email", "contactEmail", "contact.email"}),
		phone:       firstString(l.Data, []string{"phone", "contactPhone", "contact.phone"}),
		location:    location,
		createdAt:   utils.TimePtr(l.Data["createdAt"]),
	}
}

func jobProfileSource(l *entity.Listing) *profileSource {
	locationMap := utils.Map(l.Data["location"])
	if locationMap == nil {
		locationMap = map[string]interface{}{"region": l.Data["region"], "suburb": l.Data["suburb"]}
	}
	location := pickLocation([]map[string]interface{}{locationMap, l.Data})
	location.Label = utils.String(l.Data["location"])

	return &profileSource{
		displayName: firstString(l.Data, []string{"vendor.name", "company"}),
		photoURL:    firstString(l.Data, []string{"vendor.image"}),
		email:       firstString(l.Data, []string{"email", "contact.email"}),
		phone:       firstString(l.Data, []string{"phone", "contact.phone"}),
		location:    location,
		createdAt:   utils.TimePtr(l.Data["createdAt"]),
	}
}

// mergeProfile fills only the fields of p that are still empty.
func mergeProfile(p *entity.Profile, fallback *profileSource) {
	if p.DisplayName == "" {
		p.DisplayName = strings.TrimSpace(fallback.displayName)
	}
	if p.Email == "" {
		p.Email = fallback.email
	}
	if p.Phone == "" {
		p.Phone = fallback.phone
	}
	if p.PhotoURL == "" {
		p.PhotoURL = fallback.photoURL
	}
	if p.Location.Region == "" {
		p.Location.Region = fallback.location.Region
	}
	if p.Location.Suburb == "" {
		p.Location.Suburb = fallback.location.Suburb
	}
	if p.Location.Country == "" {
		p.Location.Country = fallback.location.Country
	}
	if p.Location.Coordinates == nil {
		p.Location.Coordinates = fallback.location.Coordinates
	}
	if p.Location.Label == "" {
		p.Location.Label = fallback.location.Label
	}
	if p.CreatedAt == nil {
		p.CreatedAt = fallback.createdAt
	}
}

// firstString returns the first non-blank string among keys. The key
// "@fullname" stands for firstName and lastName joined.
func firstString(data map[string]interface{}, keys []string) string {
	for _, key := range keys {
		if key == "@fullname" {
			if full := joinNonEmpty(" ", stringAt(data, "firstName"), stringAt(data, "lastName")); full != "" {
				return full
			}
			continue
		}
		if s := stringAt(data, key); s != "" {
			return s
		}
	}
	return ""
}

// stringAt reads a string value only; numbers do not count as names or contacts.
func stringAt(data map[string]interface{}, path string) string {
	v, ok := entity.Lookup(data, path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func pickLocation(sources []map[string]interface{}) entity.ProfileLocation {
	var location entity.ProfileLocation
	location.Region = pickFromSources(sources, regionKeys)
	location.Suburb = pickFromSources(sources, suburbKeys)
	location.Country = pickFromSources(sources, countryKeys)
	location.Coordinates = pickCoordinates(sources)
	return location
}

func pickFromSources(sources []map[string]interface{}, keys []string) string {
	for _, source := range sources {
		if source == nil {
			continue
		}
		for _, key := range keys {
			if s := stringAt(source, key); s != "" {
				return s
			}
		}
	}
	return ""
}

func pickCoordinates(sources []map[string]interface{}) *entity.Coordinates {
	for _, source := range sources {
		if source == nil {
			continue
		}
		if c := coordinatesOf(source["coordinates"]); c != nil {
			return c
		}
		if loc := utils.Map(source["location"]); loc != nil {
			if c := coordinatesOf(loc["coordinates"]); c != nil {
				return c
			}
		}
	}
	return nil
}

func coordinatesOf(v interface{}) *entity.Coordinates {
	if geo, ok := v.(*latlng.LatLng); ok && geo != nil {
		return &entity.Coordinates{Latitude: geo.GetLatitude(), Longitude: geo.GetLongitude()}
	}
	m := utils.Map(v)
	if m == nil {
		return nil
	}
	lat, okLat := utils.Float(m["latitude"])
	lng, okLng := utils.Float(m["longitude"])
	if !okLat || !okLng {
		return nil
	}
	return &entity.Coordinates{Latitude: lat, Longitude: lng}
}

func locationLabel(location, propertyLocation interface{}) string {
	if s, ok := location.(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	if s, ok := propertyLocation.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

var profileKnownKeys = map[string]bool{
	"uid": true, "displayName": true, "firstName": true, "lastName": true, "email": true,
	"phone": true, "photoURL": true, "location": true, "createdAt": true,
}

// extraProfileFields keeps vendor fields that have no typed slot.
func extraProfileFields(data map[string]interface{}) map[string]interface{} {
	extra := make(map[string]interface{})
	for k, v := range data {
		if !profileKnownKeys[k] {
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}
