package usecase

import (
	"fmt"
	"strings"
	"time"

	"huhu/internal/domain/entity"
	"huhu/pkg/utils"
)

func postedAt(field FieldAliases, l *entity.Listing) *time.Time {
	v, ok := field.Value(l)
	if !ok {
		return nil
	}
	return utils.TimePtr(v)
}

func floatField(field FieldAliases, l *entity.Listing) *float64 {
	v, ok := field.Value(l)
	if !ok {
		return nil
	}
	f, ok := utils.Float(v)
	if !ok {
		return nil
	}
	return &f
}

func listField(field FieldAliases, l *entity.Listing, sep string) []string {
	v, ok := field.Value(l)
	if !ok {
		return []string{}
	}
	items := utils.StringSlice(v, sep)
	if items == nil {
		return []string{}
	}
	return items
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func JobCardOf(l *entity.Listing, now time.Time) entity.JobCard {
	posted := postedAt(jobFields.PostedAt, l)
	return entity.JobCard{
		ID:          l.ID,
		Title:       jobFields.Title.String(l),
		Company:     jobFields.Company.String(l),
		Location:    jobFields.Location.String(l),
		Salary:      jobFields.Salary.String(l),
		Image:       jobFields.Image.String(l),
		Category:    jobFields.Category.String(l),
		Description: jobFields.Description.String(l),
		JobType:     jobFields.JobType.String(l),
		Skills:      listField(jobFields.Skills, l, ","),
		PostedAt:    posted,
		PostedText:  PostedTime(posted, now),
	}
}

func ServiceCardOf(l *entity.Listing, now time.Time) entity.ServiceCard {
	posted := postedAt(serviceFields.PostedAt, l)
	return entity.ServiceCard{
		ID:           l.ID,
		Title:        serviceFields.Title.String(l),
		Description:  serviceFields.Description.String(l),
		ServiceTypes: listField(serviceFields.ServiceTypes, l, ", "),
		Expertise:    listField(serviceFields.Expertise, l, ", "),
		Location:     serviceFields.Location.String(l),
		Phone:        serviceFields.Phone.String(l),
		Email:        serviceFields.Email.String(l),
		Image:        serviceFields.Image.String(l),
		Company:      serviceFields.Company.String(l),
		Address:      serviceFields.Address.String(l),
		PostedAt:     posted,
		PostedText:   PostedTime(posted, now),
	}
}

// PropertyCardOf builds a property card. origin, when set, adds the distance
// from the caller to the property.
func PropertyCardOf(l *entity.Listing, now time.Time, origin *entity.Coordinates) entity.PropertyCard {
	posted := postedAt(propertyFields.PostedAt, l)
	card := entity.PropertyCard{
		ID:         l.ID,
		Title:      propertyFields.Title.String(l),
		Address:    propertyFields.Address.String(l),
		BedBath:    propertyFields.BedBath.String(l),
		Details:    propertyFields.Details.String(l),
		Location:   joinNonEmpty(", ", propertyFields.Town.String(l), propertyFields.State.String(l)),
		PriceText:  "POA",
		Phone:      propertyFields.Phone.String(l),
		Email:      propertyFields.Email.String(l),
		Image:      propertyFields.Image.String(l),
		VendorName: propertyFields.Vendor.String(l),
		Status:     propertyFields.Status.String(l),
		Latitude:   floatField(propertyFields.Latitude, l),
		Longitude:  floatField(propertyFields.Longitude, l),
		PostedAt:   posted,
		PostedText: PostedTime(posted, now),
	}

	if price := floatField(propertyFields.Price, l); price != nil {
		card.Price = *price
		card.PriceText = "₵" + propertyFields.Price.String(l)
	}

	if origin != nil && card.Latitude != nil && card.Longitude != nil {
		card.DistanceKm = Distance(origin, &entity.Coordinates{Latitude: *card.Latitude, Longitude: *card.Longitude})
	}

	return card
}

func ProductCardOf(l *entity.Listing, now time.Time) entity.ProductCard {
	posted := postedAt(productFields.PostedAt, l)
	price, _ := utils.Float(productFields.Price.String(l))
	category := productFields.Category.String(l)

	href := "/product/" + l.ID
	if isPropertyListing(l, category) {
		href = "/property/" + l.ID
	}

	return entity.ProductCard{
		ID:         l.ID,
		Name:       productFields.Name.String(l),
		Image:      productFields.Image.String(l),
		Price:      price,
		PriceText:  fmt.Sprintf("GH₵%.2f", price),
		Location:   productLocation(l),
		Category:   category,
		Href:       href,
		PostedAt:   posted,
		PostedText: PostedTime(posted, now),
	}
}

func isPropertyListing(l *entity.Listing, category string) bool {
	if l.Kind == entity.KindProperty || category == "property" || category == "properties" {
		return true
	}
	for _, key := range []string{"propertyTypes", "rentPrice", "bedbath"} {
		if v, ok := l.Field(key); ok && !isEmptyValue(v) {
			return true
		}
	}
	return false
}

func productLocation(l *entity.Listing) string {
	region := productFields.Region.String(l)
	suburb := productFields.Suburb.String(l)

	if propertyLocation := productFields.PropertyLocation.String(l); propertyLocation != "" {
		return joinNonEmpty(", ", propertyLocation, suburb, region)
	}
	if combined := joinNonEmpty(", ", region, suburb); combined != "" {
		return combined
	}
	if country := productFields.Country.String(l); country != "" {
		return country
	}
	if text, ok := l.Data["location"].(string); ok {
		return strings.TrimSpace(text)
	}
	return ""
}
