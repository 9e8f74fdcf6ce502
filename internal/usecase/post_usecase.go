package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"huhu/internal/domain/entity"
	"huhu/internal/domain/repository"
	"huhu/internal/domain/service"
	"huhu/pkg/errors"
	"huhu/pkg/logger"
	"huhu/pkg/utils"
	"huhu/pkg/validation"
)

const serviceIDPrefix = "sg-ser-"

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageUpload is one uploaded image file.
type ImageUpload struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

type PostUseCase struct {
	listingRepo repository.ListingRepository
	images      service.ImageStore
	validator   *validation.Validator
	now         func() time.Time
	newID       func() string
}

func NewPostUseCase(listingRepo repository.ListingRepository, images service.ImageStore) *PostUseCase {
	return &PostUseCase{
		listingRepo: listingRepo,
		images:      images,
		validator:   validation.New(),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// CreateService stores a service listing with both the current field names
// and the legacy ones older mobile clients read.
func (uc *PostUseCase) CreateService(ctx context.Context, user entity.AuthUser, input entity.ServicePostInput, image *ImageUpload) (*entity.Listing, error) {
	if user.UID == "" {
		return nil, errors.Unauthorized("Sign in to post a service", nil)
	}
	if err := uc.validator.ValidateStruct(input); err != nil {
		return nil, err
	}

	id := serviceIDPrefix + uc.newID()
	now := uc.now()

	company := orDefault(strings.TrimSpace(input.Company), input.Title)
	category := firstNonEmpty(strings.TrimSpace(input.Category), input.ServiceTypes[0], "Services")

	data := map[string]interface{}{
		"id":           id,
		"title":        input.Title,
		"company":      company,
		"category":     category,
		"serviceTypes": input.ServiceTypes,
		"expertise":    input.Expertise,
		"description":  input.Description,
		"email":        input.Email,
		"phone":        input.Phone,
		"location": map[string]interface{}{
			"suburb": input.Suburb,
			"region": input.Region,
		},
		"createdAt": now,
		"vendor": map[string]interface{}{
			"uid":      user.UID,
			"image":    user.PhotoURL,
			"name":     user.DisplayName,
			"Company":  company,
			"addresss": input.Address,
			"photoUrl": user.PhotoURL,
		},

		"consultType":     "PersonnelConsultant",
		"serviceType":     strings.Join(input.ServiceTypes, ", "),
		"Expertise":       strings.Join(input.Expertise, ", "),
		"details":         input.Description,
		"consultantEmail": input.Email,
		"PhoneNumber":     input.Phone,
		"datePosted":      now,
		"lastEdited":      now,
		"status":          entity.PropertyStatusActive,
		"postedFrom":      "Web",
		"viewCount":       []interface{}{},
	}

	if image != nil {
		stored, err := uc.upload(ctx, *image, fmt.Sprintf("serviceImages/%s/%s", id, safeFileName(image.Name)))
		if err != nil {
			return nil, err
		}
		data["image"] = stored.URL
		data["imageData"] = map[string]interface{}{
			"url":  stored.URL,
			"path": stored.Path,
			"name": stored.Name,
			"size": stored.Size,
			"type": stored.Type,
		}
	}

	return uc.listingRepo.Create(ctx, entity.KindService, id, data)
}

func (uc *PostUseCase) CreateProperty(ctx context.Context, user entity.AuthUser, input entity.PropertyPostInput, images []ImageUpload) (*entity.Listing, error) {
	data, err := uc.propertyDocument(ctx, user, input, images)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	data["createdAt"] = now
	data["datePosted"] = now

	return uc.listingRepo.Create(ctx, entity.KindProperty, "", data)
}

func (uc *PostUseCase) UpdateProperty(ctx context.Context, user entity.AuthUser, id string, input entity.PropertyPostInput, images []ImageUpload) (*entity.Listing, error) {
	if _, err := uc.ownedProperty(ctx, user, id); err != nil {
		return nil, err
	}

	data, err := uc.propertyDocument(ctx, user, input, images)
	if err != nil {
		return nil, err
	}

	if err := uc.listingRepo.Update(ctx, entity.KindProperty, id, data); err != nil {
		return nil, err
	}

	return uc.listingRepo.GetByID(ctx, entity.KindProperty, id)
}

func (uc *PostUseCase) SetPropertyStatus(ctx context.Context, user entity.AuthUser, id string, input entity.PropertyStatusInput) error {
	if err := uc.validator.ValidateStruct(input); err != nil {
		return err
	}
	if _, err := uc.ownedProperty(ctx, user, id); err != nil {
		return err
	}

	return uc.listingRepo.Update(ctx, entity.KindProperty, id, map[string]interface{}{
		"status": input.Status,
	})
}

func (uc *PostUseCase) DeleteProperty(ctx context.Context, user entity.AuthUser, id string) error {
	property, err := uc.ownedProperty(ctx, user, id)
	if err != nil {
		return err
	}

	if err := uc.listingRepo.Delete(ctx, entity.KindProperty, id); err != nil {
		return err
	}

	for _, url := range utils.StringSlice(property.Data["images"], ",") {
		if err := uc.images.Delete(ctx, url); err != nil {
			logger.Debug("Leaving image %s of deleted property %s: %v", url, id, err)
		}
	}
	return nil
}

// TrackPropertyView counts a view unless the viewer owns the property.
// It reports whether the view was counted.
func (uc *PostUseCase) TrackPropertyView(ctx context.Context, viewer entity.AuthUser, property *entity.Listing) (bool, error) {
	if property == nil || viewer.UID == "" || isPropertyOwner(property, viewer) {
		return false, nil
	}

	if err := uc.listingRepo.IncrementViews(ctx, entity.KindProperty, property.ID); err != nil {
		logger.Warn("Error tracking view of property %s: %v", property.ID, err)
		return false, err
	}
	return true, nil
}

// UploadImage stores a standalone listing image for the user.
func (uc *PostUseCase) UploadImage(ctx context.Context, user entity.AuthUser, image ImageUpload) (*entity.ListingImage, error) {
	if user.UID == "" {
		return nil, errors.Unauthorized("Sign in to upload images", nil)
	}

	ext := allowedImageTypes[image.ContentType]
	return uc.upload(ctx, image, fmt.Sprintf("uploads/%s/%s%s", user.UID, uc.newID(), ext))
}

func (uc *PostUseCase) propertyDocument(ctx context.Context, user entity.AuthUser, input entity.PropertyPostInput, images []ImageUpload) (map[string]interface{}, error) {
	if user.UID == "" {
		return nil, errors.Unauthorized("Sign in to post a property", nil)
	}
	if err := uc.validator.ValidateStruct(input); err != nil {
		return nil, err
	}

	rentPrice, err := strconv.ParseFloat(strings.TrimSpace(input.RentPrice), 64)
	if err != nil {
		return nil, errors.BadRequest("Rent price must be a number", err)
	}

	imageURLs := make([]string, 0, len(input.Images)+len(images))
	for _, existing := range input.Images {
		if strings.HasPrefix(existing, "http") {
			imageURLs = append(imageURLs, existing)
		}
	}
	for _, image := range images {
		objectPath := fmt.Sprintf("properties/%d_%s", uc.now().UnixMilli(), safeFileName(image.Name))
		stored, err := uc.upload(ctx, image, objectPath)
		if err != nil {
			return nil, err
		}
		imageURLs = append(imageURLs, stored.URL)
	}

	firstImage := ""
	if len(imageURLs) > 0 {
		firstImage = imageURLs[0]
	}

	firstName, lastName := user.NameParts()

	return map[string]interface{}{
		"propertyTypes": input.PropertyTypes,
		"rentPrice":     rentPrice,
		"bedbath":       input.BedBath,
		"leaseDuration": input.LeaseDuration,
		"propertyAddie": input.PropertyAddie,
		"details":       input.Details,
		"phoneNumber":   input.PhoneNumber,
		"phone":         input.PhoneNumber,
		"email":         input.Email,
		"location": map[string]interface{}{
			"town":      input.Location.Town,
			"state":     input.Location.State,
			"latitude":  input.Location.Latitude,
			"longitude": input.Location.Longitude,
		},
		"propertyAmenities": nonNilStrings(input.PropertyAmenities),
		"lifestyles":        nonNilStrings(input.Lifestyles),
		"images":            imageURLs,
		"image":             firstImage,
		"status":            entity.PropertyStatusActive,
		"vendor": map[string]interface{}{
			"uid":          user.UID,
			"firstName":    firstName,
			"lastName":     lastName,
			"businessName": "",
			"email":        user.Email,
		},
		"userId": user.Email,
	}, nil
}

func (uc *PostUseCase) ownedProperty(ctx context.Context, user entity.AuthUser, id string) (*entity.Listing, error) {
	if user.UID == "" {
		return nil, errors.Unauthorized("Sign in to manage properties", nil)
	}

	property, err := uc.listingRepo.GetByID(ctx, entity.KindProperty, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.NotFound("Property", nil)
	}
	if !isPropertyOwner(property, user) {
		return nil, errors.Forbidden("Only the owner can change this property", nil)
	}
	return property, nil
}

// isPropertyOwner matches by email, as properties record their owner that way.
func isPropertyOwner(property *entity.Listing, user entity.AuthUser) bool {
	if uid := stringAt(property.Data, "vendor.uid"); uid != "" && uid == user.UID {
		return true
	}
	if user.Email == "" {
		return false
	}
	owner := firstNonEmpty(stringAt(property.Data, "vendor.email"), stringAt(property.Data, "userId"))
	return strings.EqualFold(owner, user.Email)
}

func (uc *PostUseCase) upload(ctx context.Context, image ImageUpload, objectPath string) (*entity.ListingImage, error) {
	if _, ok := allowedImageTypes[image.ContentType]; !ok {
		return nil, errors.BadRequest("Unsupported image type "+image.ContentType, nil)
	}
	if image.Reader == nil {
		return nil, errors.BadRequest("Image file is empty", nil)
	}

	stored, err := uc.images.Upload(ctx, image.Reader, objectPath, image.ContentType)
	if err != nil {
		return nil, errors.Internal("Failed to upload image", err)
	}

	logger.Info("Uploaded image %s", stored.Path)
	return stored, nil
}

func safeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if name == "" || name == "." || name == "/" {
		return "image"
	}
	return name
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
