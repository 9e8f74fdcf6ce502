package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/type/latlng"

	"huhu/internal/domain/entity"
	"huhu/pkg/errors"
)

func TestGetUserProfileCompleteVendor(t *testing.T) {
	listings := newFakeListingRepo()
	listings.err = errors.Internal("listings must not be read", nil)
	vendors := &fakeVendorRepo{vendors: map[string]*entity.Vendor{
		"u1": {ID: "u1", Data: map[string]interface{}{
			"firstName": "Ama",
			"lastName":  "Mensah",
			"email":     "ama@example.com",
			"phone":     "0241234567",
			"photoUrl":  "https://img/ama.png",
			"location": map[string]interface{}{
				"region":      "Greater Accra",
				"town":        "Osu",
				"coordinates": &latlng.LatLng{Latitude: 5.55, Longitude: -0.19},
			},
			"bio": "Seller of books",
		}},
	}}

	profile, err := NewProfileUseCase(vendors, listings).GetUserProfile(context.Background(), "u1")
	require.NoError(t, err)

	assert.True(t, profile.Exists)
	assert.Equal(t, "Ama Mensah", profile.DisplayName)
	assert.Equal(t, "ama@example.com", profile.Email)
	assert.Equal(t, "https://img/ama.png", profile.PhotoURL)
	assert.Equal(t, "Greater Accra", profile.Location.Region)
	assert.Equal(t, "Osu", profile.Location.Suburb)
	require.NotNil(t, profile.Location.Coordinates)
	assert.Equal(t, 5.55, profile.Location.Coordinates.Latitude)
	assert.Equal(t, "Seller of books", profile.Extra["bio"])
}

func TestGetUserProfileBackfillsFromProduct(t *testing.T) {
	listings := newFakeListingRepo()
	listings.put(entity.KindProduct, "p-old", map[string]interface{}{
		"vendor":    map[string]interface{}{"uid": "u1", "name": "Old Name"},
		"createdAt": testNow.Add(-48 * time.Hour),
	})
	listings.put(entity.KindProduct, "p-new", map[string]interface{}{
		"vendor":    map[string]interface{}{"uid": "u1", "name": "Kofi Shop", "image": "https://img/kofi.png"},
		"phone":     "0200000000",
		"location":  map[string]interface{}{"region": "Ashanti", "suburb": "Adum"},
		"createdAt": testNow.Add(-time.Hour),
	})
	listings.put(entity.KindJob, "j-1", map[string]interface{}{
		"vendor": map[string]interface{}{"uid": "u1", "name": "Job Name"},
	})
	vendors := &fakeVendorRepo{vendors: map[string]*entity.Vendor{
		"u1": {ID: "u1", Data: map[string]interface{}{"email": "kofi@example.com"}},
	}}

	profile, err := NewProfileUseCase(vendors, listings).GetUserProfile(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "Kofi Shop", profile.DisplayName)
	assert.Equal(t, "kofi@example.com", profile.Email)
	assert.Equal(t, "0200000000", profile.Phone)
	assert.Equal(t, "https://img/kofi.png", profile.PhotoURL)
	assert.Equal(t, "Ashanti", profile.Location.Region)
	assert.Equal(t, "Adum", profile.Location.Suburb)
}

func TestGetUserProfileFallsBackToJob(t *testing.T) {
	listings := newFakeListingRepo()
	listings.put(entity.KindJob, "j-1", map[string]interface{}{
		"vendor":  map[string]interface{}{"uid": "u2"},
		"company": "Acme Ltd",
		"region":  "Volta",
	})

	profile, err := NewProfileUseCase(&fakeVendorRepo{}, listings).GetUserProfile(context.Background(), "u2")
	require.NoError(t, err)

	assert.False(t, profile.Exists)
	assert.Equal(t, "Acme Ltd", profile.DisplayName)
	assert.Equal(t, "Volta", profile.Location.Region)
	assert.Equal(t, entity.ProfilePlaceholder, profile.PhotoURL)
}

func TestGetUserProfileUnknownUser(t *testing.T) {
	profile, err := NewProfileUseCase(&fakeVendorRepo{}, newFakeListingRepo()).GetUserProfile(context.Background(), "ghost")
	require.NoError(t, err)

	assert.Equal(t, "ghost", profile.UID)
	assert.Equal(t, entity.UnknownUserName, profile.DisplayName)
	assert.Equal(t, entity.ProfilePlaceholder, profile.PhotoURL)
	assert.Equal(t, "", profile.Location.Region)
	assert.False(t, profile.Exists)
}

func TestGetUserProfileIgnoresFallbackErrors(t *testing.T) {
	listings := newFakeListingRepo()
	listings.err = errors.Internal("permission denied", nil)
	vendors := &fakeVendorRepo{vendors: map[string]*entity.Vendor{
		"u1": {ID: "u1", Data: map[string]interface{}{"displayName": "Esi"}},
	}}

	profile, err := NewProfileUseCase(vendors, listings).GetUserProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Esi", profile.DisplayName)
}

func TestGetUserProfileVendorError(t *testing.T) {
	vendors := &fakeVendorRepo{err: errors.Internal("unavailable", nil)}

	_, err := NewProfileUseCase(vendors, newFakeListingRepo()).GetUserProfile(context.Background(), "u1")
	assert.Error(t, err)
}
