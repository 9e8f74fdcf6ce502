package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huhu/internal/adapter/api/middleware"
	"huhu/internal/domain/entity"
	"huhu/internal/usecase"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func newListingTestHandler(repo *fakeListingRepo) *ListingHandler {
	return NewListingHandler(
		usecase.NewListingUseCase(repo, 7*24*time.Hour),
		usecase.NewPostUseCase(repo, nil),
	)
}

func TestListingHandler_GetProduct(t *testing.T) {
	repo := newFakeListingRepo()
	repo.put(entity.KindProduct, "p1", map[string]interface{}{"name": "Rice cooker"})
	h := newListingTestHandler(repo)
	e := echo.New()

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/products/p1", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("p1")

		require.NoError(t, h.GetProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		assert.JSONEq(t, `{"id":"p1","name":"Rice cooker"}`, string(env.Data))
	})

	t.Run("missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/products/nope", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, h.GetProduct(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestListingHandler_GetCategoryFiltersByQuery(t *testing.T) {
	repo := newFakeListingRepo()
	repo.put(entity.KindProduct, "p1", map[string]interface{}{"name": "Rice cooker"})
	repo.put(entity.KindProduct, "p2", map[string]interface{}{"name": "Office chair"})
	h := newListingTestHandler(repo)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/categories/everything?q=chair", nil), rec)
	c.SetParamNames("category")
	c.SetParamValues("everything")

	require.NoError(t, h.GetCategory(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Items []map[string]interface{} `json:"items"`
		Total int                      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &list))
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "p2", list.Items[0]["id"])
}

func TestListingHandler_ListJobsRepositoryError(t *testing.T) {
	repo := newFakeListingRepo()
	repo.err = errors.New("firestore unavailable")
	h := newListingTestHandler(repo)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/jobs", nil), rec)

	require.NoError(t, h.ListJobs(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestListingHandler_GetPropertyCountsVisitorViews(t *testing.T) {
	repo := newFakeListingRepo()
	repo.put(entity.KindProperty, "r1", map[string]interface{}{
		"vendor": map[string]interface{}{"uid": "owner", "email": "owner@huhu.gh"},
	})
	h := newListingTestHandler(repo)
	e := echo.New()

	get := func(user *entity.AuthUser) int {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/properties/r1", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("r1")
		if user != nil {
			c.Set(middleware.ContextUser, *user)
		}
		require.NoError(t, h.GetProperty(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, get(nil))
	assert.Equal(t, http.StatusOK, get(&entity.AuthUser{UID: "owner"}))
	assert.Equal(t, http.StatusOK, get(&entity.AuthUser{UID: "visitor", Email: "visitor@huhu.gh"}))

	assert.Equal(t, 1, repo.views["r1"])
}

func TestListingHandler_GetSimilarPropertiesRejectsBadLimit(t *testing.T) {
	h := newListingTestHandler(newFakeListingRepo())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/properties/r1/similar?limit=zero", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("r1")

	require.NoError(t, h.GetSimilarProperties(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOriginFromQuery(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/?lat=5.6&lng=-0.18", nil), httptest.NewRecorder())
	origin := originFromQuery(c)
	require.NotNil(t, origin)
	assert.InDelta(t, 5.6, origin.Latitude, 1e-9)
	assert.InDelta(t, -0.18, origin.Longitude, 1e-9)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/?lat=5.6", nil), httptest.NewRecorder())
	assert.Nil(t, originFromQuery(c))
}
