package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huhu/internal/adapter/api/middleware"
	"huhu/internal/domain/entity"
	"huhu/internal/usecase"
	"huhu/pkg/errors"
)

func multipartRequest(t *testing.T, fields map[string]string, fileField, fileName string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestBindPost(t *testing.T) {
	e := echo.New()

	t.Run("json body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Plumbing","region":"Greater Accra"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())

		var input entity.ServicePostInput
		require.NoError(t, bindPost(c, &input))
		assert.Equal(t, "Plumbing", input.Title)
		assert.Equal(t, "Greater Accra", input.Region)
	})

	t.Run("multipart data field", func(t *testing.T) {
		req := multipartRequest(t, map[string]string{"data": `{"title":"Tiling"}`}, "", "", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		var input entity.ServicePostInput
		require.NoError(t, bindPost(c, &input))
		assert.Equal(t, "Tiling", input.Title)
	})

	t.Run("multipart without data", func(t *testing.T) {
		req := multipartRequest(t, map[string]string{"title": "Tiling"}, "", "", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		var input entity.ServicePostInput
		err := bindPost(c, &input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeBadRequest))
	})

	t.Run("multipart with broken json", func(t *testing.T) {
		req := multipartRequest(t, map[string]string{"data": `{"title":`}, "", "", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		var input entity.ServicePostInput
		assert.Error(t, bindPost(c, &input))
	})
}

func TestPostHandler_UploadImage(t *testing.T) {
	e := echo.New()
	h := NewPostHandler(usecase.NewPostUseCase(newFakeListingRepo(), nil), 16)

	t.Run("missing file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(multipartRequest(t, nil, "", "", nil), rec)
		c.Set(middleware.ContextUser, entity.AuthUser{UID: "u1"})

		require.NoError(t, h.UploadImage(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("file too large", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(multipartRequest(t, nil, "file", "big.png", bytes.Repeat([]byte("x"), 64)), rec)
		c.Set(middleware.ContextUser, entity.AuthUser{UID: "u1"})

		require.NoError(t, h.UploadImage(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostHandler_TooManyPropertyImages(t *testing.T) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("data", `{}`))
	for i := 0; i <= maxPropertyImages; i++ {
		part, err := w.CreateFormFile("images", "room.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("img"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/properties", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUser, entity.AuthUser{UID: "u1", Email: "u1@huhu.gh"})

	h := NewPostHandler(usecase.NewPostUseCase(newFakeListingRepo(), nil), 0)
	require.NoError(t, h.CreateProperty(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
