package handler

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/middleware"
	"huhu/internal/domain/entity"
	"huhu/internal/usecase"
	"huhu/pkg/errors"
	"huhu/pkg/logger"
	"huhu/pkg/response"
)

const (
	defaultMaxUploadBytes = 5 << 20
	maxPropertyImages     = 10
)

type PostHandler struct {
	postUseCase    *usecase.PostUseCase
	maxUploadBytes int64
}

func NewPostHandler(postUseCase *usecase.PostUseCase, maxUploadBytes int64) *PostHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &PostHandler{
		postUseCase:    postUseCase,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateService accepts JSON, or multipart with the JSON in "data" and an
// optional "image" file.
func (h *PostHandler) CreateService(c echo.Context) error {
	var input entity.ServicePostInput
	if err := bindPost(c, &input); err != nil {
		return response.Error(c, err)
	}

	uploads, closeAll, err := h.formImages(c, "image", 1)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeAll()

	var image *usecase.ImageUpload
	if len(uploads) > 0 {
		image = &uploads[0]
	}

	listing, err := h.postUseCase.CreateService(c.Request().Context(), middleware.CurrentUser(c), input, image)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, listing)
}

func (h *PostHandler) CreateProperty(c echo.Context) error {
	var input entity.PropertyPostInput
	if err := bindPost(c, &input); err != nil {
		return response.Error(c, err)
	}

	uploads, closeAll, err := h.formImages(c, "images", maxPropertyImages)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeAll()

	listing, err := h.postUseCase.CreateProperty(c.Request().Context(), middleware.CurrentUser(c), input, uploads)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, listing)
}

func (h *PostHandler) UpdateProperty(c echo.Context) error {
	var input entity.PropertyPostInput
	if err := bindPost(c, &input); err != nil {
		return response.Error(c, err)
	}

	uploads, closeAll, err := h.formImages(c, "images", maxPropertyImages)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeAll()

	listing, err := h.postUseCase.UpdateProperty(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), input, uploads)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *PostHandler) SetPropertyStatus(c echo.Context) error {
	var input entity.PropertyStatusInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	id := c.Param("id")
	if err := h.postUseCase.SetPropertyStatus(c.Request().Context(), middleware.CurrentUser(c), id, input); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"id":     id,
		"status": input.Status,
	})
}

func (h *PostHandler) DeleteProperty(c echo.Context) error {
	if err := h.postUseCase.DeleteProperty(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Property deleted successfully",
	})
}

// UploadImage stores the multipart "file" and returns its public URL.
func (h *PostHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	upload, closeFile, err := h.openImage(file)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeFile()

	image, err := h.postUseCase.UploadImage(c.Request().Context(), middleware.CurrentUser(c), upload)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, image)
}

func bindPost(c echo.Context, target interface{}) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		if err := c.Bind(target); err != nil {
			return errors.BadRequest("Invalid request body", err)
		}
		return nil
	}

	data := c.FormValue("data")
	if data == "" {
		return errors.BadRequest("Form field data is required", nil)
	}
	if err := json.Unmarshal([]byte(data), target); err != nil {
		return errors.BadRequest("Form field data is not valid JSON", err)
	}
	return nil
}

// formImages opens up to limit files of field. The returned func closes them.
func (h *PostHandler) formImages(c echo.Context, field string, limit int) ([]usecase.ImageUpload, func(), error) {
	noop := func() {}
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, noop, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, noop, errors.BadRequest("Invalid multipart form", err)
	}

	files := form.File[field]
	if len(files) > limit {
		return nil, noop, errors.BadRequest(fmt.Sprintf("At most %d images are allowed", limit), nil)
	}

	uploads := make([]usecase.ImageUpload, 0, len(files))
	closers := make([]func(), 0, len(files))
	closeAll := func() {
		for _, closeFile := range closers {
			closeFile()
		}
	}

	for _, file := range files {
		upload, closeFile, err := h.openImage(file)
		if err != nil {
			closeAll()
			return nil, noop, err
		}
		uploads = append(uploads, upload)
		closers = append(closers, closeFile)
	}

	return uploads, closeAll, nil
}

func (h *PostHandler) openImage(file *multipart.FileHeader) (usecase.ImageUpload, func(), error) {
	if file.Size > h.maxUploadBytes {
		logger.Warn("File too large: %d bytes (max: %d)", file.Size, h.maxUploadBytes)
		return usecase.ImageUpload{}, nil, errors.BadRequest(
			fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxUploadBytes/(1024*1024)), nil)
	}

	src, err := file.Open()
	if err != nil {
		return usecase.ImageUpload{}, nil, errors.Internal("Failed to read uploaded file", err)
	}

	return usecase.ImageUpload{
		Name:        file.Filename,
		ContentType: file.Header.Get(echo.HeaderContentType),
		Reader:      src,
	}, func() { src.Close() }, nil
}
