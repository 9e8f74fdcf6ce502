package handler

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/middleware"
	"huhu/internal/domain/entity"
	"huhu/internal/usecase"
	"huhu/pkg/errors"
	"huhu/pkg/logger"
	"huhu/pkg/response"
)

const (
	viewCards = "cards"
	viewRaw   = "raw"

	defaultSimilarLimit = 4
	maxSimilarLimit     = 20
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
	postUseCase    *usecase.PostUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase, postUseCase *usecase.PostUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
		postUseCase:    postUseCase,
	}
}

// GetCategory returns the raw documents of a category, or product cards
// with ?view=cards.
func (h *ListingHandler) GetCategory(c echo.Context) error {
	category := c.Param("category")
	query := c.QueryParam("q")

	if c.QueryParam("view") == viewCards {
		cards, err := h.listingUseCase.ProductCards(c.Request().Context(), category, query)
		if err != nil {
			return response.Error(c, err)
		}
		return response.List(c, cards, len(cards))
	}

	listings, err := h.listingUseCase.FetchByCategory(c.Request().Context(), category)
	if err != nil {
		return response.Error(c, err)
	}
	listings = usecase.FilterListings(listings, query)
	return response.List(c, listings, len(listings))
}

func (h *ListingHandler) GetProduct(c echo.Context) error {
	return h.getListing(c, entity.KindProduct)
}

func (h *ListingHandler) GetJob(c echo.Context) error {
	return h.getListing(c, entity.KindJob)
}

func (h *ListingHandler) GetService(c echo.Context) error {
	return h.getListing(c, entity.KindService)
}

func (h *ListingHandler) getListing(c echo.Context, kind entity.ListingKind) error {
	listing, err := h.listingUseCase.GetListing(c.Request().Context(), kind, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

// ListJobs returns job cards; ?view=raw returns the documents.
func (h *ListingHandler) ListJobs(c echo.Context) error {
	query := c.QueryParam("q")
	if c.QueryParam("view") == viewRaw {
		return h.rawList(c, h.listingUseCase.FetchJobs, query)
	}

	cards, err := h.listingUseCase.JobCards(c.Request().Context(), query)
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, cards, len(cards))
}

func (h *ListingHandler) ListServices(c echo.Context) error {
	query := c.QueryParam("q")
	if c.QueryParam("view") == viewRaw {
		return h.rawList(c, h.listingUseCase.FetchServices, query)
	}

	cards, err := h.listingUseCase.ServiceCards(c.Request().Context(), query)
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, cards, len(cards))
}

// ListProperties returns property cards, with distances when ?lat and ?lng are given.
func (h *ListingHandler) ListProperties(c echo.Context) error {
	query := c.QueryParam("q")
	if c.QueryParam("view") == viewRaw {
		return h.rawList(c, h.listingUseCase.FetchProperties, query)
	}

	cards, err := h.listingUseCase.PropertyCards(c.Request().Context(), query, originFromQuery(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, cards, len(cards))
}

// GetProperty returns one property and counts the view for signed-in
// visitors other than the owner.
func (h *ListingHandler) GetProperty(c echo.Context) error {
	ctx := c.Request().Context()

	property, err := h.listingUseCase.GetListing(ctx, entity.KindProperty, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if _, err := h.postUseCase.TrackPropertyView(ctx, middleware.CurrentUser(c), property); err != nil {
		logger.Debug("View of property %s not counted: %v", property.ID, err)
	}

	return response.Success(c, property)
}

func (h *ListingHandler) GetSimilarProperties(c echo.Context) error {
	limit := defaultSimilarLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return response.Error(c, errors.BadRequest("limit must be a positive number", err))
		}
		if n > maxSimilarLimit {
			n = maxSimilarLimit
		}
		limit = n
	}

	similar, err := h.listingUseCase.SimilarProperties(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, similar, len(similar))
}

func (h *ListingHandler) rawList(c echo.Context, fetch func(ctx context.Context) ([]*entity.Listing, error), query string) error {
	listings, err := fetch(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	listings = usecase.FilterListings(listings, query)
	return response.List(c, listings, len(listings))
}

func originFromQuery(c echo.Context) *entity.Coordinates {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	return &entity.Coordinates{Latitude: lat, Longitude: lng}
}
