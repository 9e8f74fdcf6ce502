package handler

import (
	"github.com/labstack/echo/v4"

	"huhu/internal/usecase"
	"huhu/pkg/errors"
	"huhu/pkg/response"
)

type UserHandler struct {
	profileUseCase *usecase.ProfileUseCase
	listingUseCase *usecase.ListingUseCase
}

func NewUserHandler(profileUseCase *usecase.ProfileUseCase, listingUseCase *usecase.ListingUseCase) *UserHandler {
	return &UserHandler{
		profileUseCase: profileUseCase,
		listingUseCase: listingUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	profile, err := h.profileUseCase.GetUserProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *UserHandler) GetListings(c echo.Context) error {
	listings, err := h.listingUseCase.GetUserListings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, listings, len(listings))
}

func (h *UserHandler) GetJobs(c echo.Context) error {
	jobs, err := h.listingUseCase.GetUserJobs(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, jobs, len(jobs))
}
