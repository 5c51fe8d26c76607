package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/servnect/marketplace-api/internal/core/ports"
)

// ProfileHandler serves the /users/me, /experts/me and public /experts
// endpoints. Domain structs hide password hashes behind json:"-", so the
// repository records can be returned directly.
type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Bio       *string `json:"bio"`
}

type updateExpertRequest struct {
	FirstName  *string  `json:"first_name"`
	LastName   *string  `json:"last_name"`
	Specialty  *string  `json:"specialty"`
	Bio        *string  `json:"bio"`
	HourlyRate *float64 `json:"hourly_rate"`
	Location   *string  `json:"location"`
}

// GetUserMe returns the authenticated customer's profile.
//
// @Summary      Current customer profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *ProfileHandler) GetUserMe(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.profiles.GetUser(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUserMe applies a whitelisted-field update to the customer's profile.
//
// @Summary      Update customer profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      401   {object}  errorResponse
// @Router       /users/me [put]
func (h *ProfileHandler) UpdateUserMe(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.profiles.UpdateUser(c.Request().Context(), identity.ID, ports.UserProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Bio:       req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetExpertMe returns the authenticated expert's profile.
//
// @Summary      Current expert profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Expert
// @Failure      401  {object}  errorResponse
// @Router       /experts/me [get]
func (h *ProfileHandler) GetExpertMe(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	expert, err := h.profiles.GetExpert(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expert)
}

// UpdateExpertMe applies a whitelisted-field update to the expert's profile.
//
// @Summary      Update expert profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateExpertRequest  true  "Profile fields"
// @Success      200   {object}  domain.Expert
// @Failure      401   {object}  errorResponse
// @Router       /experts/me [put]
func (h *ProfileHandler) UpdateExpertMe(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateExpertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	expert, err := h.profiles.UpdateExpert(c.Request().Context(), identity.ID, ports.ExpertProfileUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Specialty:  req.Specialty,
		Bio:        req.Bio,
		HourlyRate: req.HourlyRate,
		Location:   req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expert)
}

// ListExperts returns the public expert directory.
//
// @Summary      Browse professionals
// @Tags         profiles
// @Produce      json
// @Param        service  query     string  false  "Filter by service category"
// @Success      200      {array}   domain.Expert
// @Router       /experts [get]
func (h *ProfileHandler) ListExperts(c echo.Context) error {
	experts, err := h.profiles.ListExperts(c.Request().Context(), c.QueryParam("service"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experts)
}
