package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/servnect/marketplace-api/internal/api/metrics"
	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

// BookingHandler serves booking creation, dashboard listings, and the
// expert-only status transition.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create handles POST /bookings: a customer requests an expert.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.Create(c.Request().Context(), ports.CreateBookingInput{
		ClientID:    identity.ID,
		ExpertID:    req.ExpertID,
		Category:    req.Category,
		ServiceID:   req.ServiceID,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(booking.Category).Inc()
	return c.JSON(http.StatusCreated, toBookingResponse(booking, nil, nil))
}

// ListForClient handles GET /bookings/client, the customer's own bookings.
//
// @Summary      List my bookings (customer)
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  errorResponse
// @Router       /bookings/client [get]
func (h *BookingHandler) ListForClient(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.bookings.ListForClient(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	out := make([]bookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toBookingResponse(v.Booking, v.Expert, nil))
	}
	return c.JSON(http.StatusOK, out)
}

// ListForExpert handles GET /bookings/expert, bookings assigned to the expert.
//
// @Summary      List incoming bookings (expert)
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  errorResponse
// @Router       /bookings/expert [get]
func (h *BookingHandler) ListForExpert(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.bookings.ListForExpert(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	out := make([]bookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toBookingResponse(v.Booking, nil, v.Client))
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateStatus handles PUT /bookings/:id/status: the referenced expert
// transitions the booking out of pending.
//
// @Summary      Update booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Booking id"
// @Param        body  body      updateBookingStatusRequest  true  "Target status"
// @Success      200   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.UpdateStatus(c.Request().Context(), c.Param("id"), identity.ID, domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(booking.Status)).Inc()
	return c.JSON(http.StatusOK, toBookingResponse(booking, nil, nil))
}
