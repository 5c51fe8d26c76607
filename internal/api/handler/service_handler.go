package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

// ServiceHandler serves the public catalog and the expert's offering
// management.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

type createServiceRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	BasePrice   float64 `json:"base_price"  validate:"required,gt=0"`
}

type catalogEntryResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category"`
	BasePrice   float64        `json:"base_price"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	Expert      *partyResponse `json:"expert,omitempty"`
}

func toCatalogEntryResponse(s *domain.ServiceOffering, expert *domain.Identity) catalogEntryResponse {
	resp := catalogEntryResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		BasePrice:   s.BasePrice,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
	if expert != nil {
		resp.Expert = &partyResponse{ID: expert.ID, FirstName: expert.FirstName, LastName: expert.LastName}
	}
	return resp
}

// Create handles POST /services: an expert publishes an offering.
//
// @Summary      Publish a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  catalogEntryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offering, err := h.catalog.Create(c.Request().Context(), ports.CreateServiceInput{
		ExpertID:    identity.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		BasePrice:   req.BasePrice,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCatalogEntryResponse(offering, nil))
}

// List handles GET /services, the public catalog.
//
// @Summary      Browse the service catalog
// @Tags         services
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        q         query     string  false  "Search in titles"
// @Success      200       {array}   catalogEntryResponse
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	entries, err := h.catalog.ListPublic(c.Request().Context(), ports.ServiceFilter{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
	})
	if err != nil {
		return err
	}

	out := make([]catalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toCatalogEntryResponse(e.Service, e.Expert))
	}
	return c.JSON(http.StatusOK, out)
}

// ListMine handles GET /services/me, the expert's own offerings.
//
// @Summary      List my services (expert)
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   catalogEntryResponse
// @Failure      401  {object}  errorResponse
// @Router       /services/me [get]
func (h *ServiceHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	offerings, err := h.catalog.ListForExpert(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	out := make([]catalogEntryResponse, 0, len(offerings))
	for _, o := range offerings {
		out = append(out, toCatalogEntryResponse(o, nil))
	}
	return c.JSON(http.StatusOK, out)
}
