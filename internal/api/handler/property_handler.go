package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/ports"
)

// PropertyHandler handles listing CRUD and the featured read surface.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List handles GET /properties.
//
// @Summary      List all properties
// @Tags         properties
// @Produce      json
// @Success      200  {array}  domain.Property
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// Create handles POST /properties.
//
// @Summary      Create a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        body  body      createPropertyRequest  true  "Listing details"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	property, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		Image:         req.Image,
		HostEmail:     req.HostEmail,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, property)
}

// Get handles GET /properties/:id.
//
// @Summary      Get a property by id
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// Update handles PUT /properties/:id.
//
// @Summary      Update a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Property id"
// @Param        body  body      updatePropertyRequest  true  "Fields to update"
// @Success      200   {object}  domain.Property
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	property, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdatePropertyInput{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		Image:         req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// Delete handles DELETE /properties/:id.
//
// @Summary      Delete a property listing
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  deletePropertyResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletePropertyResponse{
		Message:      "Property deleted successfully.",
		DeletedCount: deleted,
	})
}

// Featured handles GET /featured.
//
// @Summary      List featured properties
// @Tags         properties
// @Produce      json
// @Success      200  {array}  domain.FeaturedProperty
// @Router       /featured [get]
func (h *PropertyHandler) Featured(c echo.Context) error {
	featured, err := h.service.ListFeatured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, featured)
}
