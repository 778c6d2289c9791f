package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datacatalog/metadata-system/internal/api/metrics"
	"github.com/datacatalog/metadata-system/internal/core/domain"
)

// ListEntities handles GET /Entity.
//
// @Summary      List entities
// @Tags         entities
// @Produce      json,html
// @Success      200  {array}   domain.Entity
// @Failure      500  {object}  errorResponse
// @Router       /Entity [get]
func (h *CatalogHandler) ListEntities(c echo.Context) error {
	entities, err := h.service.ListEntities(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, []string{formatID(e.EntityID), e.EntityName, e.EntityDescription})
	}
	headers := []string{"ID", "Name", "Description"}
	return respondList(c, "Entities", headers, rows, entities)
}

// CreateEntity handles POST /Entity.
//
// @Summary      Add an entity
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEntityRequest  true  "Entity fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /Entity [post]
func (h *CatalogHandler) CreateEntity(c echo.Context) error {
	var req createEntityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.CreateEntity(c.Request().Context(), &domain.Entity{
		EntityID:          req.EntityID,
		EntityName:        req.EntityName,
		EntityDescription: req.EntityDescription,
	})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("entity", "create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Entity added successfully"})
}

// UpdateEntity handles PUT /Entity/:id.
//
// @Summary      Update an entity
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Entity ID"
// @Param        body  body      updateEntityRequest  true  "Replacement fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /Entity/{id} [put]
func (h *CatalogHandler) UpdateEntity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateEntityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.UpdateEntity(c.Request().Context(), id, &domain.Entity{
		EntityName:        req.EntityName,
		EntityDescription: req.EntityDescription,
	})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("entity", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Entity updated successfully"})
}

// DeleteEntity handles DELETE /Entity/:id.
//
// @Summary      Delete an entity
// @Tags         entities
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Entity ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /Entity/{id} [delete]
func (h *CatalogHandler) DeleteEntity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteEntity(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("entity", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Entity deleted successfully"})
}
