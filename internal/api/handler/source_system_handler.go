package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datacatalog/metadata-system/internal/api/metrics"
	"github.com/datacatalog/metadata-system/internal/core/domain"
)

// ListSourceSystems handles GET /Source-Systems.
//
// @Summary      List source systems
// @Tags         source-systems
// @Produce      json,html
// @Success      200  {array}   domain.SourceSystem
// @Failure      500  {object}  errorResponse
// @Router       /Source-Systems [get]
func (h *CatalogHandler) ListSourceSystems(c echo.Context) error {
	systems, err := h.service.ListSourceSystems(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(systems))
	for _, s := range systems {
		rows = append(rows, []string{formatID(s.SrcSystemID), s.SrcSystemName})
	}
	headers := []string{"ID", "Name"}
	return respondList(c, "Source Systems", headers, rows, systems)
}

// CreateSourceSystem handles POST /Source-Systems.
//
// @Summary      Add a source system
// @Tags         source-systems
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSourceSystemRequest  true  "Source system fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /Source-Systems [post]
func (h *CatalogHandler) CreateSourceSystem(c echo.Context) error {
	var req createSourceSystemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.CreateSourceSystem(c.Request().Context(), &domain.SourceSystem{
		SrcSystemID:   req.SrcSystemID,
		SrcSystemName: req.SrcSystemName,
	})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("source_system", "create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Source system added successfully"})
}

// UpdateSourceSystem handles PUT /Source-Systems/:id.
//
// @Summary      Update a source system
// @Tags         source-systems
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                        true  "Source system ID"
// @Param        body  body      updateSourceSystemRequest  true  "Replacement fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /Source-Systems/{id} [put]
func (h *CatalogHandler) UpdateSourceSystem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateSourceSystemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.UpdateSourceSystem(c.Request().Context(), id, &domain.SourceSystem{
		SrcSystemName: req.SrcSystemName,
	})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("source_system", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Source system updated successfully"})
}

// DeleteSourceSystem handles DELETE /Source-Systems/:id.
//
// @Summary      Delete a source system
// @Tags         source-systems
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Source system ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /Source-Systems/{id} [delete]
func (h *CatalogHandler) DeleteSourceSystem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteSourceSystem(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("source_system", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Source system deleted successfully"})
}
