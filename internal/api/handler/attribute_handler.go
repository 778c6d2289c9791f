package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datacatalog/metadata-system/internal/api/metrics"
	"github.com/datacatalog/metadata-system/internal/core/domain"
	"github.com/datacatalog/metadata-system/internal/core/ports"
)

// CatalogHandler exposes the CRUD endpoints for the five catalog resources.
// Its per-resource methods live in the sibling *_handler.go files.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListAttributes handles GET /Attribute.
//
// @Summary      List attributes
// @Tags         attributes
// @Produce      json,html
// @Success      200  {array}   domain.Attribute
// @Failure      500  {object}  errorResponse
// @Router       /Attribute [get]
func (h *CatalogHandler) ListAttributes(c echo.Context) error {
	attrs, err := h.service.ListAttributes(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(attrs))
	for _, a := range attrs {
		rows = append(rows, []string{
			formatID(a.AttributeID), a.AttributeName, a.AttributeDatatype,
			a.AttributeDescription, a.TypicalValues, a.ValidationCriteria,
		})
	}
	headers := []string{"ID", "Name", "Datatype", "Description", "Typical Values", "Validation Criteria"}
	return respondList(c, "Attributes", headers, rows, attrs)
}

// CreateAttribute handles POST /Attribute.
//
// @Summary      Add an attribute
// @Tags         attributes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAttributeRequest  true  "Attribute fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /Attribute [post]
func (h *CatalogHandler) CreateAttribute(c echo.Context) error {
	var req createAttributeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.CreateAttribute(c.Request().Context(), &domain.Attribute{
		AttributeID:          req.AttributeID,
		AttributeName:        req.AttributeName,
		AttributeDatatype:    req.AttributeDatatype,
		AttributeDescription: req.AttributeDescription,
		TypicalValues:        req.TypicalValues,
		ValidationCriteria:   req.ValidationCriteria,
	})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("attribute", "create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Attribute added successfully"})
}

// UpdateAttribute handles PUT /Attribute/:id.
//
// @Summary      Update an attribute
// @Tags         attributes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Attribute ID"
// @Param        body  body      updateAttributeRequest  true  "Replacement fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /Attribute/{id} [put]
func (h *CatalogHandler) UpdateAttribute(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAttributeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.UpdateAttribute(c.Request().Context(), id, &domain.Attribute{
		AttributeName:        req.AttributeName,
		AttributeDatatype:    req.AttributeDatatype,
		AttributeDescription: req.AttributeDescription,
		TypicalValues:        req.TypicalValues,
		ValidationCriteria:   req.ValidationCriteria,
	})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("attribute", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Attribute updated successfully"})
}

// DeleteAttribute handles DELETE /Attribute/:id.
//
// @Summary      Delete an attribute
// @Tags         attributes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Attribute ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /Attribute/{id} [delete]
func (h *CatalogHandler) DeleteAttribute(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAttribute(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("attribute", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Attribute deleted successfully"})
}
