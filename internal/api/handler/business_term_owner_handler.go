package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datacatalog/metadata-system/internal/api/metrics"
	"github.com/datacatalog/metadata-system/internal/core/domain"
)

// ListBusinessTermOwners handles GET /Business-Term-Owner.
//
// @Summary      List business term owners
// @Tags         business-term-owners
// @Produce      json,html
// @Success      200  {array}   domain.BusinessTermOwner
// @Failure      500  {object}  errorResponse
// @Router       /Business-Term-Owner [get]
func (h *CatalogHandler) ListBusinessTermOwners(c echo.Context) error {
	owners, err := h.service.ListBusinessTermOwners(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(owners))
	for _, o := range owners {
		rows = append(rows, []string{o.TermOwnerCode, o.TermOwnerDescription})
	}
	headers := []string{"Code", "Description"}
	return respondList(c, "Business Term Owners", headers, rows, owners)
}

// CreateBusinessTermOwner handles POST /Business-Term-Owner.
//
// @Summary      Add a business term owner
// @Tags         business-term-owners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBusinessTermOwnerRequest  true  "Owner fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /Business-Term-Owner [post]
func (h *CatalogHandler) CreateBusinessTermOwner(c echo.Context) error {
	var req createBusinessTermOwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.CreateBusinessTermOwner(c.Request().Context(), &domain.BusinessTermOwner{
		TermOwnerCode:        req.TermOwnerCode,
		TermOwnerDescription: req.TermOwnerDescription,
	})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("business_term_owner", "create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Business Term Owner added successfully"})
}

// UpdateBusinessTermOwner handles PUT /Business-Term-Owner/:code.
//
// @Summary      Update a business term owner
// @Tags         business-term-owners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string                          true  "Owner code"
// @Param        body  body      updateBusinessTermOwnerRequest  true  "Replacement fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /Business-Term-Owner/{code} [put]
func (h *CatalogHandler) UpdateBusinessTermOwner(c echo.Context) error {
	code := c.Param("code")

	var req updateBusinessTermOwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.UpdateBusinessTermOwner(c.Request().Context(), code, &domain.BusinessTermOwner{
		TermOwnerDescription: req.TermOwnerDescription,
	})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("business_term_owner", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Business Term Owner updated successfully"})
}

// DeleteBusinessTermOwner handles DELETE /Business-Term-Owner/:code.
//
// @Summary      Delete a business term owner
// @Tags         business-term-owners
// @Produce      json
// @Security     BearerAuth
// @Param        code  path  string  true  "Owner code"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /Business-Term-Owner/{code} [delete]
func (h *CatalogHandler) DeleteBusinessTermOwner(c echo.Context) error {
	code := c.Param("code")

	if err := h.service.DeleteBusinessTermOwner(c.Request().Context(), code); err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("business_term_owner", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Business Term Owner deleted successfully"})
}
