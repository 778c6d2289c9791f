package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datacatalog/metadata-system/internal/api/metrics"
	"github.com/datacatalog/metadata-system/internal/core/domain"
)

// ListGlossaryTerms handles GET /Glossary-of-Business-Terms.
//
// @Summary      List glossary terms
// @Tags         glossary
// @Produce      json,html
// @Success      200  {array}   domain.GlossaryTerm
// @Failure      500  {object}  errorResponse
// @Router       /Glossary-of-Business-Terms [get]
func (h *CatalogHandler) ListGlossaryTerms(c echo.Context) error {
	terms, err := h.service.ListGlossaryTerms(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(terms))
	for _, g := range terms {
		rows = append(rows, []string{g.BusinessTermShortName, g.DateTermDefined})
	}
	headers := []string{"Short Name", "Date Defined"}
	return respondList(c, "Glossary of Business Terms", headers, rows, terms)
}

// CreateGlossaryTerm handles POST /Glossary-of-Business-Terms.
//
// @Summary      Add a glossary term
// @Tags         glossary
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGlossaryTermRequest  true  "Term fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /Glossary-of-Business-Terms [post]
func (h *CatalogHandler) CreateGlossaryTerm(c echo.Context) error {
	var req createGlossaryTermRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.CreateGlossaryTerm(c.Request().Context(), &domain.GlossaryTerm{
		BusinessTermShortName: req.BusinessTermShortName,
		DateTermDefined:       req.DateTermDefined,
	})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("glossary_term", "create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Term added successfully"})
}

// UpdateGlossaryTerm handles PUT /Glossary-of-Business-Terms/:name.
//
// @Summary      Update a glossary term
// @Tags         glossary
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string                     true  "Term short name"
// @Param        body  body      updateGlossaryTermRequest  true  "Replacement fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /Glossary-of-Business-Terms/{name} [put]
func (h *CatalogHandler) UpdateGlossaryTerm(c echo.Context) error {
	name := c.Param("name")

	var req updateGlossaryTermRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.UpdateGlossaryTerm(c.Request().Context(), name, &domain.GlossaryTerm{
		DateTermDefined: req.DateTermDefined,
	})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("glossary_term", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Term updated successfully"})
}

// DeleteGlossaryTerm handles DELETE /Glossary-of-Business-Terms/:name.
//
// @Summary      Delete a glossary term
// @Tags         glossary
// @Produce      json
// @Security     BearerAuth
// @Param        name  path  string  true  "Term short name"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /Glossary-of-Business-Terms/{name} [delete]
func (h *CatalogHandler) DeleteGlossaryTerm(c echo.Context) error {
	name := c.Param("name")

	if err := h.service.DeleteGlossaryTerm(c.Request().Context(), name); err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues("glossary_term", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Term deleted successfully"})
}
