package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datacatalog/metadata-system/internal/api/render"
)

// Home handles GET /, the landing page linking the catalog tables.
func Home(c echo.Context) error {
	page, err := render.Home()
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, page)
}
