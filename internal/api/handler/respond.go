package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/datacatalog/metadata-system/internal/api/render"
)

// wantsJSON reports whether the client asked for a JSON payload instead of
// the rendered HTML table.
func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get("Accept"), "application/json")
}

// respondList answers a resource GET: JSON array when requested, an HTML
// table page otherwise.
func respondList(c echo.Context, title string, headers []string, rows [][]string, data any) error {
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, data)
	}
	page, err := render.Table(render.TablePage{Title: title, Headers: headers, Rows: rows})
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, page)
}

// pathID parses the numeric primary key from the request path.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
