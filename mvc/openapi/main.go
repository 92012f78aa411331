package openapi

import (
	"net/http"

	doc "github.com/mycolab/genbank/openapi"

	"github.com/labstack/echo"
)

func GetOpenApiDocument(c echo.Context) error {
	return c.JSON(http.StatusOK, doc.OPENAPI_DOCUMENT)
}
