package middleware

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/mycolab/genbank/contexts"
	"github.com/mycolab/genbank/services/search"
	"github.com/mycolab/genbank/utils"

	"github.com/labstack/echo"
)

var acceptedMediaTypes = []string{"", echo.MIMEApplicationJSON}

/*
Echo middleware to ensure a JSON object was posted; the raw body
and its derived id are kept on the context for the handlers
*/
func MandateJsonBody(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.GenbankContext)

		if !utils.StringInSlice(utils.MediaType(c.Request().Header.Get(echo.HeaderContentType)), acceptedMediaTypes) {
			return echo.NewHTTPError(http.StatusUnsupportedMediaType, "Request body must be JSON!")
		}

		body, err := ioutil.ReadAll(c.Request().Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Unreadable request body!")
		}

		var object map[string]interface{}
		if len(body) == 0 || json.Unmarshal(body, &object) != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing or invalid JSON body!")
		}

		gc.Body = body
		gc.QueryId = search.DeriveId(body)
		return next(c)
	}
}
