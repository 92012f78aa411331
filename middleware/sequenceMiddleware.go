package middleware

import (
	"net/http"
	"strings"

	"github.com/mycolab/genbank/contexts"

	"github.com/Jeffail/gabs"
	"github.com/labstack/echo"
)

/*
Echo middleware to ensure the posted body carries a `sequence` string.
Must run after MandateJsonBody
*/
func MandateSequenceAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.GenbankContext)

		parsed, err := gabs.ParseJSON(gc.Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing or invalid JSON body!")
		}

		sequence, ok := parsed.S("sequence").Data().(string)
		if !ok || len(strings.TrimSpace(sequence)) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing sequence!")
		}

		return next(c)
	}
}
