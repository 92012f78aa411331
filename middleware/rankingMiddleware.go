package middleware

import (
	"fmt"
	"net/http"

	"github.com/mycolab/genbank/contexts"
	s "github.com/mycolab/genbank/models/constants/sort"
	sk "github.com/mycolab/genbank/models/constants/sort-key"

	"github.com/Jeffail/gabs"
	"github.com/labstack/echo"
)

/*
Echo middleware rejecting unknown sort keys, directions and filter keys,
and range filters whose bounds are not balanced.
Omitted attributes fall back to the request defaults downstream
*/
func ValidateRankingAttributes(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.GenbankContext)

		parsed, err := gabs.ParseJSON(gc.Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing or invalid JSON body!")
		}

		if sortKey, ok := parsed.S("sort_key").Data().(string); ok {
			if _, unknown := sk.CastToSortKeys(sortKey); unknown != "" {
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Unknown sort_key %s!", unknown))
			}
		}

		if sortDir, ok := parsed.S("sort_dir").Data().(string); ok {
			if s.CastToSortDirection(sortDir) == s.Undefined {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid sort_dir, expected asc or desc!")
			}
		}

		filters, _ := parsed.S("filters").Children()
		for _, f := range filters {
			key, _ := f.S("key").Data().(string)
			if !sk.IsKnownSortKey(key) {
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Unknown filter key %s!", key))
			}

			// allow the filter if and only if:
			// - at most one bound is provided
			// - both are provided and balanced
			lower, hasLower := f.S("min").Data().(float64)
			upper, hasUpper := f.S("max").Data().(float64)
			if hasLower && hasUpper && upper < lower {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid lower and upper bounds!")
			}
		}

		return next(c)
	}
}
