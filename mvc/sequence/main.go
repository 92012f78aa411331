package sequence

import (
	"net/http"

	"github.com/mycolab/genbank/contexts"
	"github.com/mycolab/genbank/logger"
	"github.com/mycolab/genbank/models/dtos"
	"github.com/mycolab/genbank/mvc"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

// PostSequence returns the id a later query with the same body would use
func PostSequence(c echo.Context) error {
	gc := c.(*contexts.GenbankContext)
	logger.Info("PostSequence hit!", zap.String("requestId", gc.RequestId), zap.String("queryId", gc.QueryId))

	return c.JSON(http.StatusOK, dtos.IdResponseDto{Id: gc.QueryId})
}

func QuerySequence(c echo.Context) error {
	gc := c.(*contexts.GenbankContext)
	log := logger.With(zap.String("requestId", gc.RequestId), zap.String("queryId", gc.QueryId))
	log.Info("QuerySequence hit!")

	results, status, err := gc.SearchService.Query(c.Request().Context(), gc.Body)
	if err != nil {
		log.Error("search failed", zap.Int("status", status), zap.Error(err))
		return mvc.RespondWithError(c, status, err)
	}

	return c.JSON(http.StatusOK, results)
}

func PutSequence(c echo.Context) error {
	return mvc.NotImplemented(c)
}

func GetSequence(c echo.Context) error {
	return mvc.NotImplemented(c)
}

func DeleteSequence(c echo.Context) error {
	return mvc.NotImplemented(c)
}
