package specimen

import (
	"net/http"

	"github.com/mycolab/genbank/contexts"
	"github.com/mycolab/genbank/logger"
	"github.com/mycolab/genbank/models/dtos"
	"github.com/mycolab/genbank/mvc"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

// Specimens are identified the same way sequences are, by body hash

func PostSpecimen(c echo.Context) error {
	gc := c.(*contexts.GenbankContext)
	logger.Info("PostSpecimen hit!", zap.String("requestId", gc.RequestId), zap.String("specimenId", gc.QueryId))

	return c.JSON(http.StatusOK, dtos.IdResponseDto{Id: gc.QueryId})
}

func PutSpecimen(c echo.Context) error {
	return mvc.NotImplemented(c)
}

func GetSpecimen(c echo.Context) error {
	return mvc.NotImplemented(c)
}

func DeleteSpecimen(c echo.Context) error {
	return mvc.NotImplemented(c)
}
