package middleware

import (
	"github.com/mycolab/genbank/contexts"
	"github.com/mycolab/genbank/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

const RequestIdHeader = "X-Request-Id"

/*
Echo middleware tagging every request with an id, taken from the
caller's X-Request-Id header when present
*/
func AssignRequestId(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.GenbankContext)

		requestId := c.Request().Header.Get(RequestIdHeader)
		if len(requestId) == 0 {
			requestId = uuid.New().String()
		}
		gc.RequestId = requestId
		c.Response().Header().Set(RequestIdHeader, requestId)

		logger.Info("request received",
			zap.String("requestId", requestId),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()))

		return next(c)
	}
}
