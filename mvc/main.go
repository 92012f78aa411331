package mvc

import (
	"net/http"

	"github.com/mycolab/genbank/contexts"
	errorsDtos "github.com/mycolab/genbank/models/dtos/errors"

	"github.com/labstack/echo"
)

// RespondWithError renders a failed pipeline run as a general error response
func RespondWithError(c echo.Context, status int, err error) error {
	switch status {
	case http.StatusBadRequest:
		return c.JSON(status, errorsDtos.CreateSimpleBadRequest(err.Error()))
	case http.StatusBadGateway:
		return c.JSON(status, errorsDtos.CreateSimpleBadGateway(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, errorsDtos.CreateSimpleInternalServerError(err.Error()))
	}
}

// NotImplemented answers the resource routes kept for API compatibility
func NotImplemented(c echo.Context) error {
	gc := c.(*contexts.GenbankContext)
	return c.JSON(http.StatusNotImplemented,
		errorsDtos.CreateSimpleNotImplemented(c.Request().Method+" "+c.Path()+" is not implemented (request "+gc.RequestId+")"))
}
