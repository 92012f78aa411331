package contexts

import (
	"github.com/mycolab/genbank/models"
	"github.com/mycolab/genbank/services/search"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	// the search pipeline and other per-request variables
	GenbankContext struct {
		echo.Context
		Config        *models.Config
		SearchService *search.SearchService

		RequestId string
		// raw JSON body, read once by the body middleware
		Body []byte
		// md5 of Body
		QueryId string
	}
)
