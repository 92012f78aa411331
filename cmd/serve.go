package cmd

import (
	"fmt"

	"github.com/mycolab/genbank/contexts"
	"github.com/mycolab/genbank/logger"
	gam "github.com/mycolab/genbank/middleware"
	"github.com/mycolab/genbank/models"
	"github.com/mycolab/genbank/mvc/openapi"
	"github.com/mycolab/genbank/mvc/sequence"
	serviceInfo "github.com/mycolab/genbank/mvc/service-info"
	"github.com/mycolab/genbank/mvc/specimen"
	"github.com/mycolab/genbank/services/execution"
	"github.com/mycolab/genbank/services/sanitation"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the sequence search API on GENBANK_API_PORT.
Configuration is read from GENBANK_* environment variables`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tWork Directory : %s \n"+
		"\tCountries Table : %s \n\n"+

		"\tblastn : %s (db %s, word size %d, remote %t)\n"+
		"\tefetch : %s (db %s)\n\n"+

		"\tStamp Label : %s (with id %t)\n"+
		"\tAudit Database : %s\n"+
		"\tRetention (hours) : %d\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.WorkDir, orEmbedded(cfg.Api.CountriesPath),
		cfg.Blast.Path, cfg.Blast.Database, cfg.Blast.WordSize, cfg.Blast.Remote,
		cfg.Efetch.Path, cfg.Efetch.Database,
		cfg.Stamp.Label, cfg.Stamp.WithId,
		cfg.Audit.DbPath,
		cfg.Audit.RetentionHours,
		cfg.Api.Port)
	// --

	svc, err := NewServices(cfg, execution.NewProcessRunner())
	if err != nil {
		return err
	}
	defer svc.Close()

	sanitation.NewSanitationService(svc.Store, svc.Pruner(), cfg)

	e := NewServer(cfg, svc)
	logger.Info("starting server", zap.String("port", cfg.Api.Port))
	return e.Start(":" + cfg.Api.Port)
}

// NewServer configures routes and middleware around the given services
func NewServer(cfg *models.Config, svc *Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
	}))

	// -- Override handlers with "custom Genbank" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.GenbankContext{
				Context:       c,
				Config:        cfg,
				SearchService: svc.Search,
			}
			return h(cc)
		}
	})

	// Global Middleware
	e.Use(gam.AssignRequestId)

	// Begin MVC Routes
	// -- Root
	e.GET("/", serviceInfo.GetWelcome)

	// -- Service Info
	e.GET("/service-info", serviceInfo.GetServiceInfo)
	e.GET("/openapi.json", openapi.GetOpenApiDocument)

	// -- Sequence
	e.POST("/sequence", sequence.PostSequence,
		// middleware
		gam.MandateJsonBody)
	e.POST("/sequence/query", sequence.QuerySequence,
		// middleware
		gam.MandateJsonBody,
		gam.MandateSequenceAttribute,
		gam.ValidateRankingAttributes)
	e.PUT("/sequence/:id", sequence.PutSequence)
	e.GET("/sequence/:id", sequence.GetSequence)
	e.DELETE("/sequence/:id", sequence.DeleteSequence)

	// -- Specimen
	e.POST("/specimen", specimen.PostSpecimen,
		// middleware
		gam.MandateJsonBody)
	e.PUT("/specimen/:id", specimen.PutSpecimen)
	e.GET("/specimen/:id", specimen.GetSpecimen)
	e.DELETE("/specimen/:id", specimen.DeleteSpecimen)

	return e
}

func orEmbedded(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}
