// Package cmd is for command line interactions with the genbank service
package cmd

import (
	"fmt"
	"os"

	"github.com/mycolab/genbank/logger"
	"github.com/mycolab/genbank/models"
	serviceInfo "github.com/mycolab/genbank/models/constants/service-info"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "genbank",
	Short:   "BLAST nucleotide sequences and annotate the matches with GenBank records",
	Version: string(serviceInfo.SERVICE_VERSION),
}

var envFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading GENBANK_* variables")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig gathers the GENBANK_* environment, after loading the
// dotenv file if one exists, and starts the logger
func loadConfig() (*models.Config, error) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg models.Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}
	if err := logger.InitLogger(level); err != nil {
		return nil, err
	}

	return &cfg, nil
}
