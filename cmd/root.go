/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/internal/iofs"
	"github.com/gnames/gnbarcode/internal/iologger"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/gnbarcode"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			gnbarcode.Version, gnbarcode.Build),
		Use:   "gnbarcode",
		Short: "GNbarcode harvests COI and CYTB barcodes and ranks species for conservation",
		Long: `GNbarcode aggregates taxonomic and genetic data for a taxon and scores
species by conservation priority.

Commands:
  - harvest: finds species of a taxon in ITIS, their synonyms, and
    COI and CYTB sequence records in GenBank
  - prioritize: scores species from a CSV file by IUCN status, loss of
    suitable area under SSP245 and SSP585 climate scenarios, extent of
    occurrence and human footprint

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNBARCODE_*), also read from .env file
  3. Config file (~/.config/gnbarcode/config.yaml)
  4. Built-in defaults

Environment Variables:
  GNBARCODE_NCBI_EMAIL            email sent to NCBI with every request
  GNBARCODE_NCBI_API_KEY          NCBI API key (10 instead of 3 requests/sec)
  GNBARCODE_JOBS_NUMBER           concurrent workers of ITIS descent
  GNBARCODE_LOG_LEVEL             log level (debug/info/warn/error)

  See 'go doc github.com/gnames/gnbarcode/pkg/config' for complete list.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnbarcode version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnbarcode")

	rootCmd.AddCommand(getHarvestCmd(), getPrioritizeCmd())
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = loadDotEnv(); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, the log file started above
	// is continued
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

// loadDotEnv exports variables from .env file in the working directory,
// if the file exists. Variables already set in the environment win.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		slog.Info("Environment variables loaded from .env")
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return iofs.ReadFileError(".env", err)
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). The commands are
// cancelled on SIGINT or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	err := getRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNBARCODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// NCBI configuration
	v.BindEnv("ncbi.email", "GNBARCODE_NCBI_EMAIL")
	v.BindEnv("ncbi.api_key", "GNBARCODE_NCBI_API_KEY")
	v.BindEnv("ncbi.url", "GNBARCODE_NCBI_URL")
	v.BindEnv("ncbi.requests_per_second", "GNBARCODE_NCBI_REQUESTS_PER_SECOND")

	// ITIS configuration
	v.BindEnv("itis.url", "GNBARCODE_ITIS_URL")

	// Retry configuration
	v.BindEnv("retry.max_attempts", "GNBARCODE_RETRY_MAX_ATTEMPTS")
	v.BindEnv("retry.delay", "GNBARCODE_RETRY_DELAY")
	v.BindEnv("retry.timeout", "GNBARCODE_RETRY_TIMEOUT")

	// Harvest and export configuration
	v.BindEnv("harvest.page_size", "GNBARCODE_HARVEST_PAGE_SIZE")
	v.BindEnv("export.formats", "GNBARCODE_EXPORT_FORMATS")

	// Log configuration
	v.BindEnv("log.level", "GNBARCODE_LOG_LEVEL")
	v.BindEnv("log.format", "GNBARCODE_LOG_FORMAT")
	v.BindEnv("log.destination", "GNBARCODE_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNBARCODE_JOBS_NUMBER")

	v.AutomaticEnv()
}
