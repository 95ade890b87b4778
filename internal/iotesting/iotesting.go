// Package iotesting provides fake ITIS and NCBI services and configuration
// for tests of I/O packages.
package iotesting

import (
	"testing"

	"github.com/gnames/gnbarcode/pkg/config"
)

// Config returns configuration that points to fake services, makes no
// pauses between attempts and writes output into a temporary directory.
func Config(t *testing.T, itisURL, ncbiURL string) *config.Config {
	t.Helper()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptITISURL(itisURL),
		config.OptNCBIURL(ncbiURL),
		config.OptNCBIRequestsPerSecond(1000),
		config.OptRetryMaxAttempts(2),
		config.OptRetryTimeout(5),
		config.OptHarvestPageSize(2),
		config.OptExportDir(t.TempDir()),
		config.OptExportPrefix("test"),
		config.OptHomeDir(t.TempDir()),
	})
	// zero delay is not a valid option value
	cfg.Retry.Delay = 0
	return cfg
}
