package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptNCBIEmail sets the email sent to NCBI with every request.
func OptNCBIEmail(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("NCBI Email", s) {
			c.NCBI.Email = s
		}
	}
}

// OptNCBIAPIKey sets the NCBI API key.
func OptNCBIAPIKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("NCBI API Key", s) {
			c.NCBI.APIKey = s
		}
	}
}

// OptNCBIURL sets the base URL of NCBI E-utilities.
func OptNCBIURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("NCBI URL", s) {
			c.NCBI.URL = withSlash(s)
		}
	}
}

// OptNCBIRequestsPerSecond sets the maximum rate of requests to NCBI.
func OptNCBIRequestsPerSecond(i int) Option {
	return func(c *Config) {
		if isValidInt("NCBI Requests Per Second", i) {
			c.NCBI.RequestsPerSecond = i
		}
	}
}

// OptITISURL sets the base URL of ITIS JSON web service.
func OptITISURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("ITIS URL", s) {
			c.ITIS.URL = withSlash(s)
		}
	}
}

// OptRetryMaxAttempts sets how many times a remote call is attempted.
func OptRetryMaxAttempts(i int) Option {
	return func(c *Config) {
		if isValidInt("Retry Max Attempts", i) {
			c.Retry.MaxAttempts = i
		}
	}
}

// OptRetryDelay sets the pause between attempts in seconds.
func OptRetryDelay(i int) Option {
	return func(c *Config) {
		if isValidInt("Retry Delay", i) {
			c.Retry.Delay = i
		}
	}
}

// OptRetryTimeout sets the timeout of one HTTP request in seconds.
func OptRetryTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Retry Timeout", i) {
			c.Retry.Timeout = i
		}
	}
}

// OptHarvestPageSize sets the number of identifiers per search page.
func OptHarvestPageSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Harvest Page Size", i) {
			c.Harvest.PageSize = i
		}
	}
}

// OptHarvestConfirmed confirms processing of the root taxon.
// Runtime-only field - not in ToOptions().
func OptHarvestConfirmed(b bool) Option {
	return func(c *Config) {
		c.Harvest.Confirmed = b
	}
}

// OptHarvestExcludeLong removes records longer than 1300 bp.
// Runtime-only field - not in ToOptions().
func OptHarvestExcludeLong(b bool) Option {
	return func(c *Config) {
		c.Harvest.ExcludeLong = b
	}
}

// OptHarvestSkipScopeSearch disables order, family and genus searches.
// Runtime-only field - not in ToOptions().
func OptHarvestSkipScopeSearch(b bool) Option {
	return func(c *Config) {
		c.Harvest.SkipScopeSearch = b
	}
}

// OptExportFormats sets formats of output files.
// Valid values: "csv", "tsv", "html", "sqlite".
func OptExportFormats(ss []string) Option {
	var formats []string
	for _, v := range ss {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		formats = append(formats, v)
	}
	return func(c *Config) {
		if len(formats) == 0 {
			isValidString("Export Formats", "")
			return
		}
		for _, v := range formats {
			if !isValidEnum("Export.Formats", v) {
				return
			}
		}
		c.Export.Formats = formats
	}
}

// OptExportDir sets the directory for output files.
// Runtime-only field - not in ToOptions().
func OptExportDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Directory", s) {
			c.Export.Dir = s
		}
	}
}

// OptExportPrefix sets the prefix of output file names.
// Runtime-only field - not in ToOptions().
func OptExportPrefix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Prefix", s) {
			c.Export.Prefix = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers of hierarchy descent.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func withSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
