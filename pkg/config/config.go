// Package config provides configuration management for gnbarcode.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - NCBI: email, api_key, url, requests_per_second
//   - ITIS: url
//   - Retry: max_attempts, delay, timeout
//   - Harvest: page_size
//   - Export: formats
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Harvest.Confirmed, ExcludeLong, SkipScopeSearch (per-command)
//   - Export.Prefix, Export.Dir (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNBARCODE_ prefix with underscores for nesting:
//
//	GNBARCODE_NCBI_EMAIL=me@example.org
//	GNBARCODE_NCBI_API_KEY=0123456789abcdef
//	GNBARCODE_LOG_LEVEL=info
//	GNBARCODE_JOBS_NUMBER=4
//
// The same variables can be placed into a .env file in the working
// directory.
package config

// Config represents the complete gnbarcode configuration.
type Config struct {
	// NCBI contains settings for the NCBI E-utilities sequence database.
	NCBI NCBIConfig `mapstructure:"ncbi" yaml:"ncbi"`

	// ITIS contains settings for the ITIS taxonomy web service.
	ITIS ITISConfig `mapstructure:"itis" yaml:"itis"`

	// Retry determines how failed remote calls are repeated.
	Retry RetryConfig `mapstructure:"retry" yaml:"retry"`

	// Harvest contains settings specific to the harvest command.
	Harvest HarvestConfig `mapstructure:"harvest" yaml:"harvest"`

	// Export determines formats and location of output files.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers descending the
	// taxonomic hierarchy. Default is 1 (serial), ITIS is sensitive to
	// parallel load.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// NCBIConfig contains credentials and endpoint of NCBI E-utilities.
type NCBIConfig struct {
	// Email is sent with every request as NCBI policy requires.
	Email string `mapstructure:"email" yaml:"email"`

	// APIKey raises the allowed request rate from 3 to 10 per second.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	// URL is the base URL of E-utilities.
	URL string `mapstructure:"url" yaml:"url"`

	// RequestsPerSecond limits the rate of requests. If zero, the limit
	// is derived from the presence of APIKey.
	RequestsPerSecond int `mapstructure:"requests_per_second" yaml:"requests_per_second"`
}

// ITISConfig contains the endpoint of ITIS JSON web service.
type ITISConfig struct {
	// URL is the base URL of the ITIS jsonservice.
	URL string `mapstructure:"url" yaml:"url"`
}

// RetryConfig determines the retry policy of remote calls.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts of one call.
	MaxAttempts int `mapstructure:"max_attempts" yaml:"max_attempts"`

	// Delay is the pause between attempts in seconds.
	Delay int `mapstructure:"delay" yaml:"delay"`

	// Timeout of one HTTP request in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// HarvestConfig contains settings of the harvest command.
type HarvestConfig struct {
	// PageSize is the number of identifiers requested per search page.
	PageSize int `mapstructure:"page_size" yaml:"page_size"`

	// Confirmed is true when the user agreed to process the root taxon.
	// Runtime-only field.
	Confirmed bool `mapstructure:"-" yaml:"-"`

	// ExcludeLong removes records longer than 1300 bp (mitogenomes and
	// metagenome assemblies). Runtime-only field.
	ExcludeLong bool `mapstructure:"-" yaml:"-"`

	// SkipScopeSearch disables direct, family and genus searches, leaving
	// only per-species searches. Runtime-only field.
	SkipScopeSearch bool `mapstructure:"-" yaml:"-"`
}

// ExportConfig determines output files.
type ExportConfig struct {
	// Formats of output files: 'csv', 'tsv', 'html', 'sqlite'.
	Formats []string `mapstructure:"formats" yaml:"formats"`

	// Dir is the directory for output files. Runtime-only field.
	Dir string `mapstructure:"-" yaml:"-"`

	// Prefix is prepended to names of output files. Runtime-only field.
	Prefix string `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		NCBI: NCBIConfig{
			URL: "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/",
		},
		ITIS: ITISConfig{
			URL: "https://www.itis.gov/ITISWebService/jsonservice/",
		},
		Retry: RetryConfig{
			MaxAttempts: 5,
			Delay:       5,
			Timeout:     10,
		},
		Harvest: HarvestConfig{
			PageSize: 100,
		},
		Export: ExportConfig{
			Formats: []string{"csv", "html"},
			Dir:     ".",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: 1,
	}

	return res
}

// Proceed tells if the harvest should start after the root taxon is
// shown to the user.
func (h HarvestConfig) Proceed() bool {
	return h.Confirmed
}
