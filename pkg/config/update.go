package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Harvest flags, Export location).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.NCBI.Email
	if s != "" {
		res = append(res, OptNCBIEmail(s))
	}
	s = c.NCBI.APIKey
	if s != "" {
		res = append(res, OptNCBIAPIKey(s))
	}
	s = c.NCBI.URL
	if s != "" {
		res = append(res, OptNCBIURL(s))
	}
	i = c.NCBI.RequestsPerSecond
	if i > 0 {
		res = append(res, OptNCBIRequestsPerSecond(i))
	}

	s = c.ITIS.URL
	if s != "" {
		res = append(res, OptITISURL(s))
	}

	i = c.Retry.MaxAttempts
	if i > 0 {
		res = append(res, OptRetryMaxAttempts(i))
	}
	i = c.Retry.Delay
	if i > 0 {
		res = append(res, OptRetryDelay(i))
	}
	i = c.Retry.Timeout
	if i > 0 {
		res = append(res, OptRetryTimeout(i))
	}

	i = c.Harvest.PageSize
	if i > 0 {
		res = append(res, OptHarvestPageSize(i))
	}

	if len(c.Export.Formats) > 0 {
		res = append(res, OptExportFormats(c.Export.Formats))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidURL(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		gn.Warn("<em>%s</em> is not a valid URL: '%s', ignoring", name, s)
		return false
	}
	return true
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Export.Formats":  {"csv": s, "tsv": s, "html": s, "sqlite": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
