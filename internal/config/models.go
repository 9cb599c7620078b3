package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/muurk/pokedex/internal/browser"
	"github.com/muurk/pokedex/internal/catalog"
	"github.com/muurk/pokedex/internal/pokeapi"
)

// CurrentVersion is the configuration file format version.
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version        int           `yaml:"version"`
	APIURL         string        `yaml:"api_url"`
	PageSize       int           `yaml:"page_size"`       // Entries per index page
	TypeLimit      int           `yaml:"type_limit"`      // Max entries resolved for a category
	SearchDebounce time.Duration `yaml:"search_debounce"` // Quiet period before a search runs
	RequestTimeout time.Duration `yaml:"request_timeout"` // Per-request HTTP timeout
	LogLevel       string        `yaml:"log_level,omitempty"`
	LogFile        string        `yaml:"log_file,omitempty"`
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{
		Version:        CurrentVersion,
		APIURL:         pokeapi.DefaultBaseURL,
		PageSize:       catalog.DefaultPageSize,
		TypeLimit:      browser.DefaultTypeLimit,
		SearchDebounce: browser.DefaultSearchDebounce,
		RequestTimeout: pokeapi.DefaultTimeout,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error

	if c.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion))
	}
	if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api_url %q is not an absolute URL", c.APIURL))
	}
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", c.PageSize))
	}
	if c.TypeLimit <= 0 {
		errs = append(errs, fmt.Errorf("type_limit must be positive, got %d", c.TypeLimit))
	}
	if c.SearchDebounce <= 0 {
		errs = append(errs, fmt.Errorf("search_debounce must be positive, got %s", c.SearchDebounce))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout))
	}

	return errors.Join(errs...)
}

// BrowserOptions returns the controller options for this configuration.
func (c *Config) BrowserOptions() browser.Options {
	return browser.Options{
		PageSize:       c.PageSize,
		TypeLimit:      c.TypeLimit,
		SearchDebounce: c.SearchDebounce,
	}
}

// NewClient builds an API client for this configuration.
func (c *Config) NewClient() *pokeapi.Client {
	client := pokeapi.NewClient(c.APIURL)
	client.SetTimeout(c.RequestTimeout)
	return client
}
