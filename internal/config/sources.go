package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	envcfg "randomyt/pkg/config"

	"gopkg.in/yaml.v3"
)

// Metadata source names, in their default priority order.
const (
	SourceWatchPage = "watchpage"
	SourceDataAPI   = "dataapi"
	SourceNoEmbed   = "noembed"
	SourceOEmbed    = "oembed"
)

// KnownSources lists every source name the service can build, in priority order.
// A sources file may omit or disable entries but must keep this relative order.
var KnownSources = []string{SourceWatchPage, SourceDataAPI, SourceNoEmbed, SourceOEmbed}

// SourceSettings configures one metadata source.
// Empty URL and UserAgent select the source's built-in defaults.
type SourceSettings struct {
	Name      string        `yaml:"name"`
	Enabled   *bool         `yaml:"enabled"`
	URL       string        `yaml:"url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	// APIKeyEnv names the environment variable holding the source's access token.
	APIKeyEnv string `yaml:"api_key_env"`
	// APIKey is filled from APIKeyEnv at load time; never read from the file.
	APIKey string `yaml:"-"`
}

// IsEnabled reports whether the source takes part in resolution. Sources are enabled unless disabled explicitly.
func (s SourceSettings) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// SourcesFile is the YAML document read from SOURCES_FILE.
//
//	sources:
//	  - name: watchpage
//	    timeout: 8s
//	  - name: dataapi
//	    api_key_env: YOUTUBE_API_KEY
//	  - name: oembed
type SourcesFile struct {
	Sources []SourceSettings `yaml:"sources"`
}

// DefaultSources returns the built-in source order.
func DefaultSources() []SourceSettings {
	return []SourceSettings{
		{Name: SourceWatchPage},
		{Name: SourceDataAPI, URL: envcfg.GetEnvString("YOUTUBE_API_URL", ""), APIKeyEnv: "YOUTUBE_API_KEY"},
		{Name: SourceNoEmbed},
		{Name: SourceOEmbed},
	}
}

// LoadSourcesFile loads the metadata source list from a YAML file.
// The path parameter is expected to come from a trusted source (environment).
func LoadSourcesFile(path string) (*SourcesFile, error) {
	// #nosec G304 -- path is provided by the operator, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var file SourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	if len(file.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s declares no sources", path)
	}
	return &file, nil
}

// resolveSources fills per-source defaults: timeout and API key.
func resolveSources(sources []SourceSettings, timeout time.Duration) []SourceSettings {
	out := make([]SourceSettings, len(sources))
	for i, s := range sources {
		if s.Timeout == 0 {
			s.Timeout = timeout
		}
		if s.APIKeyEnv != "" {
			s.APIKey = os.Getenv(s.APIKeyEnv)
		}
		out[i] = s
	}
	return out
}

func validateSources(sources []SourceSettings) error {
	seen := make(map[string]bool, len(sources))
	enabled := 0
	last := -1
	for _, s := range sources {
		rank := slices.Index(KnownSources, s.Name)
		if rank < 0 {
			return fmt.Errorf("unknown metadata source %q (known: %v)", s.Name, KnownSources)
		}
		if seen[s.Name] {
			return fmt.Errorf("metadata source %q listed twice", s.Name)
		}
		seen[s.Name] = true
		if rank < last {
			return fmt.Errorf("metadata source %q is out of priority order (want %v)", s.Name, KnownSources)
		}
		last = rank
		if err := envcfg.ValidatePositiveDuration("timeout of source "+s.Name, s.Timeout); err != nil {
			return err
		}
		if s.IsEnabled() {
			enabled++
		}
	}
	if enabled == 0 {
		return fmt.Errorf("at least one metadata source must be enabled")
	}
	return nil
}
