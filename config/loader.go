package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/restbase/restbase/rest"
)

// Config is a client profile: everything needed to construct a rest.Client
// for one API. It is set once at load time and immutable afterwards.
type Config struct {
	BaseURL        string            `yaml:"baseUrl" json:"baseUrl"`
	Headers        map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	Proxy          *Proxy            `yaml:"proxy,omitempty" json:"proxy,omitempty"`
	TimeoutSeconds int               `yaml:"timeoutSeconds,omitempty" json:"timeoutSeconds,omitempty"`
}

// Proxy is an HTTP proxy address, passed opaquely to the transport.
type Proxy struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// Load reads, schema-checks and validates a YAML client profile.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a YAML client profile from raw bytes.
func Parse(data []byte) (*Config, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid profile: %s", errs[0].Error())
	}
	return &cfg, nil
}

// ClientOptions converts the profile into rest client options.
func (c *Config) ClientOptions() []rest.Option {
	opts := []rest.Option{rest.WithBaseURL(c.BaseURL)}
	for key, value := range c.Headers {
		opts = append(opts, rest.WithHeader(key, value))
	}
	if c.TimeoutSeconds > 0 {
		opts = append(opts, rest.WithTimeout(time.Duration(c.TimeoutSeconds)*time.Second))
	}
	if c.Proxy != nil {
		opts = append(opts, rest.WithProxy(c.Proxy.Host, c.Proxy.Port))
	}
	return opts
}

// yamlToJSON re-encodes YAML as JSON so it can be checked against the
// profile schema.
func yamlToJSON(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("re-encoding profile: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("re-encoding profile: %w", err)
	}
	return doc, nil
}
