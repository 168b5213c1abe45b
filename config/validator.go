package config

import (
	"fmt"
	"net/url"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// profileSchema is the structural contract for a client profile. Semantic
// checks (URL shape, port range) live in Validate.
const profileSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"baseUrl": { "type": "string", "minLength": 1 },
		"headers": {
			"type": "object",
			"additionalProperties": { "type": "string" }
		},
		"proxy": {
			"type": "object",
			"properties": {
				"host": { "type": "string", "minLength": 1 },
				"port": { "type": "integer" }
			},
			"required": ["host", "port"],
			"additionalProperties": false
		},
		"timeoutSeconds": { "type": "integer", "minimum": 0 }
	},
	"required": ["baseUrl"],
	"additionalProperties": false
}`

var compiledSchema = jsonschema.MustCompileString("profile.schema.json", profileSchema)

// ValidationError is one problem found in a client profile.
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// validateSchema checks raw YAML against the profile schema.
func validateSchema(data []byte) error {
	doc, err := yamlToJSON(data)
	if err != nil {
		return err
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("profile schema: %w", err)
	}
	return nil
}

// Validate runs semantic checks on a parsed profile and returns every
// problem found.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if cfg.BaseURL == "" {
		errs = append(errs, ValidationError{
			Path:    "baseUrl",
			Message: "baseUrl is required",
		})
	} else if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{
			Path:    "baseUrl",
			Message: "baseUrl must be an absolute URL",
		})
	}

	for key := range cfg.Headers {
		if key == "" {
			errs = append(errs, ValidationError{
				Path:    "headers",
				Message: "header names must not be empty",
			})
		}
	}

	if cfg.Proxy != nil {
		if cfg.Proxy.Host == "" {
			errs = append(errs, ValidationError{
				Path:    "proxy.host",
				Message: "proxy host is required",
			})
		}
		if cfg.Proxy.Port <= 0 || cfg.Proxy.Port > 65535 {
			errs = append(errs, ValidationError{
				Path:    "proxy.port",
				Message: fmt.Sprintf("proxy port %d is out of range", cfg.Proxy.Port),
			})
		}
	}

	return errs
}
