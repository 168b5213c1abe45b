// Package config provides loading and validation of client profiles:
// YAML files that describe how to construct a rest.Client (base URL,
// default headers, proxy, timeout).
//
// Basic Usage:
//
//	cfg, err := config.Load("profile.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := rest.New(cfg.ClientOptions()...)
//
// A profile looks like:
//
//	baseUrl: https://api.example.com
//	headers:
//	  Authorization: Bearer token
//	proxy:
//	  host: proxy.internal
//	  port: 8080
//	timeoutSeconds: 15
//
// Profiles are checked against a JSON Schema at load time and then run
// through Validate, which reports every problem rather than stopping at
// the first one.
package config
