// Package output formats requests, responses and API errors for terminal
// display.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/restbase/restbase/rest"
)

// Formatter renders request/response summaries. NoColor disables ANSI
// escapes for non-terminal output.
type Formatter struct {
	Verbose bool
	NoColor bool
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(verbose, noColor bool) *Formatter {
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
	}
}

// FormatRequest formats an outgoing request for display.
func (f *Formatter) FormatRequest(method, url string, headers map[string]string, body string) string {
	var buf strings.Builder

	methodColor := color.New(color.FgBlue, color.Bold)
	if f.NoColor {
		methodColor.DisableColor()
	}

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n", methodColor.Sprint(method), url))

	if f.Verbose && len(headers) > 0 {
		buf.WriteString("  Headers:\n")
		for key, value := range headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n", key, value))
		}
	}

	if body != "" {
		buf.WriteString("  Body: " + formatJSONString(body) + "\n")
	}

	return buf.String()
}

// FormatResponse formats a successful response body for display.
func (f *Formatter) FormatResponse(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	return formatJSONString(string(body)) + "\n"
}

// FormatError formats an API error for display.
func (f *Formatter) FormatError(err error) string {
	statusColor := color.New(color.FgRed, color.Bold)
	if f.NoColor {
		statusColor.DisableColor()
	}

	apiErr, ok := err.(*rest.APIError)
	if !ok {
		return fmt.Sprintf("%s %v\n", statusColor.Sprint("✗ ERROR:"), err)
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("%s %d %s\n", statusColor.Sprint("✗ ERROR:"), apiErr.Status, apiErr.StatusText))
	buf.WriteString("  " + apiErr.Message + "\n")
	for _, detail := range apiErr.Details {
		buf.WriteString(fmt.Sprintf("    %s: %s\n", detail.Key, strings.Join(detail.Errors, ", ")))
	}
	return buf.String()
}

// formatJSONString re-indents a JSON payload; non-JSON input is returned
// unchanged.
func formatJSONString(s string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return s
	}
	return buf.String()
}
