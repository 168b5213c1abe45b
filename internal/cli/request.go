package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/restbase/restbase/config"
	"github.com/restbase/restbase/internal/output"
	"github.com/restbase/restbase/rest"
)

// newRequestCmd builds one of the get/post/put/delete subcommands; they
// share flags and the execution path, differing only in method.
func newRequestCmd(method string) *cobra.Command {
	use := strings.ToLower(method)
	cmd := &cobra.Command{
		Use:   use + " URL",
		Short: fmt.Sprintf("Make a %s request to the specified URL", method),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runRequest(cmd, method, args[0]); err != nil {
				os.Exit(1)
			}
		},
	}
	addRequestFlags(cmd)
	if method == "POST" || method == "PUT" {
		cmd.Flags().StringP("data", "d", "", "JSON request body")
	}
	return cmd
}

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	cmd.Flags().StringArrayP("query", "q", []string{}, "Query parameters as key=value (can be used multiple times)")
	cmd.Flags().String("extract", "", "gjson path to extract from the response body")
	cmd.Flags().String("profile", "", "YAML client profile to load")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

func runRequest(cmd *cobra.Command, method, rawURL string) error {
	data, _ := cmd.Flags().GetString("data")
	extract, _ := cmd.Flags().GetString("extract")

	// With a profile the URL argument is a path against the profile's
	// base; otherwise the argument carries the base itself.
	profile, _ := cmd.Flags().GetString("profile")
	path := rawURL
	var extra []rest.Option
	if profile == "" {
		baseURL, p := parseURL(rawURL)
		path = p
		extra = append(extra, rest.WithBaseURL(baseURL))
	}

	client, formatter, err := buildClient(cmd, extra...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	opts := rest.RequestOptions{
		Query: queryFlags(cmd),
	}
	if data != "" {
		opts.Body = json.RawMessage(data)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Print(formatter.FormatRequest(method, rest.JoinURIPaths(client.BaseURL(), path), headerFlags(cmd), data))

	var body []byte
	if err := client.SendRequest(ctx, method, path, opts, &body); err != nil {
		fmt.Fprint(os.Stderr, formatter.FormatError(err))
		return err
	}

	if extract != "" {
		fmt.Println(gjson.GetBytes(body, extract).String())
		return nil
	}
	fmt.Print(formatter.FormatResponse(body))
	return nil
}

// buildClient assembles a client from the profile and flags, plus any extra
// options. The returned formatter honors --no-color and non-terminal output.
func buildClient(cmd *cobra.Command, extra ...rest.Option) (*rest.Client, *output.Formatter, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	profile, _ := cmd.Flags().GetString("profile")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	if !noColor && !isatty.IsTerminal(os.Stdout.Fd()) {
		noColor = true
	}

	var opts []rest.Option
	if profile != "" {
		cfg, err := config.Load(profile)
		if err != nil {
			return nil, nil, err
		}
		opts = cfg.ClientOptions()
	}
	if cmd.Flags().Changed("timeout") {
		opts = append(opts, rest.WithTimeout(timeout))
	}
	for key, value := range headerFlags(cmd) {
		opts = append(opts, rest.WithHeader(key, value))
	}
	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, rest.WithLogger(rest.NewSlogLogger(slog.New(handler))))
	}
	opts = append(opts, extra...)

	return rest.New(opts...), output.NewFormatter(verbose, noColor), nil
}

func headerFlags(cmd *cobra.Command) map[string]string {
	raw, _ := cmd.Flags().GetStringArray("header")
	headers := make(map[string]string, len(raw))
	for _, header := range raw {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) == 2 {
			headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
	return headers
}

func queryFlags(cmd *cobra.Command) map[string]string {
	raw, _ := cmd.Flags().GetStringArray("query")
	params := make(map[string]string, len(raw))
	for _, pair := range raw {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 {
			params[parts[0]] = parts[1]
		}
	}
	return params
}
