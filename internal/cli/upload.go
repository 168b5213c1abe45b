package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/restbase/restbase/rest"
)

var uploadCmd = &cobra.Command{
	Use:   "upload URL field=path [field=path...]",
	Short: "Upload files as a multipart form POST",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runUpload(cmd, args[0], args[1:]); err != nil {
			os.Exit(1)
		}
	},
}

func runUpload(cmd *cobra.Command, rawURL string, fileArgs []string) error {
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

	files := make(map[string]rest.File, len(fileArgs))
	var closers []*os.File
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	for _, arg := range fileArgs {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			fmt.Fprintf(os.Stderr, "Error: invalid file argument %q, want field=path\n", arg)
			return fmt.Errorf("invalid file argument %q", arg)
		}
		f, err := os.Open(parts[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		closers = append(closers, f)
		files[parts[0]] = rest.File{Name: filepath.Base(parts[1]), Reader: f}
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Print(formatter.FormatRequest("POST", rest.JoinURIPaths(client.BaseURL(), path), headerFlags(cmd), ""))

	var body []byte
	err = client.SendFiles(ctx, path, rest.FileRequestOptions{
		Files: files,
		Query: queryFlags(cmd),
	}, &body)
	if err != nil {
		fmt.Fprint(os.Stderr, formatter.FormatError(err))
		return err
	}

	fmt.Print(formatter.FormatResponse(body))
	return nil
}

func init() {
	addRequestFlags(uploadCmd)
}
