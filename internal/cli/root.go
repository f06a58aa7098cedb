// Package cli implements the fakeforge command tree.
package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/atinyakov/fakeforge/internal/client/api"
	"github.com/atinyakov/fakeforge/internal/client/notify"
	"github.com/atinyakov/fakeforge/internal/generator"
)

// DefaultURL is the server address used when --url is not given.
const DefaultURL = "http://localhost:8080"

// app carries the state shared by all subcommands.
type app struct {
	baseURL string
	caFile  string

	client *api.Client
}

// api lazily builds the HTTP client from the persistent flags.
func (a *app) api() (*api.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	if a.caFile == "" {
		a.client = api.New(a.baseURL)
		return a.client, nil
	}
	c, err := api.NewTLS(a.baseURL, a.caFile)
	if err != nil {
		return nil, err
	}
	a.client = c
	return c, nil
}

// NewRootCmd builds the fakeforge command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "fakeforge",
		Short:   "fakeforge - design data models and download fake records",
		Version: version,
		Long: `fakeforge manages data models on a fakeforge server. Each model has
properties bound to fake-value operations; generating a model downloads
a JSON file of synthetic records named after the model.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&a.baseURL, "url", DefaultURL, "server base URL")
	rootCmd.PersistentFlags().StringVar(&a.caFile, "ca", "", "path to CA cert for https servers")

	rootCmd.AddCommand(modelsCmd(a))
	rootCmd.AddCommand(propsCmd(a))
	rootCmd.AddCommand(generateCmd(a))
	rootCmd.AddCommand(offlineCmd())
	rootCmd.AddCommand(providersCmd(a))
	rootCmd.AddCommand(shellCmd(a))

	return rootCmd
}

// isWarning reports whether err should be shown as a warning rather than
// failing the command.
func isWarning(err error) bool {
	var warn *api.WarningError
	return errors.As(err, &warn) || generator.IsValidation(err)
}

// report prints err as a warning when it is one and returns any other error.
func report(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if isWarning(err) {
		notify.New(w).Warning(err.Error())
		return nil
	}
	return err
}
