package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atinyakov/fakeforge/internal/client/download"
	"github.com/atinyakov/fakeforge/internal/client/notify"
	"github.com/atinyakov/fakeforge/internal/faker"
	"github.com/atinyakov/fakeforge/internal/generator"
	"github.com/atinyakov/fakeforge/internal/schema"
)

func generateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [model-id]",
		Short: "Generate records for a model and save them to disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			dir, _ := cmd.Flags().GetString("out")

			c, err := a.api()
			if err != nil {
				return err
			}
			f, err := c.Generate(cmd.Context(), args[0], count)
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return save(cmd, dir, f)
		},
	}
	cmd.Flags().IntP("count", "n", generator.DefaultCount, "number of records (1-1000)")
	cmd.Flags().StringP("out", "o", ".", "directory to save the file into")
	return cmd
}

func offlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offline [schema.yaml]",
		Short: "Generate records from a local YAML model without a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			dir, _ := cmd.Flags().GetString("out")
			seed, _ := cmd.Flags().GetInt64("seed")

			s, err := schema.Load(args[0])
			if err != nil {
				return err
			}
			gen := generator.New(faker.NewDefault(seed))
			f, err := gen.Generate(s.Name, s.Properties, generator.ClampCount(count))
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return save(cmd, dir, f)
		},
	}
	cmd.Flags().IntP("count", "n", generator.DefaultCount, "number of records (1-1000)")
	cmd.Flags().StringP("out", "o", ".", "directory to save the file into")
	cmd.Flags().Int64("seed", 0, "seed for fake values (0 = random)")
	return cmd
}

func save(cmd *cobra.Command, dir string, f *generator.File) error {
	path, err := download.Save(dir, f)
	if err != nil {
		return err
	}
	notify.New(cmd.OutOrStdout()).Success("Saved %s (%d bytes)", path, len(f.Data))
	return nil
}

func providersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the provider operations properties can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			groups, err := c.Providers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list providers: %w", err)
			}
			printProviders(cmd.OutOrStdout(), groups)
			return nil
		},
	}
}

func printProviders(out io.Writer, groups map[string][]string) {
	names := make([]string, 0, len(groups))
	for g := range groups {
		names = append(names, g)
	}
	sort.Strings(names)
	for _, g := range names {
		fns := append([]string(nil), groups[g]...)
		sort.Strings(fns)
		fmt.Fprintf(out, "%s: %s\n", g, strings.Join(fns, ", "))
	}
}
