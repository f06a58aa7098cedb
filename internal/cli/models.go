package cli

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/atinyakov/fakeforge/internal/client/notify"
	"github.com/atinyakov/fakeforge/internal/client/panel"
)

func modelsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage data models",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			list, err := c.ListModels(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list models: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No models found")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPROPS\tCREATED")
			for _, m := range list {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", m.ID, m.Name, m.PropsCount, m.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	createCmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			m, err := c.CreateModel(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create model: %w", err)
			}
			notify.New(cmd.OutOrStdout()).Success("Created model %s: %s", m.ID, m.Name)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [model-id]",
		Short: "Delete a model and its properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			yes, _ := cmd.Flags().GetBool("yes")

			p := panel.New(args[0], "")
			p.OpenConfirmDelete()
			if !yes && !confirm(cmd, fmt.Sprintf("Delete model %s? [y/N] ", args[0])) {
				p.Close()
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			err = p.ConfirmDelete(func(id string) error {
				return c.DeleteModel(cmd.Context(), id)
			})
			if err != nil {
				return fmt.Errorf("failed to delete model: %w", err)
			}
			notify.New(cmd.OutOrStdout()).Success("Deleted model %s", args[0])
			return nil
		},
	}
	deleteCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	cmd.AddCommand(listCmd, createCmd, deleteCmd)
	return cmd
}

// confirm prints question and reads a y/yes answer from the command input.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprint(cmd.OutOrStdout(), question)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
