package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/atinyakov/fakeforge/internal/client/notify"
	"github.com/atinyakov/fakeforge/internal/models"
)

func propsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "props",
		Aliases: []string{"properties"},
		Short:   "Manage the properties of a model",
	}

	listCmd := &cobra.Command{
		Use:   "list [model-id]",
		Short: "List properties in insertion order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			props, err := c.ListProperties(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list properties: %w", err)
			}
			printProperties(cmd, props)
			return nil
		},
	}

	countCmd := &cobra.Command{
		Use:   "count [model-id]",
		Short: "Show how many properties a model has",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			n, err := c.CountProperties(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to count properties: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [model-id] [prop-name]",
		Short: "Add an unconfigured property",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			p, err := c.AddProperty(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add property: %w", err)
			}
			notify.New(cmd.OutOrStdout()).Success("Added property %q at position %d", p.PropName, p.Position)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set [model-id] [prop-name] [group] [func]",
		Short: "Bind a property to a provider operation",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			if err := c.ConfigureProperty(cmd.Context(), args[0], args[1], args[2], args[3]); err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			notify.New(cmd.OutOrStdout()).Success("Property %q uses %s.%s", args[1], args[2], args[3])
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:     "rm [model-id] [prop-name]",
		Aliases: []string{"remove"},
		Short:   "Remove a property",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			if err := c.RemoveProperty(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to remove property: %w", err)
			}
			notify.New(cmd.OutOrStdout()).Success("Removed property %q", args[1])
			return nil
		},
	}

	cmd.AddCommand(listCmd, countCmd, addCmd, setCmd, rmCmd)
	return cmd
}

func printProperties(cmd *cobra.Command, props []models.Property) {
	out := cmd.OutOrStdout()
	if len(props) == 0 {
		fmt.Fprintln(out, "No properties")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tOPERATION")
	for _, p := range props {
		op := "-"
		if p.Configured() {
			op = p.GroupName + "." + p.Func
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.Position, p.PropName, op)
	}
	w.Flush()
}
