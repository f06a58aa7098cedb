package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atinyakov/fakeforge/internal/client/api"
	"github.com/atinyakov/fakeforge/internal/client/download"
	"github.com/atinyakov/fakeforge/internal/client/notify"
	"github.com/atinyakov/fakeforge/internal/client/panel"
)

const shellHelp = `Available commands:
  models                      list models
  new <name>                  create a model
  open <model-id>             open a model panel
  props                       list properties of the open model
  add                         add a property (asks for the name)
  set <prop> <group> <func>   bind a property to a provider operation
  rm <prop>                   remove a property
  amount <n>                  set how many records gen produces (1-1000)
  gen                         generate and save records
  delete                      delete the open model (asks to confirm)
  close                       close the open model
  providers                   list provider operations
  exit`

func shellCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("out")
			c, err := a.api()
			if err != nil {
				return err
			}
			sh := &shell{
				client: c,
				out:    cmd.OutOrStdout(),
				notify: notify.New(cmd.OutOrStdout()),
				dir:    dir,
			}
			return sh.run(cmd.Context(), cmd.InOrStdin())
		},
	}
	cmd.Flags().StringP("out", "o", ".", "directory generated files are saved into")
	return cmd
}

// shell is the interactive loop. At most one model panel is open at a time.
type shell struct {
	client *api.Client
	out    io.Writer
	notify *notify.Notifier
	dir    string

	panel *panel.Panel
}

func (s *shell) prompt() string {
	switch {
	case s.panel == nil:
		return "fakeforge> "
	case s.panel.Modal() == panel.ModalAddingProperty:
		return "property name> "
	case s.panel.Modal() == panel.ModalConfirmingDelete:
		return fmt.Sprintf("delete %s? [y/N] ", s.panel.ModelName)
	default:
		return fmt.Sprintf("fakeforge[%s]> ", s.panel.ModelName)
	}
}

func (s *shell) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, s.prompt())
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		if s.panel != nil && s.panel.Modal() != panel.ModalNone {
			s.dialog(ctx, line)
			continue
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			fmt.Fprintln(s.out, "Bye")
			return nil
		}
		if err := s.exec(ctx, args); err != nil {
			if isWarning(err) {
				s.notify.Warning(err.Error())
			} else {
				s.notify.Error(err)
			}
		}
	}
}

// dialog feeds a line to the open dialog of the current panel.
func (s *shell) dialog(ctx context.Context, line string) {
	switch s.panel.Modal() {
	case panel.ModalConfirmingDelete:
		answer := strings.ToLower(line)
		if answer != "y" && answer != "yes" {
			s.panel.Close()
			fmt.Fprintln(s.out, "Cancelled")
			return
		}
		name := s.panel.ModelName
		err := s.panel.ConfirmDelete(func(id string) error {
			return s.client.DeleteModel(ctx, id)
		})
		if err != nil {
			s.notify.Error(err)
			return
		}
		s.panel = nil
		s.notify.Success("Deleted model %s", name)

	case panel.ModalAddingProperty:
		if line == "/cancel" {
			s.panel.Close()
			fmt.Fprintln(s.out, "Cancelled")
			return
		}
		err := s.panel.SubmitProperty(line, func(modelID, propName string) error {
			_, err := s.client.AddProperty(ctx, modelID, propName)
			return err
		})
		switch {
		case errors.Is(err, panel.ErrEmptyPropName):
			s.notify.Warning(err.Error() + " (type /cancel to close)")
		case err != nil:
			s.notify.Error(err)
		default:
			s.notify.Success("Added property %q", line)
		}
	}
}

var errNoPanel = errors.New("no model is open, use: open <model-id>")

var panelCommands = map[string]bool{
	"props": true, "add": true, "set": true, "rm": true,
	"amount": true, "gen": true, "delete": true,
}

func (s *shell) exec(ctx context.Context, args []string) error {
	switch args[0] {
	case "help":
		fmt.Fprintln(s.out, shellHelp)

	case "models":
		list, err := s.client.ListModels(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(s.out, "No models found")
		}
		for _, m := range list {
			fmt.Fprintf(s.out, "%s  %s (%d props)\n", m.ID, m.Name, m.PropsCount)
		}

	case "new":
		if len(args) < 2 {
			fmt.Fprintln(s.out, "Usage: new <name>")
			return nil
		}
		m, err := s.client.CreateModel(ctx, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		s.panel = panel.New(m.ID, m.Name)
		s.notify.Success("Created model %s: %s", m.ID, m.Name)

	case "open":
		if len(args) < 2 {
			fmt.Fprintln(s.out, "Usage: open <model-id>")
			return nil
		}
		m, err := s.client.GetModel(ctx, args[1])
		if err != nil {
			return err
		}
		s.panel = panel.New(m.ID, m.Name)

	case "close":
		s.panel = nil

	case "providers":
		groups, err := s.client.Providers(ctx)
		if err != nil {
			return err
		}
		printProviders(s.out, groups)

	default:
		return s.execPanel(ctx, args)
	}
	return nil
}

// execPanel runs commands that act on the open model.
func (s *shell) execPanel(ctx context.Context, args []string) error {
	if !panelCommands[args[0]] {
		fmt.Fprintln(s.out, "Unknown command. Type 'help' for a list of commands.")
		return nil
	}
	if s.panel == nil {
		return errNoPanel
	}
	p := s.panel

	switch args[0] {
	case "props":
		props, err := s.client.ListProperties(ctx, p.ModelID)
		if err != nil {
			return err
		}
		if len(props) == 0 {
			fmt.Fprintln(s.out, "No properties")
		}
		for _, prop := range props {
			op := "-"
			if prop.Configured() {
				op = prop.GroupName + "." + prop.Func
			}
			fmt.Fprintf(s.out, "%d  %s  %s\n", prop.Position, prop.PropName, op)
		}

	case "add":
		p.OpenAddProperty()

	case "set":
		if len(args) < 4 {
			fmt.Fprintln(s.out, "Usage: set <prop> <group> <func>")
			return nil
		}
		if err := s.client.ConfigureProperty(ctx, p.ModelID, args[1], args[2], args[3]); err != nil {
			return err
		}
		s.notify.Success("Property %q uses %s.%s", args[1], args[2], args[3])

	case "rm":
		if len(args) < 2 {
			fmt.Fprintln(s.out, "Usage: rm <prop>")
			return nil
		}
		if err := s.client.RemoveProperty(ctx, p.ModelID, args[1]); err != nil {
			return err
		}
		s.notify.Success("Removed property %q", args[1])

	case "amount":
		if len(args) < 2 {
			fmt.Fprintf(s.out, "Amount: %d\n", p.Amount())
			return nil
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("amount must be a number: %w", err)
		}
		fmt.Fprintf(s.out, "Amount: %d\n", p.SetAmount(n))

	case "gen":
		f, err := s.client.Generate(ctx, p.ModelID, p.Amount())
		if err != nil {
			return err
		}
		path, err := download.Save(s.dir, f)
		if err != nil {
			return err
		}
		s.notify.Success("Saved %s (%d bytes)", path, len(f.Data))

	case "delete":
		p.OpenConfirmDelete()
	}
	return nil
}
