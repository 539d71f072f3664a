package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/javajoker/storefront-admin/cmd/adminctl/output"
	"github.com/javajoker/storefront-admin/cmd/adminctl/tui"
	"github.com/javajoker/storefront-admin/internal/collaborator"
	"github.com/javajoker/storefront-admin/internal/config"
	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/i18n"
	"github.com/javajoker/storefront-admin/internal/services"
	"github.com/javajoker/storefront-admin/internal/utils"
)

// field binds one form input to a command-line flag.
type field[F any] struct {
	flag  string
	usage string
	value func(form *F) *string
}

// entity describes how one page is driven and printed from the CLI.
type entity[R any, F any] struct {
	name    string
	page    func(ws *services.Workspace) *crud.Controller[R, F]
	fields  []field[F]
	headers []string
	row     func(record R) []string
}

func newEntityCommand[R any, F any](opts *options, e entity[R, F]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   e.name,
		Short: fmt.Sprintf("Manage %s", e.name),
	}

	cmd.AddCommand(
		e.listCmd(opts),
		e.createCmd(opts),
		e.updateCmd(opts),
		e.deleteCmd(opts),
	)
	return cmd
}

func (e entity[R, F]) listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", e.name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := e.controller(opts)
			if err != nil {
				return err
			}
			if err := ctl.Load(cmd.Context()); err != nil {
				return err
			}
			return e.print(opts, ctl.View().Records)
		},
	}
}

func (e entity[R, F]) createCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a record in %s", e.name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := e.controller(opts)
			if err != nil {
				return err
			}

			var form F
			for _, f := range e.fields {
				v, _ := cmd.Flags().GetString(f.flag)
				*f.value(&form) = v
			}
			ctl.SetForm(form)

			if err := ctl.Create(cmd.Context()); err != nil {
				return err
			}
			if !opts.jsonOutput {
				output.Success("Created %s", ctl.Entity())
			}
			return e.print(opts, ctl.View().Records)
		},
	}
	e.registerFields(cmd)
	return cmd
}

func (e entity[R, F]) updateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: fmt.Sprintf("Update a record in %s; only the given flags change", e.name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctl, err := e.controller(opts)
			if err != nil {
				return err
			}
			if err := ctl.Load(cmd.Context()); err != nil {
				return err
			}
			if err := ctl.BeginEdit(id); err != nil {
				return err
			}

			form := ctl.View().Form
			for _, f := range e.fields {
				if cmd.Flags().Changed(f.flag) {
					v, _ := cmd.Flags().GetString(f.flag)
					*f.value(&form) = v
				}
			}
			ctl.SetForm(form)

			if err := ctl.Update(cmd.Context()); err != nil {
				return err
			}
			if !opts.jsonOutput {
				output.Success("Updated %s #%d", ctl.Entity(), id)
			}
			return e.print(opts, ctl.View().Records)
		},
	}
	e.registerFields(cmd)
	return cmd
}

func (e entity[R, F]) deleteCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: fmt.Sprintf("Delete a record from %s", e.name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctl, err := e.controller(opts)
			if err != nil {
				return err
			}

			var confirm crud.Confirmer = crud.Answer(true)
			if !opts.yes {
				confirm = tui.Confirmer{
					Prompt: func(req crud.DeleteRequest) string {
						return i18n.T(opts.lang, i18n.KeyConfirm, utils.EntityLabel(opts.lang, req.Entity))
					},
					Output: cmd.ErrOrStderr(),
				}
			}

			err = ctl.Delete(cmd.Context(), id, confirm)
			switch {
			case errors.Is(err, crud.ErrCancelled):
				output.Warning("%s", utils.Message(opts.lang, err))
				return nil
			case err != nil:
				return err
			}

			if !opts.jsonOutput {
				output.Success("Deleted %s #%d", ctl.Entity(), id)
			}
			return e.print(opts, ctl.View().Records)
		},
	}
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

func (e entity[R, F]) registerFields(cmd *cobra.Command) {
	for _, f := range e.fields {
		cmd.Flags().String(f.flag, "", f.usage)
	}
}

func (e entity[R, F]) controller(opts *options) (*crud.Controller[R, F], error) {
	client, err := collaborator.New(config.CollaboratorConfig{
		BaseURL: opts.baseURL,
		Timeout: opts.timeout,
	})
	if err != nil {
		return nil, err
	}
	return e.page(services.NewWorkspace(client, nil)), nil
}

func (e entity[R, F]) print(opts *options, records []R) error {
	if opts.jsonOutput {
		return output.JSON(records)
	}

	output.Section(fmt.Sprintf("%s (%d)", e.name, len(records)))
	if len(records) == 0 {
		output.Muted("No %s found", e.name)
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, e.row(r))
	}
	output.Table(e.headers, rows)
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q: must be a positive integer", arg)
	}
	return id, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
