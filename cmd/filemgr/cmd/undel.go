package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/filemgr/errors"
	"github.com/jmgilman/go/filemgr/trash"
)

func newUndelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "undel [a|all|*|ELN|ELN-ELN|name...]",
		Aliases: []string{"untrash"},
		Short:   "Restore trashed files to their original location",
		Long: `Restore trashed files to the path recorded when they were trashed.
A file is never restored over something that already exists.

Without arguments an interactive picker is shown and offered again
until the trash can is empty or you quit.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return runUndel(a, args)
		},
	}
}

func runUndel(a *app, args []string) error {
	m, err := a.openTrash()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		sel, quit, err := trash.ParseSelectionArgs(args)
		if err != nil {
			return a.fail(err)
		}
		if quit || sel.Empty() {
			return nil
		}
		return a.untrash(m, sel)
	}

	var last error
	for {
		names, err := a.printList(m)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return last
		}
		sel, quit, err := a.pick("File(s) to be untrashed")
		if err != nil {
			a.printErr(err)
			last = err
			continue
		}
		if quit {
			return last
		}
		if sel.Empty() {
			continue
		}
		if err := a.untrash(m, sel); err != nil {
			if errors.IsFatal(err) {
				return err
			}
			last = err
		}
	}
}

func (a *app) untrash(m *trash.Manager, sel trash.Selection) error {
	report, err := m.Untrash(sel)
	return a.batch(report, err, trash.UntrashedStatus(report)...)
}
