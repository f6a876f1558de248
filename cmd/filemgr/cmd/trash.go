package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/filemgr/trash"
)

func newTrashCmd(a *app) *cobra.Command {
	trashCmd := &cobra.Command{
		Use:   "trash [path...]",
		Short: "Move files to the trash can",
		Long: `Move files and directories to the trash can. Each item keeps a
.trashinfo record of where it came from so it can be restored with undel.

Use the list, del and clear subcommands to inspect and manage the
trash can. To trash a file literally named like a subcommand, prefix
it with "./".`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runList(a)
			}
			return runTrash(a, args)
		},
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List trashed files",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(a)
		},
	}

	delCmd := &cobra.Command{
		Use:   "del [a|all|*|ELN|ELN-ELN|name...]",
		Short: "Permanently remove files from the trash can",
		Long: `Permanently remove trashed files. Files are picked by list position
(ELN), by range, by trashed name, or all at once. Without arguments an
interactive picker is shown.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return runDel(a, args)
		},
	}

	clearCmd := &cobra.Command{
		Use:     "clear",
		Aliases: []string{"empty"},
		Short:   "Permanently remove everything in the trash can",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runClear(a)
		},
	}

	trashCmd.AddCommand(listCmd, delCmd, clearCmd)
	return trashCmd
}

func runTrash(a *app, paths []string) error {
	m, err := a.openTrash()
	if err != nil {
		return err
	}
	report, err := m.Trash(paths...)
	return a.batch(report, err, trash.TrashedStatus(report)...)
}

func runList(a *app) error {
	m, err := a.openTrash()
	if err != nil {
		return err
	}
	names, err := a.printList(m)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	writeLine(a.out, a.styles.muted.Render(fmt.Sprintf("%d total trashed file(s)", len(names))))
	return nil
}

func runDel(a *app, args []string) error {
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
		return a.remove(m, sel)
	}

	names, err := a.printList(m)
	if err != nil || len(names) == 0 {
		return err
	}
	sel, quit, err := a.pick("File(s) to be removed")
	if err != nil {
		return a.fail(err)
	}
	if quit || sel.Empty() {
		return nil
	}
	return a.remove(m, sel)
}

func (a *app) remove(m *trash.Manager, sel trash.Selection) error {
	report, err := m.Remove(sel)
	return a.batch(report, err, trash.RemovedStatus(report)...)
}

func runClear(a *app) error {
	m, err := a.openTrash()
	if err != nil {
		return err
	}
	report, err := m.Clear()
	return a.batch(report, err, trash.ClearedStatus(report))
}

// printList writes the numbered trash listing and returns the names in
// listing order.
func (a *app) printList(m *trash.Manager) ([]string, error) {
	names, err := m.List()
	if err != nil {
		return nil, a.fail(err)
	}
	if len(names) == 0 {
		writeLine(a.out, trash.NoTrashedFiles)
		return nil, nil
	}
	for i, name := range names {
		writeLine(a.out, a.styles.eln.Render(fmt.Sprint(i+1))+" "+name)
	}
	return names, nil
}

// pick prompts for a selection on the input stream. End of input counts
// as quitting.
func (a *app) pick(action string) (trash.Selection, bool, error) {
	writeLine(a.out, a.styles.muted.Render("Enter 'q' to quit"))
	_, _ = io.WriteString(a.out, a.styles.prompt.Render(action+" (ex: 1 2-6, or *): "))

	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
		writeLine(a.out, "")
		return trash.Selection{}, true, nil
	}
	return trash.ParseSelection(line)
}

// batch prints one line per failed item followed by the status lines. An
// error that aborted the batch before any item ran is printed on its own.
func (a *app) batch(report trash.Report, err error, status ...string) error {
	if err != nil && len(report.Failed) == 0 {
		return a.fail(err)
	}
	for _, f := range report.Failed {
		a.printErr(f.Err)
	}
	a.printStatus(status...)
	return err
}

func (a *app) printStatus(lines ...string) {
	for i, line := range lines {
		if i == 0 {
			line = a.styles.ok.Render(line)
		} else {
			line = a.styles.muted.Render(line)
		}
		writeLine(a.out, line)
	}
}
