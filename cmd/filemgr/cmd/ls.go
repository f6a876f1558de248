package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/filemgr/sorting"
)

func newLsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [dir]",
		Short: "List a directory in the current sort order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runLs(a, dir)
		},
	}
}

func runLs(a *app, dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return a.fail(err)
	}
	entries, err := sorting.Scan(a.fsys, abs)
	if err != nil {
		return a.fail(err)
	}
	a.sorter.Sort(entries)
	if method := a.sorter.MethodFor(entries); method != a.sorter.Method() {
		writeLine(a.errOut, a.styles.muted.Render("Sorted by: "+method))
	}

	for _, e := range entries {
		writeLine(a.out, a.entryLine(e))
	}
	return nil
}

func (a *app) entryLine(e sorting.Entry) string {
	switch {
	case e.Type == sorting.TypeSymlink:
		return a.styles.link.Render(e.Name)
	case e.IsDir:
		return a.styles.dir.Render(e.Name + "/")
	default:
		return e.Name
	}
}
