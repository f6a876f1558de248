package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/filemgr/config"
	"github.com/jmgilman/go/filemgr/sorting"
)

func newSortCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sort [key|num] [rev]",
		Short: "Show or change the listing sort order",
		Long: `Show or change the order used by ls and the trash listing. The key is
given by name or number; "rev" toggles reverse order. The new order is
saved to the config file.

Keys: ` + keyList(),
		Args: cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSort(a, args)
		},
	}
}

func runSort(a *app, args []string) error {
	if len(args) > 0 {
		sc, err := sorting.Apply(a.sorter.Config(), args...)
		if err != nil {
			return a.fail(err)
		}
		if err := config.SaveSort(a.fsys, a.cfgFile, sc); err != nil {
			return a.fail(err)
		}
		a.sorter = sorting.New(sc)
		a.logger.Debug("sort order saved", "method", a.sorter.Method(), "path", a.cfgFile)
	}
	writeLine(a.out, a.styles.title.Render("Sorted by:")+" "+a.sorter.Method())
	return nil
}

func keyList() string {
	keys := make([]string, 0, len(sorting.Keys()))
	for _, k := range sorting.Keys() {
		keys = append(keys, fmt.Sprintf("%d=%s", int(k), k))
	}
	return strings.Join(keys, " ")
}
