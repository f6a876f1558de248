// Package cmd implements the filemgr command line: trash, undel, sort and
// ls verbs over the sorting and trash packages.
package cmd

import (
	"bufio"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/filemgr/config"
	"github.com/jmgilman/go/filemgr/errors"
	"github.com/jmgilman/go/filemgr/fs/billy"
	"github.com/jmgilman/go/filemgr/fs/core"
	"github.com/jmgilman/go/filemgr/logging"
	"github.com/jmgilman/go/filemgr/sorting"
	"github.com/jmgilman/go/filemgr/trash"
)

// app is the state shared by every verb of one invocation.
type app struct {
	cfgFile  string
	trashDir string
	logLevel string

	fsys   core.FS
	cfg    config.Config
	logger *logging.Logger
	sorter *sorting.Sorter
	styles styles

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// Execute runs the command line with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// ExitCode maps the error returned by Execute to a process exit status: 2
// when the command could not run at all (fatal errors such as an unusable
// trash or config), 1 when it ran but some items failed.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsFatal(err):
		return 2
	default:
		return 1
	}
}

func newRootCmd() *cobra.Command {
	a := &app{fsys: billy.NewLocal()}

	rootCmd := &cobra.Command{
		Use:   "filemgr",
		Short: "Sort directory listings and manage the trash can",
		Long: `filemgr orders directory listings by name, size, time, version,
extension, inode, owner or group, and moves files to and from a
freedesktop-compatible trash can.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/filemgr/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.trashDir, "trash-dir", "", "trash directory (overrides trash.dir)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newTrashCmd(a),
		newUndelCmd(a),
		newSortCmd(a),
		newLsCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.in = bufio.NewReader(cmd.InOrStdin())
	a.out = cmd.OutOrStdout()
	a.errOut = cmd.ErrOrStderr()
	a.styles = newStyles(a.out)

	if a.cfgFile == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return a.fail(err)
		}
		a.cfgFile = path
	}
	path, err := filepath.Abs(a.cfgFile)
	if err != nil {
		return a.fail(err)
	}
	a.cfgFile = path

	cfg, err := config.Load(a.fsys, a.cfgFile)
	if err != nil {
		return a.fail(err)
	}
	if a.trashDir != "" {
		cfg.Trash.Dir = a.trashDir
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg

	lc, err := cfg.LoggingConfig()
	if err != nil {
		return a.fail(err)
	}
	lc.Output = a.errOut
	a.logger = logging.New(lc)

	sc, err := cfg.SortConfig()
	if err != nil {
		return a.fail(err)
	}
	a.sorter = sorting.New(sc)
	return nil
}

func (a *app) openTrash() (*trash.Manager, error) {
	dir, err := a.cfg.TrashDir()
	if err != nil {
		return nil, a.fail(err)
	}
	m, err := trash.New(dir,
		trash.WithFS(a.fsys),
		trash.WithLogger(a.logger),
		trash.WithSorter(a.sorter),
	)
	if err != nil {
		return nil, a.fail(err)
	}
	return m, nil
}

// fail prints err and returns it so the process exits non-zero.
func (a *app) fail(err error) error {
	a.printErr(err)
	return err
}

func (a *app) printErr(err error) {
	writeLine(a.errOut, a.styles.err.Render(err.Error()))
}

func writeLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}

func init() {
	cobra.EnableCommandSorting = false
}
