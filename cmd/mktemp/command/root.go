package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shini4i/mktemp"
	"github.com/shini4i/mktemp/internal/helpers"
	"github.com/shini4i/mktemp/internal/ports"
)

var log = logging.MustGetLogger("mktemp")

// pathPlaceholder is replaced with the temporary path in run-mode arguments.
const pathPlaceholder = "{}"

// Options describes the collaborators and defaults required to build the CLI.
type Options struct {
	Version     string
	FS          afero.Fs
	CmdRunner   ports.CmdRunner
	Out         io.Writer
	ErrOut      io.Writer
	InitLogging func(debug bool)
}

// Execute builds and runs the Cobra command tree using the supplied options.
func Execute(opts Options, args []string) error {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}

	root := newRootCommand(opts)

	if args != nil {
		root.SetArgs(args)
	}

	return root.Execute()
}

// newRootCommand builds the root Cobra command with global flags and hooks.
func newRootCommand(opts Options) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:          "mktemp",
		Short:        "Create temporary files and directories with guaranteed cleanup",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.InitLogging != nil {
				opts.InitLogging(debug)
			}
		},
	}

	root.Version = opts.Version
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode")

	root.AddCommand(newCreateCommand(opts))
	root.AddCommand(newRunCommand(opts))

	return root
}

type entryFlags struct {
	directory bool
	prefix    string
	parent    string
}

func addEntryFlags(cmd *cobra.Command, flags *entryFlags) {
	cmd.Flags().BoolVarP(&flags.directory, "directory", "d", false, "Create a directory instead of a file")
	cmd.Flags().StringVarP(&flags.prefix, "prefix", "p", "", "Prefix for the generated name")
	cmd.Flags().StringVar(&flags.parent, "parent", helpers.GetEnv("TMPDIR", ""), "Parent directory (defaults to the system temp directory)")
}

func (f entryFlags) create(fs afero.Fs) (*mktemp.Temp, error) {
	options := []mktemp.Option{
		mktemp.WithFs(fs),
		mktemp.WithParent(f.parent),
		mktemp.WithPrefix(f.prefix),
	}

	if f.directory {
		return mktemp.NewDir(options...)
	}

	return mktemp.NewFile(options...)
}

// newCreateCommand constructs the subcommand that creates a temporary entry
// and hands ownership of it to the caller.
func newCreateCommand(opts Options) *cobra.Command {
	flags := entryFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a temporary file or directory and print its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			temp, err := flags.create(opts.FS)
			if err != nil {
				return err
			}

			// The printed path is owned by the caller from here on.
			temp.Release()

			_, err = fmt.Fprintln(opts.Out, temp.Path())
			return err
		},
	}

	addEntryFlags(cmd, &flags)

	return cmd
}

// newRunCommand constructs the subcommand that scopes a temporary entry to
// a single child command invocation.
func newRunCommand(opts Options) *cobra.Command {
	flags := entryFlags{}

	cmd := &cobra.Command{
		Use:   "run -- <command> [args...]",
		Short: "Run a command against a temporary path, removing it afterwards",
		Long: `Create a temporary file or directory, run the given command, and remove
the entry once the command finishes, whether it succeeded or not.

Occurrences of {} in the command arguments are replaced with the temporary
path, which is also exported to the child process as MKTEMP_PATH.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			temp, err := flags.create(opts.FS)
			if err != nil {
				return err
			}

			defer func() {
				if closeErr := temp.Close(); closeErr != nil {
					log.Warningf("Could not clean up [%s]: %s", temp.Path(), closeErr)
				}
			}()

			return runChild(opts, temp, args)
		},
	}

	addEntryFlags(cmd, &flags)

	return cmd
}

// runChild executes the child command with the temporary path substituted
// into its arguments and relays the captured output.
func runChild(opts Options, temp *mktemp.Temp, args []string) error {
	runner := opts.CmdRunner
	if runner == nil {
		runner = &ports.RealCmdRunner{Env: []string{"MKTEMP_PATH=" + temp.Path()}}
	}

	childArgs := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		childArgs = append(childArgs, strings.ReplaceAll(arg, pathPlaceholder, temp.Path()))
	}

	log.Debugf("===> Running [%s] with temp path [%s]", cyan(args[0]), cyan(temp.Path()))

	stdout, stderr, err := runner.Run(args[0], childArgs...)

	if stdout != "" {
		fmt.Fprint(opts.Out, stdout)
	}
	if stderr != "" {
		fmt.Fprint(opts.ErrOut, stderr)
	}

	if err != nil {
		log.Errorf("Command [%s] failed: %s", red(args[0]), err)
		return err
	}

	return nil
}
