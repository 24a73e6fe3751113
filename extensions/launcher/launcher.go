// Package launcher changes into a project directory and runs its serve.js
// entry script under an external runtime, relaying the exit status.
package launcher

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	E "github.com/sagernet/sing/common/exceptions"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPort    = "3000"
	DefaultRuntime = "node"
	EntryScript    = "serve.js"
)

// Options describes one launch. Runtime is the executable that runs the
// entry script, looked up in PATH when it has no path separator.
type Options struct {
	Port      string
	Directory string
	Runtime   string

	// nil streams are inherited from the launcher
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultDirectory returns the directory one level above the one holding the
// running executable.
func DefaultDirectory() (string, error) {
	executable, err := os.Executable()
	if err != nil {
		return "", E.Cause(err, "locate executable")
	}
	return filepath.Dir(filepath.Dir(executable)), nil
}

// ParseArgs resolves the port and directory from positional arguments.
// defaultDirectory is consulted only when no directory is given.
func ParseArgs(args []string, defaultDirectory func() (string, error)) (*Options, error) {
	options := &Options{
		Port:    DefaultPort,
		Runtime: DefaultRuntime,
	}
	if len(args) > 0 {
		options.Port = args[0]
	}
	if len(args) > 1 {
		directory, err := filepath.Abs(args[1])
		if err != nil {
			return nil, err
		}
		options.Directory = directory
	} else {
		directory, err := defaultDirectory()
		if err != nil {
			return nil, err
		}
		options.Directory = directory
	}
	return options, nil
}

// Command returns the argv used to start the entry script.
func (o *Options) Command() []string {
	return []string{o.Runtime, filepath.Join(o.Directory, EntryScript), o.Port}
}

// Run changes into the project directory, starts the entry script and
// blocks until it exits.
func Run(options *Options) error {
	if options.Runtime == "" {
		return E.New("missing runtime")
	}

	err := os.Chdir(options.Directory)
	if err != nil {
		return &DirectoryError{Path: options.Directory, Err: err}
	}

	argv := options.Command()
	logrus.Trace("port: ", options.Port)
	logrus.Trace("directory: ", options.Directory)
	logrus.Debug("exec ", argv)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = options.Stdin
	cmd.Stdout = options.Stdout
	cmd.Stderr = options.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err = cmd.Start()
	if err != nil {
		return &ChildStartError{Command: argv, Err: err}
	}

	err = cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitStatusOf(exitErr)
	}
	return err
}
