package main

import (
	"errors"
	"os"

	"github.com/datalayer/copilot-lexical/extensions/launcher"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Flags struct {
	Runtime string
	Verbose bool
}

func main() {
	err := newCommand(run).Execute()
	if err != nil {
		logrus.Fatal(err)
	}
}

func newCommand(runFunc func(f *Flags, args []string)) *cobra.Command {
	f := new(Flags)

	command := &cobra.Command{
		Use:   "copilot-lexical [port] [directory]",
		Short: "start the lexical editor server",
		Long: "Change into directory (default: the parent of the install directory) and run\n" +
			"its serve.js under the runtime, passing port (default " + launcher.DefaultPort + ") as the only argument.\n\n" +
			"Use -- before a port that starts with a dash: copilot-lexical -- -1 ./app",
		Args: cobra.MaximumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			runFunc(f, args)
		},
	}

	command.Flags().StringVar(&f.Runtime, "runtime", launcher.DefaultRuntime, "Executable used to run serve.js, looked up in PATH.")
	command.Flags().BoolVarP(&f.Verbose, "verbose", "v", false, "Enable verbose mode.")
	return command
}

func run(f *Flags, args []string) {
	if f.Verbose {
		logrus.SetLevel(logrus.TraceLevel)
	}

	options, err := launcher.ParseArgs(args, launcher.DefaultDirectory)
	if err != nil {
		logrus.Fatal(err)
	}
	options.Runtime = f.Runtime

	err = launcher.Run(options)
	var status *launcher.ExitStatus
	if errors.As(err, &status) {
		os.Exit(status.Code)
	}
	if err != nil {
		logrus.Fatal(err)
	}
}
