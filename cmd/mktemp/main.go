package main

import (
	"os"

	"github.com/op/go-logging"

	"github.com/shini4i/mktemp/cmd/mktemp/command"
)

var version = "local"

func main() {
	opts := command.Options{
		Version:     version,
		InitLogging: initLogging,
	}

	if err := command.Execute(opts, nil); err != nil {
		os.Exit(1)
	}
}

// initLogging installs a leveled stderr backend, keeping stdout reserved
// for the generated paths and child command output.
func initLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{color}%{level:.4s}%{color:reset} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))

	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}

	logging.SetBackend(leveled)
}
