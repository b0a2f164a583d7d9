package main

import (
	"fmt"
	"io"
	"os"

	"prepare_bcdi_notebook/cfg"
	"prepare_bcdi_notebook/cli"
	"prepare_bcdi_notebook/notebook"
	"prepare_bcdi_notebook/provision"
	"prepare_bcdi_notebook/util/logger"
	"prepare_bcdi_notebook/util/tw"

	"github.com/adampresley/sigint"
	"github.com/cockroachdb/errors"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

// version represents the program version
const version = "v1.0.0"

func main() {
	// Init logger
	log := logger.New(logrus.InfoLevel)

	sigint.ListenForSIGINT(func() {
		log.Warn("Interrupted")
		os.Exit(130)
	})

	if code := run(log, os.Args[1:], os.Stdout, os.Stdin); code != 0 {
		os.Exit(code)
	}
}

// run copies notebook template to destinations given in command line arguments <args> and returns exit code.
//
// Panics on errors which terminate the run.
func run(log *logrus.Logger, args []string, stdout io.Writer, stdin io.Reader) int {
	// Parse command line arguments
	log.Debug("Parsing command line arguments")
	flags, err := cli.Parse(args)
	if flags.Version {
		fmt.Fprintln(stdout, version)
		return 0
	}
	if cli.IsErrOfType(err, goFlags.ErrHelp) {
		// Help message will be printed by go-flags
		return 0
	}
	if err != nil {
		log.Panic(err)
	}
	log.SetLevel(flags.LogLevel)

	if flags.InitCfg {
		if err := cfg.WriteDefault(flags.ProgramCfgPath); err != nil {
			log.Panic(err)
		}
		log.Infof("Default config is written to %v, please verify it and start this program again", flags.ProgramCfgPath)
		return 0
	}

	// Read program config
	root, err := cfg.Init(log, flags.ProgramCfgPath)
	if err != nil {
		log.Panic(err)
	}
	if root, err = cfg.WithTemplate(root, cfg.Template{Path: flags.TemplatePath}); err != nil {
		log.Panic(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Panic(errors.Wrap(err, "Get working directory"))
	}
	log.Debugf("Working directory: %v", cwd)

	// Copy template to every destination
	provisionRepo := provision.NewRepo(log, root, stdout, stdin, cwd)
	results, err := provisionRepo.Run(flags.Destinations, func() (notebook.Source, error) {
		return notebook.Open(log, root.Template, cwd)
	})
	if root.General.PrintSummary {
		provisionRepo.Summarize(tw.New(), results)
	}
	if err != nil {
		log.Panic(err)
	}

	if failed := provision.FailedOnly(results); len(failed) > 0 {
		log.Errorf("Failed to copy template to %v of %v destinations", len(failed), len(results))
		return 1
	}
	return 0
}
