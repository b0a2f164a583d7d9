package cli

import (
	"github.com/cockroachdb/errors"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

// Flags represents command line flags
type Flags struct {
	Version        bool         `short:"v" long:"version"        description:"Print the program version"`
	LogLevel       logrus.Level `short:"l" long:"logLevel"       description:"Logging level. Can be from 0 (least verbose) to 6 (most verbose)"`
	ProgramCfgPath string       `short:"c" long:"programCfgPath" description:"Program config file path to read from"`
	InitCfg        bool         `long:"initCfg"                  description:"Write default program config to programCfgPath and exit"`
	TemplatePath   string       `short:"t" long:"templatePath"   description:"Notebook template file path or URL. Overrides config"`

	// Destinations represents positional arguments, paths to copy the template to
	Destinations []string
}

// Parse returns a structure initialized with command line arguments <args> (without program name) and error if
// parsing failed
func Parse(args []string) (Flags, error) {
	flags := Flags{
		// Set defaults
		LogLevel:       logrus.InfoLevel,
		ProgramCfgPath: "prepare_bcdi_notebook.yaml",
	}
	parser := goFlags.NewParser(&flags, goFlags.Options(goFlags.Default))
	parser.Usage = "[OPTIONS] [DESTINATION...]"
	rest, err := parser.ParseArgs(args)
	flags.Destinations = rest
	return flags, errors.Wrap(err, "Parse CLI arguments")
}

// IsErrOfType returns true if <err> is of type <t>
func IsErrOfType(err error, t goFlags.ErrorType) bool {
	goFlagsErr := &goFlags.Error{}
	if ok := errors.As(err, &goFlagsErr); ok && goFlagsErr.Type == t {
		return true
	}
	return false
}
