package cfg

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"prepare_bcdi_notebook/util/copier"
)

//go:embed default.yaml
var defCfgBytes []byte

// EnvPrefix represents prefix of environment variables overriding config values.
//
// Sections are separated by double underscore, e.g. PREPARE_BCDI_NOTEBOOK_TEMPLATE__PATH.
const EnvPrefix = "PREPARE_BCDI_NOTEBOOK_"

// Root represents root settings of the program
type Root struct {
	General   General   `koanf:"general"`
	Template  Template  `koanf:"template"`
	Provision Provision `koanf:"provision"`
}

// General represents general settings of the program
type General struct {
	// PrintSummary specifies if table of per-destination results should be rendered after the run
	PrintSummary bool `koanf:"print_summary"`
}

// Template represents notebook template settings
type Template struct {
	// Path represents template file path or http(s) URL.
	//
	// Empty value means the template built into the program.
	Path string `koanf:"path"`

	// RespTimeout represents template URL response timeout
	RespTimeout time.Duration `koanf:"resp_timeout"`

	// Insecure specifies if TLS certificate of template URL host should not be verified
	Insecure bool `koanf:"insecure"`

	// CheckFormat specifies if template should be checked to be a valid notebook before copying
	CheckFormat bool `koanf:"check_format"`
}

// Provision represents settings of copying template to destinations
type Provision struct {
	// FileMode represents permissions of written notebooks
	FileMode fs.FileMode `koanf:"file_mode"`

	// HaltOnError specifies if the run should stop at the first destination which can not be written.
	//
	// If false, every destination is tried.
	HaltOnError bool `koanf:"halt_on_error"`

	// AskOverwrite specifies if user should confirm overwriting of existing notebooks
	AskOverwrite bool `koanf:"ask_overwrite"`
}

// NewDefCfg returns config with default values, same as in default.yaml
func NewDefCfg() Root {
	return Root{
		General: General{
			PrintSummary: true,
		},
		Template: Template{
			Path:        "",
			RespTimeout: time.Second * 30,
			Insecure:    false,
			CheckFormat: false,
		},
		Provision: Provision{
			FileMode:     0644,
			HaltOnError:  true,
			AskOverwrite: false,
		},
	}
}

// BadFileModeError represents error thrown if program config has invalid file mode
type BadFileModeError struct {
	Value string
}

// Error is used to satisfy golang error interface
func (e BadFileModeError) Error() string {
	return fmt.Sprintf("File mode should be an octal number such as '0644', got: '%v'", e.Value)
}

// Init returns config instance read from <cfgFilePath> on top of the defaults.
//
// If config file does not exist, defaults are used. Environment variables prefixed with EnvPrefix override both.
//
// Can return errors defined in this package: BadFileModeError.
func Init(log *logrus.Logger, cfgFilePath string) (Root, error) {
	log.Debug("Reading program config")

	ko := koanf.New(".")
	var root Root

	// Load defaults first so fields missing in config file keep default values
	if err := ko.Load(rawbytes.Provider(defCfgBytes), yaml.Parser()); err != nil {
		return root, errors.Wrap(err, "Load default config")
	}

	// Load config file into koanf if exist
	if err := ko.Load(file.Provider(cfgFilePath), yaml.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return root, errors.Wrap(err, "Load config")
		}
		log.Debugf("Config file %v not found, using defaults", cfgFilePath)
	}

	// Load environment variables
	err := ko.Load(env.Provider(EnvPrefix, ".", func(key string) string {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return root, errors.Wrap(err, "Load environment variables")
	}

	// Decode loaded config into structure
	decoder := mapstructure.ComposeDecodeHookFunc(
		// Parse octal file mode
		func(from, to reflect.Type, fromData any) (any, error) {
			if to != reflect.TypeOf(fs.FileMode(0)) || from.Kind() != reflect.String {
				return fromData, nil
			}
			modeStr := reflect.ValueOf(fromData).String()
			mode, err := strconv.ParseUint(modeStr, 8, 32)
			if err != nil || mode > uint64(fs.ModePerm) {
				return nil, BadFileModeError{Value: modeStr}
			}
			return fs.FileMode(mode), nil
		},
		// Default decoders
		mapstructure.StringToTimeDurationHookFunc(),
	)
	err = ko.UnmarshalWithConf("", &root, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:           decoder,
			ErrorUnused:          true,
			IgnoreUntaggedFields: true,
			Result:               &root,
			WeaklyTypedInput:     true,
			ZeroFields:           true,
		},
	})
	if err != nil {
		return root, errors.Wrap(err, "Decode config")
	}

	return root, nil
}

// WriteDefault writes default config to <cfgFilePath>, overwriting it if exist
func WriteDefault(cfgFilePath string) error {
	return errors.Wrap(os.WriteFile(cfgFilePath, defCfgBytes, 0644), "Write default config")
}

// WithTemplate returns copy of <root> where every non-empty field of <over> replaces the template settings
func WithTemplate(root Root, over Template) (Root, error) {
	tpl, err := copier.Overlay(root.Template, over)
	if err != nil {
		return root, errors.Wrap(err, "Override template settings")
	}
	root.Template = tpl
	return root, nil
}
