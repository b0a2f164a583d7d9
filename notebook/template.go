package notebook

import (
	_ "embed"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"prepare_bcdi_notebook/cfg"
	"prepare_bcdi_notebook/util/file"
	"prepare_bcdi_notebook/util/network"
	"prepare_bcdi_notebook/util/slice"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/utahta/go-openuri"
)

// Name represents file name of the template notebook
const Name = "analyze_bcdi_data.ipynb"

// Ext represents notebook file extension
const Ext = ".ipynb"

// BuiltinLocation represents location reported for the template built into the program
const BuiltinLocation = "builtin:" + Name

//go:embed analyze_bcdi_data.ipynb
var builtin []byte

// Builtin returns copy of the template built into the program
func Builtin() []byte {
	out := make([]byte, len(builtin))
	copy(out, builtin)
	return out
}

// Source represents notebook template to copy
type Source interface {
	// Location returns absolute path, URL or BuiltinLocation of the template
	Location() string

	// CopyTo writes the template to <dst> with <perm> permissions, overwriting <dst> if it exists
	CopyTo(dst string, perm fs.FileMode) error
}

// fileSource represents template in a local file, read on every copy
type fileSource struct {
	path string
}

// Location used to satisfy Source interface
func (s fileSource) Location() string {
	return s.path
}

// CopyTo used to satisfy Source interface
func (s fileSource) CopyTo(dst string, perm fs.FileMode) error {
	return file.Copy(s.path, dst, perm)
}

// memSource represents template held in memory
type memSource struct {
	location string
	data     []byte
}

// Location used to satisfy Source interface
func (s memSource) Location() string {
	return s.location
}

// CopyTo used to satisfy Source interface
func (s memSource) CopyTo(dst string, perm fs.FileMode) error {
	return file.Write(dst, s.data, perm)
}

// IsURL returns true if <path> is http or https URL
func IsURL(path string) bool {
	return slice.HasAnyPrefix(path, "http://", "https://")
}

// Open returns template source described by <c>.
//
// Empty path means the template built into the program. URLs are fetched once. Relative local paths are resolved
// against <cwd>, local files are read at copy time.
//
// If template format check is enabled, template content is parsed as notebook and BadNotebookError can be returned.
func Open(log *logrus.Logger, c cfg.Template, cwd string) (Source, error) {
	var src Source
	var data []byte

	switch {
	case c.Path == "":
		log.Debug("Using built-in template")
		data = Builtin()
		src = memSource{location: BuiltinLocation, data: data}
	case IsURL(c.Path):
		log.Infof("Fetching template from %v", c.Path)
		client := network.NewHttpClient(c.Insecure, c.RespTimeout)
		resp, err := openuri.Open(c.Path, openuri.WithHTTPClient(client))
		if err != nil {
			return nil, errors.Wrapf(err, "Fetch template (%v)", network.GetErrType(err))
		}
		defer resp.Close()
		if data, err = io.ReadAll(resp); err != nil {
			return nil, errors.Wrap(err, "Read template response")
		}
		src = memSource{location: c.Path, data: data}
	default:
		path := c.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		src = fileSource{path: filepath.Clean(path)}
	}

	if !c.CheckFormat {
		return src, nil
	}

	if data == nil {
		var err error
		if data, err = os.ReadFile(src.Location()); err != nil {
			return nil, errors.Wrap(err, "Read template")
		}
	}
	nb, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Debugf("Template %v is a notebook of format %v.%v with %v cells", src.Location(), nb.NBFormat,
		nb.NBFormatMinor, len(nb.Cells))

	return src, nil
}
