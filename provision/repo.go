package provision

import (
	"bufio"
	"io"

	"prepare_bcdi_notebook/cfg"
	"prepare_bcdi_notebook/deps"
	"prepare_bcdi_notebook/util/copier"

	"github.com/sirupsen/logrus"
)

var _ deps.Global = repo{}

// repo represents dependencies holder for this package
type repo struct {
	log *logrus.Logger
	cfg cfg.Root
	out io.Writer
	in  *bufio.Reader
	cwd string
}

// NewRepo returns new dependencies holder for this package.
//
// <out> receives target and template locations of every copy, <in> is read to confirm overwrites.
//
// <cwd> is the absolute working directory against which relative destinations are resolved.
func NewRepo(log *logrus.Logger, cfg cfg.Root, out io.Writer, in io.Reader, cwd string) repo {
	return repo{log: log, cfg: copier.PDeep(cfg), out: out, in: bufio.NewReader(in), cwd: cwd}
}

// Log used to satisfy deps.Global interface
func (r repo) Log() *logrus.Logger {
	return r.log
}

// Cfg used to satisfy deps.Global interface
func (r repo) Cfg() cfg.Root {
	return r.cfg
}
