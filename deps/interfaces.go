package deps

import (
	"prepare_bcdi_notebook/cfg"

	"github.com/sirupsen/logrus"
)

// Global represents global dependencies holder interface
type Global interface {
	Log() *logrus.Logger
	Cfg() cfg.Root
}
