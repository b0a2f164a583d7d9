package provision

import (
	"os"
	"path/filepath"
	"testing"

	"prepare_bcdi_notebook/cfg"
	"prepare_bcdi_notebook/util/logger"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestRepo(t *testing.T, c cfg.Root) (repo, string) {
	cwd := t.TempDir()
	return NewRepo(logger.New(logrus.DebugLevel), c, os.Stdout, os.Stdin, cwd), cwd
}

func TestNormalize(t *testing.T) {
	assert.Exactly(t, "out.ipynb", Normalize("out"))
	assert.Exactly(t, "out.ipynb", Normalize("out.ipynb"))
	assert.Exactly(t, "out.IPYNB.ipynb", Normalize("out.IPYNB"), "suffix match should be case sensitive")
	assert.Exactly(t, "out.txt.ipynb", Normalize("out.txt"))
	assert.Exactly(t, "sub/.ipynb", Normalize("sub/"))
	assert.Exactly(t, ".ipynb", Normalize(""))
}

func TestDirname(t *testing.T) {
	assert.Exactly(t, "", Dirname("out.ipynb"))
	assert.Exactly(t, "sub", Dirname("sub/out.ipynb"))
	assert.Exactly(t, "a/b", Dirname("a/b/out.ipynb"))
	assert.Exactly(t, "a", Dirname("a//out.ipynb"))
	assert.Exactly(t, "/", Dirname("/out.ipynb"))
	assert.Exactly(t, "//", Dirname("//out.ipynb"))
	assert.Exactly(t, "/tmp", Dirname("/tmp/out.ipynb"))
	assert.Exactly(t, ".", Dirname("./out.ipynb"))
	assert.Exactly(t, "a/../b", Dirname("a/../b/out.ipynb"), "should not clean the path")
	assert.Exactly(t, "", Dirname(""))
}

func TestTarget(t *testing.T) {
	r, cwd := newTestRepo(t, cfg.NewDefCfg())

	err := os.Mkdir(filepath.Join(cwd, "sub"), 0755)
	assert.NoError(t, err, "should create directory")

	normalized, target := r.Target("out")
	assert.Exactly(t, "out.ipynb", normalized)
	assert.Exactly(t, cwd+"/out.ipynb", target, "bare file name should go to working directory")

	normalized, target = r.Target("sub/out")
	assert.Exactly(t, "sub/out.ipynb", normalized)
	assert.Exactly(t, "sub/out.ipynb", target, "existing directory should be used as is")

	normalized, target = r.Target("missing_dir/out.ipynb")
	assert.Exactly(t, "missing_dir/out.ipynb", normalized)
	assert.Exactly(t, cwd+"/missing_dir/out.ipynb", target, "missing directory should be appended to working directory")

	absDir := t.TempDir()
	normalized, target = r.Target(filepath.Join(absDir, "abs"))
	assert.Exactly(t, filepath.Join(absDir, "abs.ipynb"), normalized)
	assert.Exactly(t, filepath.Join(absDir, "abs.ipynb"), target, "existing absolute directory should be used as is")

	_, target = r.Target("./out")
	assert.Exactly(t, "./out.ipynb", target, "current directory always exists")
}
