package provision

import (
	"path/filepath"
	"strings"

	"prepare_bcdi_notebook/notebook"
	"prepare_bcdi_notebook/util/file"
)

// separators represents characters splitting path components
const separators = "/" + string(filepath.Separator)

// Normalize returns <arg> with notebook extension appended if it does not end with it already
func Normalize(arg string) string {
	if !strings.HasSuffix(arg, notebook.Ext) {
		arg += notebook.Ext
	}
	return arg
}

// Dirname returns everything in <path> before the last separator, with trailing separators removed unless it
// consists of separators only.
//
// Unlike filepath.Dir, returns empty string for a bare file name and does not clean the result.
func Dirname(path string) string {
	head := path[:strings.LastIndexAny(path, separators)+1]
	if trimmed := strings.TrimRight(head, separators); trimmed != "" {
		return trimmed
	}
	return head
}

// Target returns normalized <arg> and path to copy the template to.
//
// Target is the normalized argument itself if its directory exists, otherwise the normalized argument appended to
// the working directory as is, including any directory it names.
func (r repo) Target(arg string) (normalized, target string) {
	normalized = Normalize(arg)
	if file.Exists(r.resolve(Dirname(normalized))) {
		return normalized, normalized
	}
	return normalized, r.cwd + "/" + normalized
}

// resolve returns <path> joined to the working directory if it's relative and not empty
func (r repo) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.cwd, path)
}
