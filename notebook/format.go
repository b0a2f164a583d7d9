package notebook

import (
	"fmt"

	json "github.com/SCP002/jsonexraw"
	"github.com/cockroachdb/errors"
)

// MinNBFormat represents the oldest supported major version of notebook format
const MinNBFormat = 4

// Notebook represents Jupyter notebook
type Notebook struct {
	Cells         []Cell         `json:"cells"`
	Metadata      map[string]any `json:"metadata"`
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
	Unknown       map[string]any `json:"-" jsonex:"true"` // All unknown fields go here.
}

// Cell represents notebook cell
type Cell struct {
	CellType string `json:"cell_type"`
	Source   any    `json:"source"` // String or list of lines
}

// BadNotebookError represents error thrown if template is not a valid notebook
type BadNotebookError struct {
	Reason string
}

// Error is used to satisfy golang error interface
func (e BadNotebookError) Error() string {
	return fmt.Sprintf("Template is not a valid notebook: %v", e.Reason)
}

// Parse returns notebook serialized from <data>.
//
// Can return errors defined in this package: BadNotebookError.
func Parse(data []byte) (Notebook, error) {
	var nb Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nb, errors.Wrap(BadNotebookError{Reason: err.Error()}, "Serialize notebook")
	}
	if nb.Cells == nil {
		return nb, errors.Wrap(BadNotebookError{Reason: "no cells"}, "Check notebook")
	}
	if nb.NBFormat < MinNBFormat {
		reason := fmt.Sprintf("format version %v is older than %v", nb.NBFormat, MinNBFormat)
		return nb, errors.Wrap(BadNotebookError{Reason: reason}, "Check notebook")
	}
	return nb, nil
}
