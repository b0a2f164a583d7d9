package provision

import (
	"fmt"

	"prepare_bcdi_notebook/notebook"
	"prepare_bcdi_notebook/util/file"
	"prepare_bcdi_notebook/util/input"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Status represents outcome of copying the template to a single destination
type Status string

const (
	Copied  Status = "copied"
	Skipped Status = "skipped"
	Failed  Status = "failed"
)

// Result represents outcome of copying the template to a single destination
type Result struct {
	// Arg represents destination argument with notebook extension appended
	Arg string

	// Target represents path the template is copied to
	Target string

	Status Status

	// Err is not nil if Status is Failed
	Err error
}

// Opener represents function returning template source. Called at most once per run.
type Opener func() (notebook.Source, error)

// Run copies template returned by <open> to every destination in <args>, in order, and returns result for every
// destination tried.
//
// Template is not opened if <args> is empty.
//
// If config says to halt on error, stops at the first failed destination and returns it's error along with results
// collected so far. Otherwise tries every destination and returns nil error, failures can be found in the results.
//
// Error opening the template is always returned.
func (r repo) Run(args []string, open Opener) ([]Result, error) {
	if len(args) == 0 {
		r.log.Debug("No destinations given, nothing to do")
		return nil, nil
	}

	src, err := open()
	if err != nil {
		return nil, errors.Wrap(err, "Open template")
	}

	results := make([]Result, 0, len(args))
	for _, arg := range args {
		res := r.copy(src, arg)
		results = append(results, res)
		if res.Err != nil {
			if r.cfg.Provision.HaltOnError {
				return results, res.Err
			}
			r.log.Error(res.Err)
		}
	}

	return results, nil
}

// copy copies template <src> to the target derived from destination argument <arg>
func (r repo) copy(src notebook.Source, arg string) Result {
	normalized, target := r.Target(arg)
	res := Result{Arg: normalized, Target: target}

	fmt.Fprintln(r.out, normalized, src.Location())

	path := r.resolve(target)
	if r.cfg.Provision.AskOverwrite && file.Exists(path) {
		prompt := fmt.Sprintf("%v already exists, overwrite? (y/n): ", target)
		if !input.AskYesNo(r.log, r.in, prompt) {
			r.log.Infof("Skipping %v", target)
			res.Status = Skipped
			return res
		}
	}

	r.log.Debugf("Copying %v to %v", src.Location(), path)
	if err := src.CopyTo(path, r.cfg.Provision.FileMode); err != nil {
		res.Status = Failed
		res.Err = errors.Wrapf(err, "Copy template to %v", target)
		return res
	}

	res.Status = Copied
	return res
}

// FailedOnly returns results from <results> which status is Failed
func FailedOnly(results []Result) []Result {
	return lo.Filter(results, func(res Result, _ int) bool {
		return res.Status == Failed
	})
}
