package trash

import (
	stderrors "errors"
	"fmt"

	"github.com/jmgilman/go/filemgr/errors"
	"github.com/jmgilman/go/filemgr/fs/core"
	"github.com/jmgilman/go/filemgr/logging"
)

// Result is the outcome for one item of a batch.
type Result struct {
	// Name is the trashed name under files/. It is empty when a Trash item
	// failed before a name was chosen.
	Name string
	// Path is the item's original (or, for Trash, requested) absolute path
	// when known.
	Path string
	// Method is how the item was moved, for Trash and Untrash.
	Method core.MoveMethod
	// Err is nil on success.
	Err error
}

// Report aggregates a batch operation.
type Report struct {
	Succeeded []Result
	Failed    []Result
	// Remaining is the number of items left in the trash afterwards, or -1
	// if it could not be counted.
	Remaining int
}

func (r *Report) add(res Result) {
	if res.Err != nil {
		r.Failed = append(r.Failed, res)
		return
	}
	r.Succeeded = append(r.Succeeded, res)
}

// Err returns nil when every item succeeded. Otherwise it returns an error
// with CodePartialFailure whose chain holds every per-item error, so
// errors.HasCode and errors.Is see through it.
func (r Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failed))
	for i, f := range r.Failed {
		errs[i] = f.Err
	}
	return errors.WithContextMap(
		errors.Wrapf(stderrors.Join(errs...), errors.CodePartialFailure,
			"%d of %d item(s) failed", len(r.Failed), len(r.Failed)+len(r.Succeeded)),
		map[string]interface{}{
			"succeeded": len(r.Succeeded),
			"failed":    len(r.Failed),
			"remaining": r.Remaining,
		})
}

func (m *Manager) finish(op logging.Operation, r Report) (Report, error) {
	n, err := m.Count()
	if err != nil {
		n = -1
	}
	r.Remaining = n
	logging.LogBatch(m.logger, op, len(r.Succeeded), len(r.Failed), r.Remaining)
	return r, r.Err()
}

func (m *Manager) logResult(op logging.Operation, res Result) {
	logger := m.logger.WithOperation(op).With("name", res.Name)
	if res.Path != "" {
		logger = logger.WithPath(res.Path)
	}
	if res.Err != nil {
		logger.WithError(res.Err).Warn("item failed")
		return
	}
	if res.Method == core.MoveCopy {
		logger = logger.With("method", res.Method.String())
	}
	logger.Info("item done")
}

// Status messages for terminal display.

// TrashedStatus reports a Trash batch.
func TrashedStatus(r Report) []string {
	return []string{
		fmt.Sprintf("%d file(s) trashed", len(r.Succeeded)),
		totalStatus(r.Remaining),
	}
}

// RemovedStatus reports a Remove batch.
func RemovedStatus(r Report) []string {
	return []string{
		fmt.Sprintf("%d file(s) removed from the trash can", len(r.Succeeded)),
		totalStatus(r.Remaining),
	}
}

// UntrashedStatus reports an Untrash batch.
func UntrashedStatus(r Report) []string {
	return []string{
		fmt.Sprintf("%d file(s) untrashed", len(r.Succeeded)),
		totalStatus(r.Remaining),
	}
}

// ClearedStatus reports a Clear.
func ClearedStatus(r Report) string {
	switch {
	case len(r.Succeeded) == 0 && len(r.Failed) == 0:
		return NoTrashedFiles
	case len(r.Failed) == 0:
		return "Trash can emptied"
	default:
		return fmt.Sprintf("%d file(s) removed from the trash can", len(r.Succeeded))
	}
}

// NoTrashedFiles is shown for an empty trash can.
const NoTrashedFiles = "No trashed files"

func totalStatus(n int) string {
	if n < 0 {
		return "total trashed files unknown"
	}
	return fmt.Sprintf("%d total trashed file(s)", n)
}
