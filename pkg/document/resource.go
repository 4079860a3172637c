package document

import (
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/sdom-dev/sdom/internal/errors"
)

// resource is a document's ephemeral working directory and its release
// state. The directory is exclusively owned by one document and released
// exactly once: explicitly through close, or as a best-effort fallback when
// the document is reclaimed without being closed.
type resource struct {
	dir     string
	once    sync.Once
	cleanup runtime.Cleanup
}

// open allocates a uniquely-named directory and arms the reclamation
// fallback on the owning document.
func (r *resource) open(owner *Document) error {
	dir, err := os.MkdirTemp("", "sdom-")
	if err != nil {
		return errors.New(errors.CodeTempdirCreate).Wrap(err)
	}
	r.dir = dir
	// The cleanup must not capture the owner or it would never fire.
	r.cleanup = runtime.AddCleanup(owner, func(dir string) { _ = removeDir(dir) }, dir)
	return nil
}

// close releases the directory. Redundant calls and an already-vanished
// directory are both treated as success; release is best-effort cleanup,
// not correctness-critical for the serving path.
func (r *resource) close(logger *slog.Logger) error {
	r.once.Do(func() {
		r.cleanup.Stop()
		if err := removeDir(r.dir); err != nil {
			logger.Warn("failed to remove document tempdir",
				"dir", r.dir,
				"error", err)
		}
	})
	return nil
}

// removeDir deletes the directory tree if it still exists.
func removeDir(dir string) error {
	if dir == "" {
		return nil
	}
	err := os.RemoveAll(dir)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return err
}
