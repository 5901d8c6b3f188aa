// Package scanner walks the configured music roots and populates the
// library index, one cancellable load at a time.
package scanner

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"

	"go-micro.dev/v4/logger"

	"github.com/megawave/megawave/internal/library"
	"github.com/megawave/megawave/internal/model"
)

// batchSize is how many candidate files are processed between
// cancellation checks. A batch in flight always runs to completion.
const batchSize = 50

type candidate struct {
	dir      string
	name     string
	fileType model.FileType
}

// Loader is the sole writer of the library index. At most one load is
// current: starting a new one cancels and waits out the previous load
// before shared state is reset, so a superseded load can never write into
// the new generation's index.
type Loader struct {
	index     *library.Index
	extractor Extractor

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(index *library.Index, extractor Extractor) *Loader {
	return &Loader{
		index:     index,
		extractor: extractor,
	}
}

// Load starts scanning roots in the background, superseding any load
// still in flight.
func (l *Loader) Load(roots []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopCurrent()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done

	l.index.Reset()
	l.index.SetStatus(library.StatusLoading)

	go func() {
		defer close(done)
		l.run(ctx, roots)
	}()
}

// Cancel stops the in-flight load, if any, and waits for it to finish.
// Cancellation is not an error: the index ends up idle.
func (l *Loader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopCurrent()
}

// Wait blocks until the current load completes.
func (l *Loader) Wait() {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	if done != nil {
		<-done
	}
}

// stopCurrent must be called with l.mu held. Holding the mutex across the
// wait is fine: the load goroutine never takes it.
func (l *Loader) stopCurrent() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	<-l.done
	l.cancel = nil
	l.done = nil
}

func (l *Loader) run(ctx context.Context, roots []string) {
	loadsStarted.Inc()

	var added, skipped int
	status := library.StatusIdle

	for _, root := range roots {
		if ctx.Err() != nil {
			break
		}
		logger.Infof("Loading music library at %q", root)
		if err := l.scanRoot(ctx, root, &added, &skipped); err != nil {
			logger.Errorf("Loading library at %q failed: %s", root, err)
			status = library.StatusError
			break
		}
	}

	if ctx.Err() != nil {
		logger.Info("Library load cancelled")
		status = library.StatusIdle
	}

	l.index.SetStatus(status)
	logger.Infof("Library load finished: %d songs added, %d skipped", added, skipped)
}

// scanRoot enumerates one root and processes candidates in batches. An
// error escaping the walk itself (an unreadable root or subdirectory)
// aborts the whole load; per-file extraction failures only skip the file.
func (l *Loader) scanRoot(ctx context.Context, root string, added, skipped *int) error {
	var batch []candidate

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return filepath.SkipAll
		}
		if d.IsDir() {
			return nil
		}

		fileType, ok := model.FileTypeFromPath(d.Name())
		if !ok {
			return nil
		}

		batch = append(batch, candidate{dir: filepath.Dir(path), name: d.Name(), fileType: fileType})
		if len(batch) >= batchSize {
			l.processBatch(ctx, batch, added, skipped)
			batch = batch[:0]
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(batch) > 0 && ctx.Err() == nil {
		l.processBatch(ctx, batch, added, skipped)
	}
	return nil
}

func (l *Loader) processBatch(ctx context.Context, batch []candidate, added, skipped *int) {
	for _, c := range batch {
		if ctx.Err() != nil {
			return
		}

		track, err := l.extractor.Extract(c.dir, c.name, c.fileType)
		if err != nil {
			logger.Debugf("Skipped %q: %s", c.name, err)
			tracksSkipped.Inc()
			*skipped++
			continue
		}

		if err := l.index.Append(track); err != nil {
			logger.Warnf("Could not add %q: %s", c.name, err)
			tracksSkipped.Inc()
			*skipped++
			continue
		}
		tracksAdded.Inc()
		*added++
	}
}
