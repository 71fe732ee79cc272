// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/noisetonoise/audio"
)

// DefaultDebounce is how long Schedule waits for further changes before
// starting a run.
const DefaultDebounce = 100 * time.Millisecond

// Progress is one progress report for a request.
type Progress struct {
	Request  uint64
	Fraction float64
	Percent  int // floor(Fraction*100), 0..100
}

// Outcome is delivered for the latest scheduled request once it finishes.
type Outcome struct {
	Request uint64
	Result  Result
	Err     error
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithDebounce sets the Schedule delay. Zero starts runs immediately.
func WithDebounce(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d >= 0 {
			o.debounce = d
		}
	}
}

// WithProgress registers a progress callback. It only sees reports from the
// newest request; reports of superseded runs are dropped.
func WithProgress(fn func(Progress)) Option {
	return func(o *Orchestrator) { o.progress = fn }
}

// WithOnResult registers the callback for Schedule outcomes.
func WithOnResult(fn func(Outcome)) Option {
	return func(o *Orchestrator) { o.onResult = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// Orchestrator owns the committed result and makes sure only the newest
// request can replace it.
//
// Every Recompute or Schedule call takes the next request id. Older runs
// still in flight are cancelled and whatever they produce is discarded.
//
// Callbacks run one at a time and only for the newest request. They may call
// Schedule and Latest but not Recompute, Wait or Close.
type Orchestrator struct {
	debounce time.Duration
	progress func(Progress)
	onResult func(Outcome)
	logger   *slog.Logger

	latest atomic.Uint64
	wg     sync.WaitGroup

	// deliver serializes callbacks; the request id is rechecked under it.
	deliver sync.Mutex

	mtx         sync.Mutex
	timer       *time.Timer
	cancel      context.CancelFunc
	cancelID    uint64
	committed   Result
	committedID uint64
	hasResult   bool
	closed      bool

	base     context.Context
	shutdown context.CancelFunc
}

func NewOrchestrator(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		debounce: DefaultDebounce,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.base, o.shutdown = context.WithCancel(context.Background())

	return o
}

// Recompute runs synchronously as a new request. If another request is
// issued before it finishes, it returns ErrSuperseded and the committed
// result is left alone. It must not be called from a callback.
func (o *Orchestrator) Recompute(ctx context.Context, w *audio.Waveform, cfg Config) (Result, error) {
	id := o.latest.Add(1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	o.mtx.Lock()
	if o.closed {
		o.mtx.Unlock()
		return Result{}, context.Canceled
	}
	o.supersedeLocked()
	o.cancel, o.cancelID = cancel, id
	o.mtx.Unlock()

	res, err := Run(ctx, w, cfg, o.reporter(id))

	if !o.commit(id, res, err) {
		return Result{}, ErrSuperseded
	}
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

// Schedule queues a recompute after the debounce delay and returns its
// request id. A pending or running older request is dropped. Only the
// newest request reaches the OnResult callback. Schedule on a closed
// Orchestrator does nothing and returns 0.
func (o *Orchestrator) Schedule(w *audio.Waveform, cfg Config) uint64 {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	if o.closed {
		return 0
	}

	id := o.latest.Add(1)
	o.supersedeLocked()

	o.wg.Add(1)
	o.timer = time.AfterFunc(o.debounce, func() {
		defer o.wg.Done()
		o.runScheduled(id, w, cfg)
	})

	o.logger.Debug("recompute scheduled", "request", id, "debounce", o.debounce)

	return id
}

// Latest returns the last committed result and its request id.
// Values is shared and must not be modified.
func (o *Orchestrator) Latest() (Result, uint64, bool) {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	return o.committed, o.committedID, o.hasResult
}

// Wait blocks until every scheduled run has finished or been dropped.
// It must not be called concurrently with Schedule.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// Close cancels pending and running work and waits for it to stop. It must
// not be called from the progress or result callbacks.
func (o *Orchestrator) Close() {
	o.mtx.Lock()
	if !o.closed {
		o.closed = true
		o.supersedeLocked()
		o.shutdown()
	}
	o.mtx.Unlock()

	o.wg.Wait()
}

// supersedeLocked stops the pending timer and cancels the running request.
func (o *Orchestrator) supersedeLocked() {
	if o.timer != nil {
		if o.timer.Stop() {
			o.wg.Done()
		}
		o.timer = nil
	}
	if o.cancel != nil {
		o.logger.Debug("cancelling in-flight recompute", "request", o.cancelID)
		o.cancel()
		o.cancel = nil
	}
}

func (o *Orchestrator) runScheduled(id uint64, w *audio.Waveform, cfg Config) {
	o.mtx.Lock()
	if o.closed || id != o.latest.Load() {
		o.mtx.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(o.base)
	o.cancel, o.cancelID = cancel, id
	o.timer = nil
	o.mtx.Unlock()
	defer cancel()

	start := time.Now()
	res, err := Run(ctx, w, cfg, o.reporter(id))

	if !o.commit(id, res, err) {
		return
	}

	if err != nil {
		o.logger.Warn("recompute failed", "request", id, "error", err)
	} else {
		o.logger.Debug("recompute done", "request", id,
			"values", len(res.Values), "balance", res.Balance, "took", time.Since(start))
	}

	if o.onResult == nil {
		return
	}

	o.deliver.Lock()
	defer o.deliver.Unlock()

	if id != o.latest.Load() {
		o.logger.Debug("dropping superseded outcome", "request", id)
		return
	}
	o.onResult(Outcome{Request: id, Result: res, Err: err})
}

// commit stores res if id is still the newest request. It reports false when
// the run was superseded. Failed runs that are still current return true
// without touching the committed result.
func (o *Orchestrator) commit(id uint64, res Result, err error) bool {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	if o.cancelID == id {
		o.cancel = nil
	}

	if id != o.latest.Load() {
		o.logger.Debug("discarding superseded recompute", "request", id)
		return false
	}
	if err != nil {
		if errors.Is(err, context.Canceled) && o.closed {
			return false
		}
		return true
	}

	o.committed = res
	o.committedID = id
	o.hasResult = true

	return true
}

func (o *Orchestrator) reporter(id uint64) ProgressFunc {
	if o.progress == nil {
		return nil
	}

	return func(fraction float64) {
		o.deliver.Lock()
		defer o.deliver.Unlock()

		if id != o.latest.Load() {
			return
		}
		o.progress(Progress{
			Request:  id,
			Fraction: fraction,
			Percent:  Percent(fraction),
		})
	}
}

// Percent converts a fraction to a whole percentage clamped to 0..100.
func Percent(fraction float64) int {
	return int(math.Floor(clamp01(fraction) * 100))
}
