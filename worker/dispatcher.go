package worker

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/lightsout/analysis"
	"github.com/katalvlaran/lightsout/board"
	"github.com/katalvlaran/lightsout/internal/log"
	"github.com/katalvlaran/lightsout/period"
)

// Dispatcher answers Requests. It is safe for concurrent use.
type Dispatcher struct {
	sem  *semaphore.Weighted
	opts options
}

// NewDispatcher returns a Dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	o := gatherOptions(opts)

	return &Dispatcher{
		sem:  semaphore.NewWeighted(int64(o.concurrency)),
		opts: o,
	}
}

func (d *Dispatcher) logger() log.Logger {
	if d.opts.logger != nil {
		return d.opts.logger
	}

	return log.Root()
}

// Do runs req and returns its Response. ctx bounds only the wait for a free
// slot; a started job is not interrupted.
func (d *Dispatcher) Do(ctx context.Context, req Request) (resp Response) {
	if err := req.validate(d.opts.maxSize); err != nil {
		d.record(req.Kind, "rejected", 0)
		return failure(req.ID, err)
	}
	if err := ctx.Err(); err != nil {
		d.record(req.Kind, "cancelled", 0)
		return failure(req.ID, err)
	}
	if err := d.sem.Acquire(ctx, 1); err != nil {
		d.record(req.Kind, "cancelled", 0)
		return failure(req.ID, err)
	}
	defer d.sem.Release(1)

	ctx, span := d.opts.tracer.Start(ctx, "worker."+string(req.Kind), trace.WithAttributes(
		attribute.String("job.id", req.ID),
		attribute.String("job.kind", string(req.Kind)),
		attribute.Int("job.n", req.N),
		attribute.Int("job.rows", req.Rows),
		attribute.Int("job.cols", req.Cols),
	))
	defer span.End()

	if d.opts.metrics != nil {
		d.opts.metrics.InFlight.Inc()
		defer d.opts.metrics.InFlight.Dec()
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("worker: %s panicked: %v", req.Kind, r)
			d.logger().Error(log.Worker, "job panicked", "id", req.ID, "kind", req.Kind, "panic", r, "stack", string(debug.Stack()))
			span.RecordError(err)
			span.SetStatus(codes.Error, "panic")
			resp = failure(req.ID, err)
		}
		status := "ok"
		if !resp.Success {
			status = "error"
		}
		d.record(req.Kind, status, time.Since(start))
	}()

	result, err := d.run(context.WithoutCancel(ctx), req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.logger().Debug(log.Worker, "job failed", "id", req.ID, "kind", req.Kind, "err", err)
		return failure(req.ID, err)
	}
	d.logger().Debug(log.Worker, "job done", "id", req.ID, "kind", req.Kind, "elapsed", time.Since(start))

	return success(req.ID, result)
}

func (d *Dispatcher) record(kind Kind, status string, elapsed time.Duration) {
	if d.opts.metrics == nil {
		return
	}
	d.opts.metrics.Jobs.WithLabelValues(string(kind), status).Inc()
	if elapsed > 0 {
		d.opts.metrics.Seconds.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
	}
}

func (d *Dispatcher) run(ctx context.Context, req Request) (any, error) {
	cache := d.opts.cache
	switch req.Kind {
	case KindProduct:
		return cache.Product(req.Input, req.Rows, req.Cols)
	case KindPattern:
		var opts []period.Option
		if req.Limit >= 2 {
			opts = append(opts, period.WithIterationLimit(req.Limit))
		}
		return analysis.Periodicity(req.N, opts...)
	case KindSolvability:
		return analysis.Solvability(req.N, analysis.WithCache(cache))
	case KindIdentity:
		return analysis.IdentitySearch(ctx, req.N)
	case KindGodsNumber:
		return analysis.GodsNumber(req.N, analysis.WithCache(cache))
	case KindVerify:
		p, err := period.Find(req.N)
		if err != nil {
			return nil, err
		}
		return analysis.VerifyPeriodicity(ctx, p, req.Limit)
	case KindSolve:
		b, err := board.FromValues(req.Board)
		if err != nil {
			return nil, err
		}
		return board.Solve(b, cache)
	case KindChase:
		return board.ChaseFrames(req.Presses, req.Rows, req.Cols, cache)
	default:
		return nil, fmt.Errorf("%q: %w", req.Kind, ErrUnknownKind)
	}
}
