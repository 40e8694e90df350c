// Package worker runs engine jobs behind a request/response boundary.
//
// A job is one atomic unit of work: it is described by a Request, answered
// by exactly one Response, and never reports partial progress. The context
// passed to Dispatcher.Do is honoured only until the job starts; once the
// computation begins it runs to completion. Every error and every panic
// becomes a failure Response, so callers never see either directly.
//
// Dispatcher bounds the number of jobs computing at once, opens a tracing
// span per job and records job counts and durations.
package worker
