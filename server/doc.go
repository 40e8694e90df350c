// Package server hosts the worker job protocol over HTTP.
//
// Routes:
//
//	POST /v1/jobs   one JSON Request in, one JSON Response out
//	GET  /v1/ws     websocket; one Request per text frame, one Response each
//	GET  /metrics   prometheus exposition
//	GET  /healthz   liveness
package server
