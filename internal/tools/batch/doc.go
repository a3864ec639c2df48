// Package batch provides helpers for tools that accept either a single
// task id or a list of ids, running the underlying operation per id and
// aggregating the per-item outcomes into one JSON report.
package batch
