// Package orchestrator wires the loader → container → form snapshot →
// renderer pipeline, providing dependency injection friendly helpers for
// consumers that prefer a single entry point.
package orchestrator
