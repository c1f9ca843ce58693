// Package types defines the capabilities shared by the SOLID demonstrations
// (workers, tasks, senders, shapes, birds), their output labels, the
// configuration used by the CLI, and the standard error types.
package types
