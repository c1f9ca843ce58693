package types

import "io"

// Worker is a construction worker that performs one duty.
// A conforming worker writes exactly one line to w and returns nil unless
// the write fails.
type Worker interface {
	PerformDuty(w io.Writer) error
}

// Task is a unit of construction work that a site can start.
// Same contract as Worker.
type Task interface {
	PerformTask(w io.Writer) error
}

// Sender delivers a notification message through one channel.
type Sender interface {
	SendNotification(w io.Writer, message string) error
}

// Shape is anything with an area. Area is never negative.
type Shape interface {
	Area() float64
}

// Bird is the shared contract every bird is expected to honor.
type Bird interface {
	Fly(w io.Writer) error
}

// WorkerFunc adapts a plain function to the Worker interface.
type WorkerFunc func(w io.Writer) error

// PerformDuty calls f(w).
func (f WorkerFunc) PerformDuty(w io.Writer) error { return f(w) }

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func(w io.Writer) error

// PerformTask calls f(w).
func (f TaskFunc) PerformTask(w io.Writer) error { return f(w) }

// WriteLine writes s followed by a newline. Every demonstration emits its
// output through it so that one operation is always one line.
func WriteLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
