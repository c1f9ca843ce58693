// Package lsp demonstrates the Liskov Substitution Principle.
//
// In the "before" form Inspector, Decorator and Penguin claim a capability
// they cannot honor and fail every call with
// types.ErrUnsupportedOperation. The "after" form gives inspectors their
// own Inspection capability and keeps only real workers behind
// types.Worker.
package lsp
