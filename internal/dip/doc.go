// Package dip demonstrates the Dependency Inversion Principle.
//
// ConcreteSite is the "before" form: it holds one field per concrete worker
// type and picks one by name. Site and NotificationService are the "after"
// form: each receives its collaborator as an abstraction at construction
// and delegates to it without knowing what it is.
package dip
