// Package srp demonstrates the Single Responsibility Principle.
//
// ConstructionWorker is the "before" form: one type that builds walls,
// wires, plumbs and paints, so it has four reasons to change. The "after"
// form splits each job into its own worker type that satisfies
// types.Worker. UserAuthenticationService and EmailService are the general
// example: each service owns exactly one job.
package srp
