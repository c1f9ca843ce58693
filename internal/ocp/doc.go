// Package ocp demonstrates the Open/Closed Principle.
//
// TaggedSite is the "before" form: it knows every kind of task by name and
// must be edited to learn a new one. Site is the "after" form: it starts
// any types.Task, so new tasks are added without touching it. Rectangle and
// Circle are the general example, measured through types.Shape.
package ocp
