// Package isp demonstrates the Interface Segregation Principle.
//
// ConstructionTasks bundles four unrelated jobs, so WideBricklayer must
// stub three of them with failures. The segregated interfaces let each
// worker implement only its own job. Printer and Scanner are the general
// example.
package isp
