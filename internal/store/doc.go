// Package store defines interfaces for task and roster data access.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic, allowing authorization and lifecycle rules
// to remain independent of how the data is held.
package store
