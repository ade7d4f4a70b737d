// Package api provides the HTTP handlers for the task-delegation API:
// task creation and lifecycle operations, profile reads and updates, and
// the per-user and global statistics views.
package api
