// Package api contains the HTTP handlers for the task tracking service.
package api
