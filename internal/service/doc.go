// Package service implements the application's business operations on top
// of the store interfaces: identity and credential management, first-run
// bootstrap, and the task lifecycle with best-effort duration estimation.
package service
