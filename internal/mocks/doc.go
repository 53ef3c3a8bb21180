// Package mocks provides hand-written test doubles for the store and
// service interfaces. The store mocks are simple in-memory maps with the
// same sentinel-error behavior as the PostgreSQL implementations.
package mocks
