// Package store defines persistence interfaces and sentinel errors.
package store
