// Package estimator provides a client for the external duration-prediction
// service. Predictions are an optional enrichment: the safe entry point
// absorbs every failure so task creation never depends on the estimator
// being up.
package estimator
