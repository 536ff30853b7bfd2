// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// calculation, etc.) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// CalculationError implements Unwrap() so errors.Is() and errors.As() can reach its cause;
// the other error types do not wrap an underlying error.
package apperrors
