// Package analytics reduces screened stock lists into dashboard analytics.
//
// It holds the summary aggregator, the industry and market-cap
// distribution builders, the industry benchmark adapter and computation,
// and the display formatters. Every function here is pure: inputs are
// already-materialized slices, nothing is fetched, nothing is mutated.
package analytics
