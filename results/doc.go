// Package results persists sweep run records: a JSON file codec for
// exchange with external tooling, and a SQLite store for accumulating runs
// across sweeps.
//
// The store keeps one row per run ID with the sweep label, the headline
// integral and the full record as a JSON payload, so schema churn in the
// diagnostics never requires a migration. Writes are upserts keyed on the
// run ID; reads return records in insertion order per sweep.
package results
