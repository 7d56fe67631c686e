// Package pipeline runs scans over multiple input files concurrently with
// bounded concurrency using errgroup. Each file is scanned independently;
// failures are recorded per file and never abort the batch.
package pipeline
