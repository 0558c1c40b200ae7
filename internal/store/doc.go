// Package store persists the processed-word records. The store is a
// flat JSON file keyed by normalized word, so runs can resume without
// recreating cards and the file stays readable by hand.
package store
