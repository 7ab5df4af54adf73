// Package state keeps per-chat viewing state in memory for the lifetime of
// the process.
package state
