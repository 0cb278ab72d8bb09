// Package store provides SQLite-backed storage for demonstration runs.
//
// A run records the operation and its argument literals; each iteration of
// the run appends a step with the selected value and the state of every
// argument after the increment.
//
// # Ordering
//
// Runs are ordered by an insertion seq and steps by their iteration number,
// never by wall-clock time, so listings are stable across machines.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
