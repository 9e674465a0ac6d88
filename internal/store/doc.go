// Package store implements the durable key/value settings store behind the
// recent-directory index. Values are JSON documents in a single SQLite
// table; the store is read on every access so the database, not process
// memory, is the source of truth.
package store
