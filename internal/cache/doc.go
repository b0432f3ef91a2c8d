// Package cache provides a SQLite-backed store for PokeAPI responses.
//
// PokeAPI records only change between game releases, so skyedex keeps the
// raw JSON bodies it fetched in a single database file under the XDG cache
// directory (~/.cache/skyedex/cache.db on Linux) and serves repeated
// lookups from there until the entries expire.
//
// The store uses modernc.org/sqlite, a CGO-free driver, and is safe to use
// from one process at a time.
package cache
