// Package vessel holds the in-memory fleet state: the per-vessel record
// model, the store that owns the id lookup and the lazily rebuilt
// spatial index, and the TTL sweeper that reclaims silent vessels.
//
// The store is the single shared mutable structure of the service. Writes
// (feed upserts, eviction) cheaply mutate the record map and mark the
// spatial index stale; the next viewport query pays for one wholesale
// rebuild. Incremental index maintenance is deliberately not attempted.
package vessel
