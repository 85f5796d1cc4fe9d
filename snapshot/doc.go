// Package snapshot is a minimal MVCC transaction manager: a chain of
// copy-on-write version records, with lazy fork-on-write and atomic
// commit/discard. It stands in for the ambient snapshot service that a
// production deployment would otherwise supply (see the storage
// component's design notes) — the contract is deliberately small enough
// to reimplement rather than depend on.
//
// A Chain owns a singly-linked-in-spirit sequence of records; its head
// is the authoritative current record. A Session is a snapshot context:
// Read observes either the session's own pending record (if it has
// written) or its base (the chain's — or parent session's — record at
// Begin time). Write lazily forks a private copy from the pool the
// first time it's called. Commit merges a session's private record into
// its parent (or the chain, for a top-level session) if and only if the
// parent hasn't moved on since Begin; Discard abandons it.
//
// Buffers are synced via the Syncable constraint rather than a bare deep
// copy, so that a replaying buffer (see the replay package) can fork by
// targeted diff replay instead of a full clone.
package snapshot
