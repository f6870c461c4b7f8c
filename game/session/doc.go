// Package session manages the lifecycle of in-memory game sessions.
//
// A session pairs a session ID with a running game engine and its
// configuration. The Manager provides thread-safe create, lookup, list,
// delete, and expiry-cleanup operations; IDs are generated as UUIDs when the
// caller does not supply one.
//
// Sessions are held in memory only and disappear when the process exits.
package session
