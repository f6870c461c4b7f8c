// Package service provides the session-based API over the game engine.
//
// GameService is the single entry point callers use: it creates sessions
// from named or custom configurations, executes moves, redos, hints, and
// restarts, and exposes game state, paginated move history, and the config
// catalog. Every method takes a context and returns explicit results;
// rule-level refusals (an illegal move, an exhausted redo budget) are data
// in the result types, while infrastructure failures (unknown session,
// unreadable config) are errors.
//
// The service serializes operations internally, so one instance can be
// shared by concurrent callers.
package service
