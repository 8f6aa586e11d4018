// Package services implements the driving port interfaces.
// Services hold the content rules: per-domain parsers turn raw records
// into validated entities, and the build orchestrator runs them through
// the driven ports (reader, media, writer, metrics).
//
// Services depend on the domain, the ports and the logger, never on
// a concrete adapter.
package services
