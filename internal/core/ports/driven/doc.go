// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for a build to run:
//
//   - RecordReader: Parses CSV content files into raw records
//   - MediaResolver: Lists and checks media under the content root
//   - MediaStager: Copies media into the publish tree
//   - ArtifactWriter: Serialises generated JSON documents
//   - ConfigStore: Build configuration
//
// # Optional Interfaces
//
// These can be nil - the build degrades gracefully:
//
//   - BuildMetrics: Records per-domain and per-build outcomes.
package driven
