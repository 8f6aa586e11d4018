// Package domain defines the core content entities for contentbuild.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: One raw CSV row keyed by column name
//   - Project, Equipment, ELibraryDocument, TeamMember, HeroImage:
//     validated entities emitted as JSON for the site
//   - CategoryInfo, SectionInfo: display metadata per category/section
//   - Warning, BuildReport: non-fatal findings of a build
//
// It also holds the pure helpers every parser shares: scalar coercion,
// kebab-case id and date validation, and name slugs.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
