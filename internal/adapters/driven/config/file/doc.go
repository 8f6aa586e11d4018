// Package file provides the file-backed build configuration store.
//
// The store reads contentbuild.toml, or a .yaml/.yml file when one is
// named, and exposes nested tables through dot keys:
//
//	[content]
//	root = "content"
//
// is read back as GetString("content.root").
package file
