// Package model defines the core data structures shared across the
// admedia toolkit.
//
// # Project
//
// Project is the static seed record for one portfolio entry. Remote
// metadata is merged over it per field at render time:
//
//	merged := project.Merged(record)
//	// fields present in record win; absent fields keep seed values
//
// # MetadataRecord
//
// MetadataRecord is the optional JSON sidecar stored next to each video
// in the bucket. All fields are optional and the record is untrusted:
// callers fall back to Project defaults whenever it is missing or
// malformed.
//
// # Key helpers
//
// BaseKey extracts the logical base key from a filename
// ("ad_01_finance.mp4" -> "ad_01"); Stem strips prefix and extension;
// Initials derives the two-letter poster monogram from a title.
package model
