package model

// MetadataRecord is the optional JSON sidecar fetched for a project.
//
// Every field is optional; absence means "use the Project's static
// default". Records are treated as untrusted: a fetch or parse failure
// degrades silently to "no override", so nothing here may be required.
//
// A nil Tags slice means the field was absent; an empty non-nil slice is
// an explicit (if unusual) override to no tags.
type MetadataRecord struct {
	Title       string   `json:"title,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Blurb       string   `json:"blurb,omitempty"`
	Description string   `json:"description,omitempty"`
	Transcript  string   `json:"transcript,omitempty"`

	// File, when set, overrides which blob to play. It is a filename
	// relative to the video prefix, not a full key.
	File string `json:"file,omitempty"`
}
