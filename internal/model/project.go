package model

import (
	"regexp"
	"strings"
)

// Project is a static seed record for one portfolio entry.
//
// Projects are immutable after definition. Remote metadata never mutates
// a Project; overrides are applied at render time via Merged, which
// returns a new value.
//
// VideoBase is the logical base key (e.g. "ad_01") used to resolve the
// concrete video object and its metadata record without knowing the exact
// filename or extension.
type Project struct {
	// ID uniquely identifies the project.
	ID string

	// Title is the display headline.
	Title string

	// Tags is an ordered set of display tags.
	Tags []string

	// Blurb is a one-line teaser shown on the card.
	Blurb string

	// Description is the long-form copy shown in the modal.
	Description string

	// VideoBase is the logical base key used for blob resolution.
	VideoBase string

	// Hue rotates the generated poster gradient, in degrees. Cosmetic.
	Hue int
}

// ResolvedVideo identifies the concrete blob chosen for a project.
//
// Produced once per base key and cached for the page session; never
// invalidated.
type ResolvedVideo struct {
	// URL is the absolute fetch URL for the object.
	URL string

	// Name is the full blob key, including the prefix.
	Name string
}

// Merged returns a copy of p with non-empty fields of rec applied over
// the static defaults. The merge is per-field: absent fields in rec keep
// the seed values. A nil rec returns p unchanged.
func (p Project) Merged(rec *MetadataRecord) Project {
	if rec == nil {
		return p
	}
	if rec.Title != "" {
		p.Title = rec.Title
	}
	if rec.Tags != nil {
		p.Tags = rec.Tags
	}
	if rec.Blurb != "" {
		p.Blurb = rec.Blurb
	}
	if rec.Description != "" {
		p.Description = rec.Description
	}
	return p
}

// Initials derives a two-letter monogram from a title, used on generated
// posters and gallery cards.
//
// The first letters of the first two words are preferred; a one-word
// title falls back to its first two letters. Empty input yields "AI".
func Initials(title string) string {
	words := strings.Fields(strings.TrimSpace(title))

	first := "A"
	second := "I"
	if len(words) > 0 && len(words[0]) > 0 {
		first = string([]rune(words[0])[0])
	}
	switch {
	case len(words) > 1 && len(words[1]) > 0:
		second = string([]rune(words[1])[0])
	case len(words) > 0 && len([]rune(words[0])) > 1:
		second = string([]rune(words[0])[1])
	}

	return strings.ToUpper(first + second)
}

var baseKeyPattern = regexp.MustCompile(`(?i)^(ad_\d+)`)

// BaseKey extracts the logical base key from an object or file name.
//
// Example: "ad_01_finance.mp4" -> "ad_01". Names without the ad_NN shape
// fall back to the lowercased name without extension.
func BaseKey(name string) string {
	base := name
	if i := strings.LastIndexByte(base, '/'); i != -1 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i != -1 {
		base = base[:i]
	}
	if m := baseKeyPattern.FindString(base); m != "" {
		return strings.ToLower(m)
	}
	return strings.ToLower(base)
}

// Stem returns an object key without its directory prefix and extension.
func Stem(name string) string {
	if i := strings.LastIndexByte(name, '/'); i != -1 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i != -1 {
		name = name[:i]
	}
	return name
}
