// Package classify turns raw ad transcripts into display metadata.
//
// The classifier is a pure, deterministic mapping: transcript text in,
// {title, tags, blurb, description, transcript} out. It scores the
// transcript against a fixed table of category keyword lists (presence,
// not frequency), keeps the top two categories, flags interview-style
// transcripts with a "UGC" tag, and selects hand-authored copy from the
// same table.
//
//	rec := classify.Classify("ad_01", transcriptText)
//	fmt.Println(rec.Title, rec.Tags)
//
// The keyword lists and copy are the knowledge base; extend them by
// adding table rows, not branches.
package classify
