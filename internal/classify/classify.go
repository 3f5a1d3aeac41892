package classify

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Result is the ad metadata derived from a transcript.
//
// Classification is closed-form and side-effect free: identical inputs
// always yield identical Results. Tags is never nil.
type Result struct {
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Blurb       string   `json:"blurb"`
	Description string   `json:"description"`
	Transcript  string   `json:"transcript"`
}

// category is one row of the knowledge base.
//
// Keywords score the transcript (presence, not frequency). Headline and
// Blurb feed the first-match cascades; Sentences feed the description,
// where every matching category contributes its pair. Rows with empty
// copy fields (Food Delivery) participate in tagging only.
type category struct {
	tag       string
	keywords  []string
	headline  string
	blurb     string
	sentences [2]string
}

// categories is ordered: the order is both the tie-break for equal scores
// and the priority of the title/blurb/description cascades.
var categories = []category{
	{
		tag:      "Beauty",
		keywords: []string{"makeup", "foundation", "blend", "concealer", "mascara", "lip", "cakey"},
		headline: "Makeup — Light, Fast, Effortless",
		blurb:    "Featherlight coverage with quick, foolproof application.",
		sentences: [2]string{
			"Lightweight coverage that feels like nothing.",
			"Quick, foolproof application designed to save time.",
		},
	},
	{
		tag:      "Hearing",
		keywords: []string{"hearing", "ear", "hearing aid", "audiologist", "prescription"},
		headline: "Hearing Aids — Clear, Modern, Subtle",
		blurb:    "Clear, discreet hearing support without the hassle.",
		sentences: [2]string{
			"Modern hearing help without the hassle or stigma.",
			"Clear sound, discreet form, and no prescriptions.",
		},
	},
	{
		tag:      "Learning",
		keywords: []string{"learn", "learning", "class", "study", "memorized", "read", "questions"},
		headline: "Learning — It Listens Back",
		blurb:    "Adaptive learning that listens and meets you where you are.",
		sentences: [2]string{
			"Adaptive, human-centered learning that “listens back”.",
			"Built for clarity, momentum, and real understanding.",
		},
	},
	{
		tag:      "Finance",
		keywords: []string{"expense", "expenses", "ledger", "invoice", "receipts", "spreadsheets"},
		headline: "Expenses — Ditch the Spreadsheets",
		blurb:    "Automated expense capture—goodbye manual spreadsheets.",
		sentences: [2]string{
			"Automates tracking so you can ditch manual spreadsheets.",
			"Fast, reliable capture that keeps budgets honest.",
		},
	},
	{
		tag:      "Health",
		keywords: []string{"gummy", "greens", "healthy", "nutrition", "vitamin", "salad"},
		headline: "Greens Gummies — Snackable Wellness",
		blurb:    "Daily greens made easy—tasty and convenient.",
		sentences: [2]string{
			"Daily greens made easy—no juicers, no fuss.",
			"Great taste with the micronutrients you actually need.",
		},
	},
	{
		// Tagging only: no hand-authored copy for this category.
		tag:      "Food Delivery",
		keywords: []string{"foodie", "delivery", "order", "offers", "app", "download", "cravings", "eat", "food"},
	},
	{
		tag:      "Home",
		keywords: []string{"home", "room", "kitchen", "before", "after", "transform", "light"},
		headline: "Before/After — Satisfying Transformations",
		blurb:    "Satisfying before/after reveals that highlight real change.",
		sentences: [2]string{
			"Satisfying before/after reveals that make benefits obvious.",
			"Clean angles and hierarchy for instant comprehension.",
		},
	},
	{
		tag:      "Fashion",
		keywords: []string{"bag", "handbag", "shoe", "sneaker", "style", "outfit"},
		headline: "Style — Color That Pops",
		blurb:    "High-contrast styling engineered to stop the scroll.",
		sentences: [2]string{
			"High-contrast color and crisp crops for scroll-stopping impact.",
			"Elevated styling that still reads in under a second.",
		},
	},
	{
		tag:      "Fitness",
		keywords: []string{"workout", "fit", "gym", "morph", "pulse"},
		headline: "Motion — Benefits In Sync",
		blurb:    "Benefit-led motion synced to a crisp rhythm.",
		sentences: [2]string{
			"Beat-matched motion that aligns benefits to rhythm.",
			"Energy without clutter so messages always land.",
		},
	},
}

const (
	fallbackBlurb = "A clear, benefits-first story designed for fast feeds."

	fallbackSentence1 = "A clear, attention-worthy narrative tuned for fast feeds."
	fallbackSentence2 = "Designed to communicate benefits at a glance."

	ugcTag = "UGC"
)

// interviewPattern flags "interview-like" transcripts: a what's
// contraction, a question mark, a leading dash on any line, or a
// first/second-person pronoun as a whole word. Deliberately loose, and
// case-sensitive against the raw text.
var interviewPattern = regexp.MustCompile(`(?m)\bwhat(?:'|’)s\b|\?|^-|\b(i|you|we)\b`)

// Classify derives ad metadata from a transcript.
//
// base is the logical base key (e.g. "ad_01"), used only for the
// fallback title when no category matches.
func Classify(base, transcript string) Result {
	tags := DetectTags(transcript)
	return Result{
		Title:       titleFor(base, tags),
		Tags:        tags,
		Blurb:       blurbFor(tags),
		Description: descriptionFor(tags),
		Transcript:  transcript,
	}
}

// DetectTags scores the transcript against the category table and
// returns at most two category tags (rank order, score > 0), plus "UGC"
// when the transcript looks interview-like.
//
// Scoring is presence-based: each keyword counts at most once no matter
// how often it occurs. Ties keep table order.
func DetectTags(transcript string) []string {
	lower := strings.ToLower(transcript)

	type scored struct {
		tag   string
		score int
	}
	scores := make([]scored, 0, len(categories))
	for _, c := range categories {
		n := 0
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				n++
			}
		}
		scores = append(scores, scored{tag: c.tag, score: n})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	tags := make([]string, 0, 3)
	for _, s := range scores {
		if s.score == 0 || len(tags) == 2 {
			break
		}
		tags = append(tags, s.tag)
	}

	if interviewPattern.MatchString(transcript) {
		tags = append(tags, ugcTag)
	}

	return dedupe(tags)
}

func titleFor(base string, tags []string) string {
	for _, c := range categories {
		if c.headline != "" && contains(tags, c.tag) {
			return c.headline
		}
	}
	return FallbackTitle(base)
}

func blurbFor(tags []string) string {
	for _, c := range categories {
		if c.blurb != "" && contains(tags, c.tag) {
			return c.blurb
		}
	}
	return fallbackBlurb
}

func descriptionFor(tags []string) string {
	var points []string
	for _, c := range categories {
		if c.sentences[0] != "" && contains(tags, c.tag) {
			points = append(points, c.sentences[0], c.sentences[1])
		}
	}
	if len(points) == 0 {
		points = append(points, fallbackSentence1, fallbackSentence2)
	}
	return strings.Join(points, " ")
}

var (
	adWordPattern   = regexp.MustCompile(`(?i)\bad\b`)
	twoDigitPattern = regexp.MustCompile(`\b\d{2}\b`)
)

// FallbackTitle prettifies a base key into a title when no category
// matched: underscores become spaces, the first "ad" word is
// capitalized, a space is inserted before the first two-digit numeral,
// and the first letter is upper-cased.
func FallbackTitle(base string) string {
	pretty := strings.ReplaceAll(base, "_", " ")
	pretty = replaceFirst(adWordPattern, pretty, "Ad")
	if loc := twoDigitPattern.FindStringIndex(pretty); loc != nil {
		pretty = pretty[:loc[0]] + " " + pretty[loc[0]:]
	}
	return capitalize(pretty)
}

// replaceFirst replaces only the first match, mirroring a non-global
// regexp replace.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
