package classify

import (
	"reflect"
	"testing"
)

func TestClassify_BeautyTranscript(t *testing.T) {
	rec := Classify("ad_03", "This foundation blends like nothing else, zero cakey feel.")

	if !containsTag(rec.Tags, "Beauty") {
		t.Errorf("Tags = %v, want Beauty included", rec.Tags)
	}
	if rec.Title != "Makeup — Light, Fast, Effortless" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Blurb != "Featherlight coverage with quick, foolproof application." {
		t.Errorf("Blurb = %q", rec.Blurb)
	}
	if rec.Transcript != "This foundation blends like nothing else, zero cakey feel." {
		t.Errorf("Transcript not carried through: %q", rec.Transcript)
	}
}

func TestClassify_InterviewStyle(t *testing.T) {
	rec := Classify("ad_06", "What's the secret? I just... I listened.")
	if !containsTag(rec.Tags, "UGC") {
		t.Errorf("Tags = %v, want UGC included", rec.Tags)
	}
}

func TestClassify_EmptyTranscript(t *testing.T) {
	rec := Classify("ad_01", "")

	if len(rec.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", rec.Tags)
	}
	if rec.Tags == nil {
		t.Error("Tags should be non-nil for JSON output")
	}
	if rec.Title != "Ad  01" {
		t.Errorf("Title = %q, want fallback %q", rec.Title, "Ad  01")
	}
	if rec.Blurb != fallbackBlurb {
		t.Errorf("Blurb = %q, want generic fallback", rec.Blurb)
	}
	want := fallbackSentence1 + " " + fallbackSentence2
	if rec.Description != want {
		t.Errorf("Description = %q, want %q", rec.Description, want)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	transcript := "Order now in the app, download for offers. What's not to love?"
	a := Classify("ad_02", transcript)
	b := Classify("ad_02", transcript)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two runs differ:\n%+v\n%+v", a, b)
	}
}

func TestDetectTags_PresenceNotFrequency(t *testing.T) {
	once := DetectTags("makeup")
	thrice := DetectTags("makeup makeup makeup")
	if !reflect.DeepEqual(once, thrice) {
		t.Errorf("repetition changed tags: %v vs %v", once, thrice)
	}
	if !reflect.DeepEqual(once, []string{"Beauty"}) {
		t.Errorf("DetectTags = %v, want [Beauty]", once)
	}
}

func TestDetectTags_CapTwoNonUGC(t *testing.T) {
	// Hits Beauty, Health, Home, and Fashion keywords plus a question mark.
	transcript := "makeup foundation gummy greens vitamin home kitchen transform style outfit?"
	tags := DetectTags(transcript)

	nonUGC := 0
	for _, tag := range tags {
		if tag != "UGC" {
			nonUGC++
		}
	}
	if nonUGC > 2 {
		t.Errorf("non-UGC tag count = %d (%v), want <= 2", nonUGC, tags)
	}
	if !containsTag(tags, "UGC") {
		t.Errorf("Tags = %v, want UGC appended", tags)
	}
}

func TestDetectTags_RankOrder(t *testing.T) {
	// Two Health keywords beat one Beauty keyword.
	tags := DetectTags("a gummy with greens and some mascara")
	if !reflect.DeepEqual(tags, []string{"Health", "Beauty"}) {
		t.Errorf("DetectTags = %v, want [Health Beauty]", tags)
	}
}

func TestDetectTags_TieKeepsTableOrder(t *testing.T) {
	// One keyword each for Beauty and Fitness; Beauty sits first in the table.
	tags := DetectTags("mascara at the gym")
	if !reflect.DeepEqual(tags, []string{"Beauty", "Fitness"}) {
		t.Errorf("DetectTags = %v, want [Beauty Fitness]", tags)
	}
}

func TestDetectTags_InterviewSignals(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       bool
	}{
		{"question mark", "Totally changed my mornings?", true},
		{"leading dash", "intro line\n- a quoted reply", true},
		{"contraction", "so what's next for the brand", true},
		{"pronoun", "you will love this", true},
		{"uppercase pronoun only", "I LOVED IT", false},
		{"plain copy", "Premium quality. Ships fast.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := containsTag(DetectTags(tt.transcript), "UGC")
			if got != tt.want {
				t.Errorf("UGC = %v, want %v for %q", got, tt.want, tt.transcript)
			}
		})
	}
}

func TestDescription_MultipleCategoriesAppendPairs(t *testing.T) {
	// Beauty and Fitness both match; each contributes its sentence pair in
	// table order.
	rec := Classify("ad_04", "mascara and a workout")
	want := "Lightweight coverage that feels like nothing. " +
		"Quick, foolproof application designed to save time. " +
		"Beat-matched motion that aligns benefits to rhythm. " +
		"Energy without clutter so messages always land."
	if rec.Description != want {
		t.Errorf("Description = %q\nwant %q", rec.Description, want)
	}
}

func TestClassify_FoodDeliveryFallsBackToGenericCopy(t *testing.T) {
	rec := Classify("ad_02", "download the app and order food delivery for your cravings")

	if !containsTag(rec.Tags, "Food Delivery") {
		t.Fatalf("Tags = %v, want Food Delivery", rec.Tags)
	}
	// Food Delivery has no authored copy, so the cascades fall through.
	if rec.Title != "Ad  02" {
		t.Errorf("Title = %q, want base-key fallback", rec.Title)
	}
	if rec.Blurb != fallbackBlurb {
		t.Errorf("Blurb = %q, want generic fallback", rec.Blurb)
	}
}

func TestFallbackTitle(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"ad_01", "Ad  01"},
		{"promo_clip", "Promo clip"},
		{"ad_teaser", "Ad teaser"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			if got := FallbackTitle(tt.base); got != tt.want {
				t.Errorf("FallbackTitle(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
