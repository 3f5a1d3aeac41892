package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/oddlyoptic/admedia/internal/gcs"
	"github.com/oddlyoptic/admedia/internal/model"
)

// fakeStore is an in-memory BlobStore.
type fakeStore struct {
	objects    []gcs.Object
	blobs      map[string][]byte
	listErr    error
	listCalls  int
	fetchCalls []string
}

func (f *fakeStore) ListAll(ctx context.Context, prefix string) ([]gcs.Object, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []gcs.Object
	for _, obj := range f.objects {
		if len(obj.Name) >= len(prefix) && obj.Name[:len(prefix)] == prefix {
			out = append(out, obj)
		}
	}
	return out, nil
}

func (f *fakeStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	f.fetchCalls = append(f.fetchCalls, key)
	data, ok := f.blobs[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *fakeStore) ObjectURL(key string) string {
	return "https://store.example/bucket/" + key
}

func newResolver(store *fakeStore) *Resolver {
	return New(store, "ai-ads/videos", "ai-ads/json")
}

func TestResolveVideo_ExtensionPriority(t *testing.T) {
	store := &fakeStore{objects: []gcs.Object{
		{Name: "ai-ads/videos/ad_01.mov"},
		{Name: "ai-ads/videos/ad_01.mp4"},
	}}
	r := newResolver(store)

	got := r.ResolveVideo(context.Background(), "ad_01")
	if got.Name != "ai-ads/videos/ad_01.mp4" {
		t.Errorf("resolved %q, want mp4 preferred over mov", got.Name)
	}
}

func TestResolveVideo_LexicalTieBreak(t *testing.T) {
	store := &fakeStore{objects: []gcs.Object{
		{Name: "ai-ads/videos/ad_01_b.mp4"},
		{Name: "ai-ads/videos/ad_01_a.mp4"},
	}}
	r := newResolver(store)

	got := r.ResolveVideo(context.Background(), "ad_01")
	if got.Name != "ai-ads/videos/ad_01_a.mp4" {
		t.Errorf("resolved %q, want lexical first", got.Name)
	}
}

func TestResolveVideo_GuessedFallback(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
	}{
		{"listing error", &fakeStore{listErr: errors.New("unreachable")}},
		{"no objects", &fakeStore{}},
		{"no whitelisted extension", &fakeStore{objects: []gcs.Object{
			{Name: "ai-ads/videos/ad_01.txt"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResolver(tt.store)
			got := r.ResolveVideo(context.Background(), "ad_01")
			if got.Name != "ai-ads/videos/ad_01.mp4" {
				t.Errorf("resolved %q, want guessed key", got.Name)
			}
			if got.URL == "" {
				t.Error("guessed resolution must still carry a URL")
			}
		})
	}
}

func TestResolveVideo_CachedPerSession(t *testing.T) {
	store := &fakeStore{objects: []gcs.Object{{Name: "ai-ads/videos/ad_01.mp4"}}}
	r := newResolver(store)

	first := r.ResolveVideo(context.Background(), "ad_01")
	second := r.ResolveVideo(context.Background(), "ad_01")

	if first != second {
		t.Errorf("cached resolution differs: %+v vs %+v", first, second)
	}
	if store.listCalls != 1 {
		t.Errorf("listCalls = %d, want 1 (resolution cached)", store.listCalls)
	}
}

func TestResolveMetadata_CandidateOrder(t *testing.T) {
	store := &fakeStore{blobs: map[string][]byte{
		"ai-ads/json/ad_01_finance.json": []byte(`{"title":"From Stem"}`),
	}}
	r := newResolver(store)

	rec := r.ResolveMetadata(context.Background(), "ad_01", "ai-ads/videos/ad_01_finance.mp4")
	if rec == nil || rec.Title != "From Stem" {
		t.Fatalf("rec = %+v, want stem candidate record", rec)
	}

	// Base key candidate must be tried first.
	if len(store.fetchCalls) != 2 || store.fetchCalls[0] != "ai-ads/json/ad_01.json" {
		t.Errorf("fetch order = %v", store.fetchCalls)
	}
}

func TestResolveMetadata_BothFail(t *testing.T) {
	store := &fakeStore{}
	r := newResolver(store)

	if rec := r.ResolveMetadata(context.Background(), "ad_01", "ai-ads/videos/ad_01.mp4"); rec != nil {
		t.Errorf("rec = %+v, want nil", rec)
	}

	// The nil result is cached too: no refetch on the second call.
	calls := len(store.fetchCalls)
	r.ResolveMetadata(context.Background(), "ad_01", "ai-ads/videos/ad_01.mp4")
	if len(store.fetchCalls) != calls {
		t.Errorf("metadata refetched after a completed lookup")
	}
}

func TestResolveMetadata_MalformedJSONIgnored(t *testing.T) {
	store := &fakeStore{blobs: map[string][]byte{
		"ai-ads/json/ad_01.json":     []byte(`{not json`),
		"ai-ads/json/ad_01_alt.json": []byte(`{"blurb":"ok"}`),
	}}
	r := newResolver(store)

	rec := r.ResolveMetadata(context.Background(), "ad_01", "ai-ads/videos/ad_01_alt.mp4")
	if rec == nil || rec.Blurb != "ok" {
		t.Fatalf("rec = %+v, want fallthrough to second candidate", rec)
	}
}

func TestClose_DiscardsLateResults(t *testing.T) {
	store := &fakeStore{objects: []gcs.Object{{Name: "ai-ads/videos/ad_01.mp4"}}}
	r := newResolver(store)
	r.Close()

	// Resolution still returns a usable value to its caller.
	got := r.ResolveVideo(context.Background(), "ad_01")
	if got.Name == "" {
		t.Fatal("resolution after Close should still return a value")
	}

	// But nothing was cached: a later call hits the store again.
	r.ResolveVideo(context.Background(), "ad_01")
	if store.listCalls != 2 {
		t.Errorf("listCalls = %d, want 2 (no caching after Close)", store.listCalls)
	}
}

func TestVideoSource_FileOverride(t *testing.T) {
	store := &fakeStore{objects: []gcs.Object{{Name: "ai-ads/videos/ad_01.mp4"}}}
	r := newResolver(store)
	r.ResolveVideo(context.Background(), "ad_01")

	src := r.VideoSource("ad_01", &model.MetadataRecord{File: "ad_01_director_cut.mp4"})
	if src.Name != "ai-ads/videos/ad_01_director_cut.mp4" {
		t.Errorf("Name = %q, want file override applied", src.Name)
	}

	src = r.VideoSource("ad_01", nil)
	if src.Name != "ai-ads/videos/ad_01.mp4" {
		t.Errorf("Name = %q, want cached resolution", src.Name)
	}

	src = r.VideoSource("ad_99", nil)
	if src.Name != "ai-ads/videos/ad_99.mp4" {
		t.Errorf("Name = %q, want guessed key for unresolved base", src.Name)
	}
}
