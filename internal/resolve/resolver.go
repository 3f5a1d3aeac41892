package resolve

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/oddlyoptic/admedia/internal/gcs"
	"github.com/oddlyoptic/admedia/internal/model"
)

// allowedExts is the container whitelist, in priority order: when several
// objects share a base key, the earlier extension wins.
var allowedExts = []string{"mp4", "webm", "mov", "m4v"}

// BlobStore is the read-only bucket surface the resolver needs.
// *gcs.Client satisfies it.
type BlobStore interface {
	ListAll(ctx context.Context, prefix string) ([]gcs.Object, error)
	Fetch(ctx context.Context, key string) ([]byte, error)
	ObjectURL(key string) string
}

// Resolver maps logical base keys to concrete video blobs and their
// optional metadata records.
//
// Both resolutions are idempotent and cached for the session: once a
// base resolves, it is never re-fetched and never invalidated. All
// failures degrade silently — ResolveVideo always returns a usable
// (possibly guessed) URL, and ResolveMetadata returns nil when no record
// can be fetched and parsed.
//
// Close marks the owning view as torn down; results that arrive
// afterwards are discarded instead of cached.
type Resolver struct {
	store       BlobStore
	videoPrefix string
	jsonPrefix  string

	mu     sync.Mutex
	videos map[string]model.ResolvedVideo
	meta   map[string]*model.MetadataRecord
	// metaDone marks bases whose metadata lookup finished, including
	// lookups that found nothing.
	metaDone map[string]bool
	closed   bool
}

// New creates a Resolver over the given store and bucket prefixes.
func New(store BlobStore, videoPrefix, jsonPrefix string) *Resolver {
	return &Resolver{
		store:       store,
		videoPrefix: videoPrefix,
		jsonPrefix:  jsonPrefix,
		videos:      make(map[string]model.ResolvedVideo),
		meta:        make(map[string]*model.MetadataRecord),
		metaDone:    make(map[string]bool),
	}
}

// Close tears the resolver down. Pending resolutions still return values
// to their callers, but nothing is cached afterwards.
func (r *Resolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// ResolveVideo resolves a base key to a concrete blob.
//
// It lists objects under <videoPrefix>/<base>, keeps whitelisted
// container extensions, and picks the first by extension priority
// (mp4 > webm > mov > m4v) then lexical order. When the listing fails or
// yields nothing, it falls back to the guessed key
// <videoPrefix>/<base>.mp4. The returned URL may 404 later; that
// surfaces only in the player, never here.
func (r *Resolver) ResolveVideo(ctx context.Context, base string) model.ResolvedVideo {
	r.mu.Lock()
	if cached, ok := r.videos[base]; ok {
		r.mu.Unlock()
		return cached
	}
	r.mu.Unlock()

	resolved := r.lookupVideo(ctx, base)

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.closed {
		r.videos[base] = resolved
	}
	return resolved
}

func (r *Resolver) lookupVideo(ctx context.Context, base string) model.ResolvedVideo {
	prefixPath := r.videoPrefix + "/" + base

	objects, err := r.store.ListAll(ctx, prefixPath)
	if err != nil {
		return r.guessed(base)
	}

	var names []string
	for _, obj := range objects {
		if strings.HasPrefix(obj.Name, prefixPath) && extRank(obj.Name) != len(allowedExts) {
			names = append(names, obj.Name)
		}
	}
	if len(names) == 0 {
		return r.guessed(base)
	}

	sort.Slice(names, func(i, j int) bool {
		ri, rj := extRank(names[i]), extRank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})

	return model.ResolvedVideo{URL: r.store.ObjectURL(names[0]), Name: names[0]}
}

func (r *Resolver) guessed(base string) model.ResolvedVideo {
	name := r.videoPrefix + "/" + base + ".mp4"
	return model.ResolvedVideo{URL: r.store.ObjectURL(name), Name: name}
}

// ResolveMetadata fetches the metadata record for a base key.
//
// Two candidate keys are tried in order: the logical base, then the
// resolved blob's filename without extension. The first key that both
// fetches and parses wins. Returns nil when neither does; fetch and
// parse failures are treated identically.
func (r *Resolver) ResolveMetadata(ctx context.Context, base, resolvedName string) *model.MetadataRecord {
	r.mu.Lock()
	if r.metaDone[base] {
		rec := r.meta[base]
		r.mu.Unlock()
		return rec
	}
	r.mu.Unlock()

	rec := r.lookupMetadata(ctx, base, resolvedName)

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.closed {
		r.meta[base] = rec
		r.metaDone[base] = true
	}
	return rec
}

func (r *Resolver) lookupMetadata(ctx context.Context, base, resolvedName string) *model.MetadataRecord {
	candidates := []string{r.jsonPrefix + "/" + base + ".json"}
	if stem := model.Stem(resolvedName); stem != "" && stem != base {
		candidates = append(candidates, r.jsonPrefix+"/"+stem+".json")
	}

	for _, key := range candidates {
		data, err := r.store.Fetch(ctx, key)
		if err != nil {
			continue
		}
		var rec model.MetadataRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		return &rec
	}
	return nil
}

// VideoSource returns the blob to play for a base, applying the
// record's file override when present. The base must have been resolved
// already; unresolved bases get the guessed key.
func (r *Resolver) VideoSource(base string, rec *model.MetadataRecord) model.ResolvedVideo {
	if rec != nil && rec.File != "" {
		name := r.videoPrefix + "/" + rec.File
		return model.ResolvedVideo{URL: r.store.ObjectURL(name), Name: name}
	}

	r.mu.Lock()
	cached, ok := r.videos[base]
	r.mu.Unlock()
	if ok {
		return cached
	}
	return r.guessed(base)
}

// extRank returns the priority index of a name's extension, or
// len(allowedExts) when the extension is not whitelisted.
func extRank(name string) int {
	lower := strings.ToLower(name)
	i := strings.LastIndexByte(lower, '.')
	if i == -1 {
		return len(allowedExts)
	}
	ext := lower[i+1:]
	for rank, allowed := range allowedExts {
		if ext == allowed {
			return rank
		}
	}
	return len(allowedExts)
}
