package playback

import "time"

// DefaultRetryInterval is the cadence of the liveness retry loop.
const DefaultRetryInterval = 1200 * time.Millisecond

// Handle is an opaque reference to a mounted playable media element.
//
// Play may fail: autoplay denial and not-yet-buffered media are normal,
// recoverable conditions, and the controller swallows them. Pause on a
// local handle is synchronous and cannot fail.
type Handle interface {
	Play() error
	Pause()
	Playing() bool
}

// AttemptResult records the outcome of one playback attempt. Failures
// are never surfaced to callers — this exists so the swallow-and-retry
// behavior stays observable.
type AttemptResult struct {
	ID  string
	Err error
}

// OK reports whether the attempt started playback.
func (r AttemptResult) OK() bool { return r.Err == nil }

// Controller coordinates autoplay and pause across the registered set of
// muted, looping video previews.
//
// Policy: at most one handle plays at a time (best-effort), playback
// follows viewport visibility, and every denied attempt is swallowed and
// retried later via gestures, visibility regains, and the liveness tick.
//
// A Controller is owned by the view that creates it and must be driven
// from a single event loop; it does no locking. Tick is the explicit
// retry task: the owner schedules it every RetryInterval while the view
// is mounted and simply stops scheduling on teardown.
type Controller struct {
	autoplay bool

	handles map[string]Handle
	order   []string // registration order, for deterministic iteration
	visible map[string]bool

	unlocked bool

	// RetryInterval is how often the owner should call Tick. Injectable
	// so tests drive ticks directly instead of waiting on wall clocks.
	RetryInterval time.Duration

	lastAttempt map[string]AttemptResult
}

// New creates a Controller.
//
// autoplay is the session-wide autoplay permission, computed once from
// the reduced-motion preference: when the user prefers reduced motion,
// playback is fully gesture-driven.
func New(autoplay bool) *Controller {
	return &Controller{
		autoplay:      autoplay,
		handles:       make(map[string]Handle),
		visible:       make(map[string]bool),
		RetryInterval: DefaultRetryInterval,
		lastAttempt:   make(map[string]AttemptResult),
	}
}

// AutoplayPermitted reports the session-wide autoplay permission.
func (c *Controller) AutoplayPermitted() bool { return c.autoplay }

// Register associates a handle with an id; Register(id, nil)
// deregisters. Must be called on mount and unmount. Duplicate
// registration is last-write-wins; deregistering an unknown id is a
// no-op.
func (c *Controller) Register(id string, h Handle) {
	if h == nil {
		if _, ok := c.handles[id]; ok {
			delete(c.handles, id)
			delete(c.visible, id)
			for i, other := range c.order {
				if other == id {
					c.order = append(c.order[:i], c.order[i+1:]...)
					break
				}
			}
		}
		return
	}

	if _, ok := c.handles[id]; !ok {
		c.order = append(c.order, id)
	}
	c.handles[id] = h
}

// RequestPlay pauses every other playing handle, then attempts playback
// for id. Denial is swallowed: it is routinely expected before the first
// user gesture and never disables future attempts.
func (c *Controller) RequestPlay(id string) {
	if _, ok := c.handles[id]; !ok {
		return
	}
	c.pauseOthers(id)
	c.attempt(id)
}

// NotifyVisible reports that a player's container entered or left the
// viewport (any non-zero intersection counts as visible). Entering
// triggers playback when autoplay is permitted; leaving pauses the
// handle unconditionally.
func (c *Controller) NotifyVisible(id string, visible bool) {
	h, ok := c.handles[id]
	if !ok {
		return
	}

	c.visible[id] = visible
	if visible {
		if c.autoplay {
			c.RequestPlay(id)
		}
		return
	}
	h.Pause()
}

// Unlock is the autoplay-unlock fallback: the owner calls it on the
// first pointer-down, key-down, wheel, or touch-start anywhere on the
// page. The first call replays whichever handles are in view; later
// calls are no-ops.
func (c *Controller) Unlock() {
	if c.unlocked {
		return
	}
	c.unlocked = true
	c.replayVisible()
}

// Unlocked reports whether the one-shot gesture fallback has fired,
// letting the owner drop its document-level listeners.
func (c *Controller) Unlocked() bool { return c.unlocked }

// NotifyPageVisible reports foreground visibility of the whole page.
// Regaining the foreground re-attempts playback for the in-view handle.
func (c *Controller) NotifyPageVisible(visible bool) {
	if visible {
		c.replayVisible()
	}
}

// Tick is the liveness retry: while autoplay is permitted, it
// re-attempts playback for every registered handle that is not currently
// playing. This compensates for media that became ready after earlier
// attempts were denied. Attempts are pure redundancy — independent, and
// each safe to fail silently.
func (c *Controller) Tick() {
	if !c.autoplay {
		return
	}
	for _, id := range c.order {
		if !c.handles[id].Playing() {
			c.attempt(id)
		}
	}
}

// PointerEnter attempts playback for a hovered handle, displacing any
// other playing handle.
func (c *Controller) PointerEnter(id string) { c.RequestPlay(id) }

// Focus behaves like PointerEnter for keyboard focus.
func (c *Controller) Focus(id string) { c.RequestPlay(id) }

// PointerLeave pauses the handle, but only when autoplay is not
// permitted — otherwise visibility and the retry tick own play state.
func (c *Controller) PointerLeave(id string) { c.gesturePause(id) }

// Blur behaves like PointerLeave for keyboard focus loss.
func (c *Controller) Blur(id string) { c.gesturePause(id) }

// Activate toggles play/pause on direct activation (click/tap). It only
// applies when autoplay is not permitted; with autoplay on, activation
// is owned by the view (opening the modal).
func (c *Controller) Activate(id string) {
	if c.autoplay {
		return
	}
	h, ok := c.handles[id]
	if !ok {
		return
	}
	if h.Playing() {
		h.Pause()
		return
	}
	c.RequestPlay(id)
}

// PauseAll pauses every registered handle. Used when the modal opens.
func (c *Controller) PauseAll() {
	for _, id := range c.order {
		c.handles[id].Pause()
	}
}

func (c *Controller) gesturePause(id string) {
	if c.autoplay {
		return
	}
	if h, ok := c.handles[id]; ok {
		h.Pause()
	}
}

func (c *Controller) replayVisible() {
	for _, id := range c.order {
		if c.visible[id] {
			c.RequestPlay(id)
		}
	}
}

// pauseOthers enforces mutual exclusion. It runs synchronously before
// the new play attempt so two handles never overlap.
func (c *Controller) pauseOthers(id string) {
	for _, other := range c.order {
		if other == id {
			continue
		}
		if h := c.handles[other]; h.Playing() {
			h.Pause()
		}
	}
}

// attempt performs one playback attempt and records its result. The
// error never propagates further.
func (c *Controller) attempt(id string) {
	h, ok := c.handles[id]
	if !ok {
		return
	}
	c.lastAttempt[id] = AttemptResult{ID: id, Err: h.Play()}
}
