// Package playback coordinates video preview playback across the
// gallery's simultaneously mounted players.
//
// # Controller
//
// Controller tracks every mounted handle and enforces the playback
// policy: at most one preview plays at a time, playback follows viewport
// visibility, and autoplay denial is treated as a normal, recoverable
// condition — swallowed, then retried on the first user gesture, on
// foreground regain, and on a periodic liveness tick.
//
//	ctrl := playback.New(!reducedMotion)
//	ctrl.Register("neon-soda", handle)
//	ctrl.NotifyVisible("neon-soda", true)
//	...
//	ctrl.Register("neon-soda", nil) // unmount
//
// The controller is owned by the view that creates it and must be driven
// from that view's event loop; it does no locking. The retry tick is an
// explicit scheduled task: call Tick every RetryInterval and stop on
// teardown.
//
// # Presenter
//
// Presenter owns the single modal overlay: one active project at most,
// background scroll suspended while open, focus returned to the opening
// control on close.
package playback
