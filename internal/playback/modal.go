package playback

import "github.com/oddlyoptic/admedia/internal/model"

// Presenter owns the single full-screen modal overlay.
//
// At most one project is active; nil means no modal is shown. Opening
// suspends background scrolling and pauses every preview; closing
// restores scroll and reports which control should regain focus.
type Presenter struct {
	ctrl       *Controller
	lockScroll func(locked bool)

	active    *model.Project
	source    model.ResolvedVideo
	triggerID string
}

// NewPresenter creates a Presenter bound to the view's controller.
// lockScroll may be nil when the host has no scroll to suspend.
func NewPresenter(ctrl *Controller, lockScroll func(locked bool)) *Presenter {
	return &Presenter{ctrl: ctrl, lockScroll: lockScroll}
}

// Open shows the modal for a project. source is the video to play and
// triggerID identifies the control that opened the modal, so Close can
// hand focus back to it. Opening over an already-open modal replaces it
// but keeps the original trigger's focus return.
func (p *Presenter) Open(project model.Project, source model.ResolvedVideo, triggerID string) {
	if p.active == nil {
		p.triggerID = triggerID
		if p.lockScroll != nil {
			p.lockScroll(true)
		}
	}
	p.active = &project
	p.source = source
	p.ctrl.PauseAll()
}

// Close dismisses the modal and returns the id of the control that
// should regain focus ("" when nothing is open).
func (p *Presenter) Close() string {
	if p.active == nil {
		return ""
	}
	trigger := p.triggerID
	p.active = nil
	p.triggerID = ""
	p.source = model.ResolvedVideo{}
	if p.lockScroll != nil {
		p.lockScroll(false)
	}
	return trigger
}

// Active returns the project currently shown, or nil.
func (p *Presenter) Active() *model.Project { return p.active }

// Source returns the video source for the active project.
func (p *Presenter) Source() model.ResolvedVideo { return p.source }
