// Package tui provides a Bubble Tea terminal gallery for the portfolio.
//
// The gallery renders the project cards in a scrollable column and owns
// the playback event loop: card visibility, cursor focus, activation,
// the autoplay unlock gesture, and the periodic liveness tick all feed
// the playback controller from Update. Card sources and metadata
// resolve in the background; cards show a spinner until their blob is
// known.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oddlyoptic/admedia/internal/config"
	"github.com/oddlyoptic/admedia/internal/gcs"
	"github.com/oddlyoptic/admedia/internal/model"
	"github.com/oddlyoptic/admedia/internal/playback"
	"github.com/oddlyoptic/admedia/internal/resolve"
)

// Styles for the gallery
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	playingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	monogramStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3A3F4B")).
			Padding(0, 2)

	cursorCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("#4ECDC4"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Padding(1, 3)
)

// cardLines is the rendered height of one card including its border.
const cardLines = 5

// ReducedMotionEnv disables autoplay when set to any non-empty value,
// overriding the settings file.
const ReducedMotionEnv = "ADMEDIA_REDUCED_MOTION"

// cardHandle adapts one gallery card to the playback controller.
//
// Play is denied until the card's video source has resolved; the
// controller records the failure and the liveness tick retries once
// the source is known.
type cardHandle struct {
	ready   bool
	playing bool
}

func (h *cardHandle) Play() error {
	if !h.ready {
		return fmt.Errorf("source not yet resolved")
	}
	h.playing = true
	return nil
}

func (h *cardHandle) Pause() { h.playing = false }

func (h *cardHandle) Playing() bool { return h.playing }

// Model is the Bubble Tea model for the gallery.
type Model struct {
	settings  *config.Settings
	ctrl      *playback.Controller
	resolver  *resolve.Resolver
	presenter *playback.Presenter
	spinner   spinner.Model

	projects []model.Project
	handles  map[string]*cardHandle
	resolved map[string]bool
	visible  map[string]bool

	cursor int
	top    int

	width  int
	height int
}

// NewModel creates a gallery over the given resolver and settings.
func NewModel(settings *config.Settings, resolver *resolve.Resolver) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	autoplay := !settings.ReducedMotion && os.Getenv(ReducedMotionEnv) == ""
	ctrl := playback.New(autoplay)

	m := Model{
		settings:  settings,
		ctrl:      ctrl,
		resolver:  resolver,
		presenter: playback.NewPresenter(ctrl, nil),
		spinner:   sp,
		projects:  model.BuiltinProjects(),
		handles:   make(map[string]*cardHandle),
		resolved:  make(map[string]bool),
		visible:   make(map[string]bool),
	}

	for _, p := range m.projects {
		h := &cardHandle{}
		m.handles[p.ID] = h
		ctrl.Register(p.ID, h)
	}

	return m
}

// Message types
type (
	// resolvedMsg is sent when a card's blob and metadata are known.
	resolvedMsg struct {
		base   string
		record *model.MetadataRecord
	}

	// tickMsg drives the playback liveness retry.
	tickMsg struct{}
)

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.tick()}
	for _, p := range m.projects {
		cmds = append(cmds, m.resolveProject(p.VideoBase))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncVisibility()
		return m, nil

	case tea.KeyMsg:
		// Any keypress is a user gesture; the first one unlocks
		// autoplay for sessions where the host denied it. Gesture-only
		// sessions have nothing to unlock.
		if m.ctrl.AutoplayPermitted() {
			m.ctrl.Unlock()
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.resolver.Close()
			return m, tea.Quit

		case "esc":
			if m.presenter.Active() != nil {
				trigger := m.presenter.Close()
				m.focusCard(trigger)
				m.syncVisibility()
			}

		case "up", "k":
			m.moveCursor(-1)

		case "down", "j":
			m.moveCursor(1)

		case "enter":
			if m.presenter.Active() == nil {
				m.openModal()
			}

		case " ":
			if m.presenter.Active() == nil {
				m.ctrl.Activate(m.currentID())
			}
		}

	case tea.FocusMsg:
		m.ctrl.NotifyPageVisible(true)

	case tea.BlurMsg:
		m.ctrl.NotifyPageVisible(false)

	case tickMsg:
		m.ctrl.Tick()
		cmds = append(cmds, m.tick())

	case resolvedMsg:
		m.applyResolved(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tick schedules the next playback liveness pass.
func (m Model) tick() tea.Cmd {
	interval := m.ctrl.RetryInterval
	if interval <= 0 {
		interval = playback.DefaultRetryInterval
	}
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// resolveProject resolves a card's blob and metadata in the background.
func (m Model) resolveProject(base string) tea.Cmd {
	resolver := m.resolver
	return func() tea.Msg {
		ctx := context.Background()
		video := resolver.ResolveVideo(ctx, base)
		record := resolver.ResolveMetadata(ctx, base, video.Name)
		return resolvedMsg{base: base, record: record}
	}
}

// applyResolved merges a metadata record into its project and marks the
// card playable.
func (m *Model) applyResolved(msg resolvedMsg) {
	for i, p := range m.projects {
		if p.VideoBase != msg.base {
			continue
		}
		m.projects[i] = p.Merged(msg.record)
		m.resolved[p.VideoBase] = true
		if h, ok := m.handles[p.ID]; ok {
			h.ready = true
		}
		return
	}
}

func (m Model) currentID() string {
	if len(m.projects) == 0 {
		return ""
	}
	return m.projects[m.cursor].ID
}

// moveCursor shifts card focus, scrolling the window when the cursor
// runs off its edge. The modal suspends scrolling entirely.
func (m *Model) moveCursor(delta int) {
	if m.presenter.Active() != nil {
		return
	}

	next := m.cursor + delta
	if next < 0 || next >= len(m.projects) {
		return
	}

	m.ctrl.Blur(m.currentID())
	m.cursor = next
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+m.rows() {
		m.top = m.cursor - m.rows() + 1
	}
	m.syncVisibility()
	m.ctrl.Focus(m.currentID())
}

// focusCard returns the cursor to the card that opened the modal.
func (m *Model) focusCard(id string) {
	for i, p := range m.projects {
		if p.ID == id {
			m.cursor = i
			if m.cursor < m.top || m.cursor >= m.top+m.rows() {
				m.top = m.cursor
			}
			return
		}
	}
}

// openModal presents the card under the cursor.
func (m *Model) openModal() {
	if len(m.projects) == 0 {
		return
	}
	p := m.projects[m.cursor]
	record := m.resolver.ResolveMetadata(context.Background(), p.VideoBase, "")
	source := m.resolver.VideoSource(p.VideoBase, record)
	m.presenter.Open(p, source, p.ID)
	m.syncVisibility()
}

// rows returns how many cards fit in the current window.
func (m Model) rows() int {
	if m.height <= 0 {
		return len(m.projects)
	}
	n := (m.height - 4) / cardLines
	if n < 1 {
		n = 1
	}
	return n
}

// syncVisibility reports card enter/exit transitions to the controller.
// While the modal is open every card counts as off-screen.
func (m *Model) syncVisibility() {
	modalOpen := m.presenter.Active() != nil
	for i, p := range m.projects {
		inWindow := !modalOpen && i >= m.top && i < m.top+m.rows()
		if inWindow != m.visible[p.ID] {
			m.visible[p.ID] = inWindow
			m.ctrl.NotifyVisible(p.ID, inWindow)
		}
	}
}

// View renders the gallery.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎬 AI Ad Gallery"))
	b.WriteString("\n")

	if active := m.presenter.Active(); active != nil {
		b.WriteString(m.viewModal(*active))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("esc: close"))
		return b.String()
	}

	end := m.top + m.rows()
	if end > len(m.projects) {
		end = len(m.projects)
	}
	for i := m.top; i < end; i++ {
		b.WriteString(m.viewCard(i))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(m.helpText()))
	return b.String()
}

func (m Model) viewCard(i int) string {
	p := m.projects[i]
	h := m.handles[p.ID]

	var status string
	switch {
	case !m.resolved[p.VideoBase]:
		status = m.spinner.View() + dimStyle.Render(" resolving…")
	case h != nil && h.playing:
		status = playingStyle.Render("▶ playing")
	default:
		status = dimStyle.Render("⏸ paused")
	}

	var b strings.Builder
	b.WriteString(monogramStyle.Render(model.Initials(p.Title)))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(p.Title))
	b.WriteString("\n")
	b.WriteString(tagStyle.Render(strings.Join(p.Tags, " · ")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(p.Blurb))
	b.WriteString("\n")
	b.WriteString(status)

	style := cardStyle
	if i == m.cursor {
		style = cursorCardStyle
	}
	return style.Render(b.String())
}

func (m Model) viewModal(p model.Project) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(p.Title))
	b.WriteString("\n")
	b.WriteString(tagStyle.Render(strings.Join(p.Tags, " · ")))
	b.WriteString("\n\n")
	b.WriteString(p.Description)
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.presenter.Source().URL))

	return modalStyle.Render(b.String())
}

func (m Model) helpText() string {
	base := "↑/↓: browse • enter: open • q: quit"
	if !m.ctrl.AutoplayPermitted() {
		base = "↑/↓: browse • space: play/pause • enter: open • q: quit"
	}
	return base
}

// Run starts the gallery application.
func Run(settings *config.Settings) error {
	client := gcs.NewClient(settings.Bucket)
	resolver := resolve.New(client, settings.VideoPrefix, settings.JSONPrefix)
	defer resolver.Close()

	p := tea.NewProgram(NewModel(settings, resolver), tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}
