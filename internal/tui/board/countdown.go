package board

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"discard/internal/expiry"
	"discard/internal/notes/data"
)

const idlePoll = time.Minute

// TickMsg is one countdown tick. Gen identifies the run that scheduled it.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// Countdown drives expiry checks while the board is visible. Ticks from a
// stopped or restarted run carry an old generation and are ignored.
type Countdown struct {
	gen     int
	running bool
}

// Start begins a new run and schedules its first tick after d
func (c *Countdown) Start(d time.Duration) tea.Cmd {
	c.gen++
	c.running = true
	return c.schedule(d)
}

// Stop ends the current run. Ticks already in flight are dropped on arrival.
func (c *Countdown) Stop() {
	c.gen++
	c.running = false
}

// Running reports whether a run is active
func (c *Countdown) Running() bool {
	return c.running
}

// Live reports whether msg belongs to the current run
func (c *Countdown) Live(msg TickMsg) bool {
	return c.running && msg.Gen == c.gen
}

// Next schedules the following tick of the current run
func (c *Countdown) Next(d time.Duration) tea.Cmd {
	if !c.running {
		return nil
	}
	return c.schedule(d)
}

func (c *Countdown) schedule(d time.Duration) tea.Cmd {
	gen := c.gen
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// nextPoll is the shortest poll interval over notes, or idlePoll when there
// are none.
func nextPoll(notes []data.Note, now time.Time) time.Duration {
	wait := idlePoll
	for _, n := range notes {
		if d := expiry.PollInterval(expiry.Remaining(n, now)); d < wait {
			wait = d
		}
	}
	return wait
}
