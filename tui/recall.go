// Package tui provides a Bubble Tea terminal UI for Adventure.
package tui

// Recall keeps recently submitted input lines for Up/Down navigation.
// While browsing, the line the player was typing is kept as a draft and
// restored when they step past the newest entry.
type Recall struct {
	lines []string
	limit int
	pos   int // len(lines) when not browsing
	draft string
}

// NewRecall creates a buffer holding at most limit lines.
func NewRecall(limit int) *Recall {
	return &Recall{limit: limit}
}

// Add records a submitted line and stops browsing. Repeats of the newest
// line are not stored twice.
func (r *Recall) Add(line string) {
	if n := len(r.lines); n == 0 || r.lines[n-1] != line {
		r.lines = append(r.lines, line)
		if len(r.lines) > r.limit {
			r.lines = r.lines[len(r.lines)-r.limit:]
		}
	}
	r.Reset()
}

// Older moves one entry back. current is the text in the input field and
// is saved as the draft when browsing starts. At the oldest entry it stays
// there.
func (r *Recall) Older(current string) (string, bool) {
	if len(r.lines) == 0 {
		return "", false
	}
	if r.pos == len(r.lines) {
		r.draft = current
	}
	if r.pos > 0 {
		r.pos--
	}
	return r.lines[r.pos], true
}

// Newer moves one entry forward. Stepping past the newest entry returns the
// draft and ends browsing; it reports false when not browsing.
func (r *Recall) Newer() (string, bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	r.pos++
	if r.pos == len(r.lines) {
		return r.draft, true
	}
	return r.lines[r.pos], true
}

// Reset ends browsing and discards the draft.
func (r *Recall) Reset() {
	r.pos = len(r.lines)
	r.draft = ""
}
