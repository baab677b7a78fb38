package component

import "github.com/SanoKhan22/CricketAR-sub000/session"

// MatchScoreComponent keeps the innings totals and ball-by-ball history. Only
// the delivery tracker mutates it, and only at delivery completion.
type MatchScoreComponent struct {
	mSession *session.Session

	runs    int
	balls   int
	wickets int
	history []session.HistoryEntry
}

func NewMatchScoreComponent(s *session.Session) *MatchScoreComponent {
	return &MatchScoreComponent{mSession: s}
}

// AddRuns records a completed delivery worth the given runs.
func (c *MatchScoreComponent) AddRuns(runs int) {
	c.runs += runs
	c.balls++
	c.history = append(c.history, session.HistoryEntry{Runs: runs})
}

// AddWicket records a dismissal. Wickets never decrease and stay capped at
// the configured limit.
func (c *MatchScoreComponent) AddWicket() {
	c.balls++
	if c.wickets < c.mSession.Config().Match.MaxWickets {
		c.wickets++
	}
	c.history = append(c.history, session.HistoryEntry{Dismissal: true})
}

func (c *MatchScoreComponent) Runs() int {
	return c.runs
}

func (c *MatchScoreComponent) Balls() int {
	return c.balls
}

func (c *MatchScoreComponent) Wickets() int {
	return c.wickets
}

// History returns the ball-by-ball record, oldest first.
func (c *MatchScoreComponent) History() []session.HistoryEntry {
	out := make([]session.HistoryEntry, len(c.history))
	copy(out, c.history)
	return out
}

// HistoryMarks serialises the history with dismissals as HistoryDismissal.
func (c *MatchScoreComponent) HistoryMarks() []int {
	marks := make([]int, 0, len(c.history))
	for _, e := range c.history {
		if e.Dismissal {
			marks = append(marks, session.HistoryDismissal)
			continue
		}
		marks = append(marks, e.Runs)
	}
	return marks
}

// InningsOver reports whether the wicket cap was reached.
func (c *MatchScoreComponent) InningsOver() bool {
	return c.wickets >= c.mSession.Config().Match.MaxWickets
}

// Reset clears the match state for a fresh innings.
func (c *MatchScoreComponent) Reset() {
	c.runs = 0
	c.balls = 0
	c.wickets = 0
	c.history = nil
}
