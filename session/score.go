package session

// HistoryDismissal marks a wicket in the serialised ball-by-ball history.
const HistoryDismissal = -1

// HistoryEntry is one ball in the innings history: a run value in
// {0,1,2,3,4,6} or a dismissal marker.
type HistoryEntry struct {
	Runs      int
	Dismissal bool
}

// ScoreComponent holds the cumulative match state. It is mutated only by the
// delivery tracker at delivery completion.
type ScoreComponent interface {
	// AddRuns records a completed delivery worth the given runs.
	AddRuns(runs int)
	// AddWicket records a dismissal. Wickets never decrease and cap at the
	// configured limit.
	AddWicket()

	Runs() int
	Balls() int
	Wickets() int
	// History returns the ball-by-ball record, oldest first.
	History() []HistoryEntry
	// HistoryMarks returns the history as run values with dismissals encoded
	// as HistoryDismissal.
	HistoryMarks() []int

	// InningsOver reports whether the wicket cap was reached.
	InningsOver() bool

	// Reset clears the match state for a fresh innings.
	Reset()
}

func (s *Session) SetScore(c ScoreComponent) {
	s.score = c
}

func (s *Session) Score() ScoreComponent {
	return s.score
}
