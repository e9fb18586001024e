package drill

import (
	"github.com/abhisek/limitz/internal/coach"
	"github.com/abhisek/limitz/internal/problem"
)

// problemServedMsg is sent when the next problem is installed and its
// serve event persisted.
type problemServedMsg struct {
	Problem *problem.Problem
	Err     error
}

// explanationMsg is sent when the coach finishes (or fails) a walkthrough.
type explanationMsg struct {
	Explanation *coach.Explanation
	Err         error
}

// persistDoneMsg confirms background event persistence. Failures are
// shown but never block play.
type persistDoneMsg struct {
	Err error
}

// endSessionMsg triggers the session end flow.
type endSessionMsg struct{}
