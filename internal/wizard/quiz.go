package wizard

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Inphy521/Home-Economics/internal/models"
)

// QuizSide distinguishes the two columns of the matching board.
type QuizSide string

const (
	SideName     QuizSide = "name"
	SideFunction QuizSide = "function"
)

// Outcome describes what a quiz click did.
type Outcome string

const (
	// OutcomeSelected means only one side is selected so far.
	OutcomeSelected Outcome = "selected"
	// OutcomeMatched means the pair matched and is now permanently solved.
	OutcomeMatched Outcome = "matched"
	// OutcomeMismatched means the pair did not match; both selections clear.
	OutcomeMismatched Outcome = "mismatched"
	// OutcomeCompleted means the last pair was just solved.
	OutcomeCompleted Outcome = "completed"
	// OutcomeIgnored means the click hit an already-solved item.
	OutcomeIgnored Outcome = "ignored"
)

// SelectResult reports the state change caused by one click.
type SelectResult struct {
	Outcome      Outcome `json:"outcome"`
	NameID       string  `json:"nameId,omitempty"`
	FunctionID   string  `json:"functionId,omitempty"`
	CorrectCount int     `json:"correctCount"`
	AttemptCount int     `json:"attemptCount"`
}

// Quiz is the pressure-point matching mini-game. Names keep the dataset
// order; the function column is shuffled once at start.
type Quiz struct {
	points           []models.PressurePoint
	functionOrder    []string
	solved           map[string]bool
	selectedName     string
	selectedFunction string
	correct          int
	attempts         int
}

// NewQuiz starts a fresh quiz over the dataset.
func NewQuiz(points []models.PressurePoint) *Quiz {
	order := make([]string, len(points))
	for i, p := range points {
		order[i] = p.ID
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	return &Quiz{
		points:        points,
		functionOrder: order,
		solved:        make(map[string]bool),
	}
}

// FunctionOrder returns the shuffled order of the function column.
func (q *Quiz) FunctionOrder() []string {
	return q.functionOrder
}

// Solved reports whether a point's pair has been matched.
func (q *Quiz) Solved(pointID string) bool {
	return q.solved[pointID]
}

// Counts returns the running correct and attempt counters.
func (q *Quiz) Counts() (correct, attempts int) {
	return q.correct, q.attempts
}

// Completed reports whether every pair has been matched.
func (q *Quiz) Completed() bool {
	return q.correct == len(q.points)
}

func (q *Quiz) knownPoint(pointID string) bool {
	for _, p := range q.points {
		if p.ID == pointID {
			return true
		}
	}
	return false
}

// Select handles one click on an unmatched item. Selecting on a side
// replaces any previous selection there. Once both sides are selected the
// attempt counter ticks and the pair is resolved: a match is permanent, a
// mismatch clears both selections (the client shows the brief wrong flash).
func (q *Quiz) Select(side QuizSide, pointID string) (SelectResult, error) {
	if !q.knownPoint(pointID) {
		return SelectResult{}, fmt.Errorf("unknown pressure point %q", pointID)
	}
	if q.solved[pointID] {
		return q.result(OutcomeIgnored), nil
	}

	switch side {
	case SideName:
		q.selectedName = pointID
	case SideFunction:
		q.selectedFunction = pointID
	default:
		return SelectResult{}, fmt.Errorf("unknown quiz side %q", side)
	}

	if q.selectedName == "" || q.selectedFunction == "" {
		return q.result(OutcomeSelected), nil
	}

	q.attempts++
	name, fn := q.selectedName, q.selectedFunction
	q.selectedName, q.selectedFunction = "", ""

	if name != fn {
		res := q.result(OutcomeMismatched)
		res.NameID, res.FunctionID = name, fn
		return res, nil
	}

	q.solved[name] = true
	q.correct++

	outcome := OutcomeMatched
	if q.Completed() {
		outcome = OutcomeCompleted
	}
	res := q.result(outcome)
	res.NameID, res.FunctionID = name, fn
	return res, nil
}

func (q *Quiz) result(outcome Outcome) SelectResult {
	return SelectResult{
		Outcome:      outcome,
		CorrectCount: q.correct,
		AttemptCount: q.attempts,
	}
}
