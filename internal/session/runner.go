// Package session drives one interactive assessment run: fetch the question
// set, collect exactly one answer per question in order, score locally and
// report the completed result to the server.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"mindscale/internal/model"
	"mindscale/internal/scoring"
)

// State is the runner lifecycle phase.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

var (
	ErrNotStarted       = errors.New("session not started")
	ErrAlreadyStarted   = errors.New("session already in progress")
	ErrAlreadyCompleted = errors.New("session already completed")
)

// API is the remote surface the runner needs. *client.Client satisfies it.
type API interface {
	GetTest(ctx context.Context, testType string, includeScores bool) (*model.Test, error)
	Submit(ctx context.Context, testID string, sub *model.Submission) (*model.Session, error)
}

// Runner walks a user through one instrument. It is not safe for concurrent
// use; a run belongs to a single interactive flow.
type Runner struct {
	api    API
	userID string

	state      State
	instrument *scoring.Instrument
	test       *model.Test
	idx        int
	answers    []model.UserAnswer
	result     *scoring.Result
	session    *model.Session
	submitErr  error
}

// NewRunner creates a runner submitting under the given user id.
func NewRunner(api API, userID string) *Runner {
	return &Runner{api: api, userID: userID}
}

// Start fetches the question set and enters the in-progress state. A fetch
// failure leaves the runner not started; a session never begins without its
// questions.
func (r *Runner) Start(ctx context.Context, testType string) error {
	if r.state == StateInProgress {
		return ErrAlreadyStarted
	}
	ins, err := scoring.Lookup(testType)
	if err != nil {
		return err
	}
	test, err := r.api.GetTest(ctx, testType, ins.NeedsWeights)
	if err != nil {
		return fmt.Errorf("fetch questions: %w", err)
	}
	if len(test.Questions) != ins.QuestionCount {
		return fmt.Errorf("instrument %s expects %d questions, server sent %d",
			testType, ins.QuestionCount, len(test.Questions))
	}
	sort.Slice(test.Questions, func(i, j int) bool {
		return test.Questions[i].OrderIndex < test.Questions[j].OrderIndex
	})

	r.state = StateInProgress
	r.instrument = ins
	r.test = test
	r.idx = 0
	r.answers = r.answers[:0]
	r.result = nil
	r.session = nil
	r.submitErr = nil
	return nil
}

// State returns the current lifecycle phase.
func (r *Runner) State() State { return r.state }

// Current returns the question awaiting an answer.
func (r *Runner) Current() (*model.Question, error) {
	if r.state != StateInProgress {
		return nil, ErrNotStarted
	}
	return &r.test.Questions[r.idx], nil
}

// Progress reports answered and total question counts.
func (r *Runner) Progress() (answered, total int) {
	if r.test == nil {
		return 0, 0
	}
	return len(r.answers), len(r.test.Questions)
}

// Answer records the selected option for the current question and advances.
// Answering the last question scores the run and reports it to the server;
// a submit failure is recorded but never blocks the local result.
func (r *Runner) Answer(ctx context.Context, optionID string) error {
	switch r.state {
	case StateNotStarted:
		return ErrNotStarted
	case StateCompleted:
		return ErrAlreadyCompleted
	}

	q := &r.test.Questions[r.idx]
	if q.OptionByID(optionID) == nil {
		return fmt.Errorf("option %s does not belong to question %s", optionID, q.ID)
	}
	r.answers = append(r.answers, model.UserAnswer{
		QuestionID:       q.ID,
		SelectedOptionID: optionID,
	})

	if r.idx++; r.idx < len(r.test.Questions) {
		return nil
	}
	return r.complete(ctx)
}

func (r *Runner) complete(ctx context.Context) error {
	result, err := scoring.Score(r.instrument, r.test, r.answers)
	if err != nil {
		return fmt.Errorf("score answers: %w", err)
	}
	for _, a := range result.Anomalies {
		log.Printf("[Session] anomaly: %s dimension %s score %v outside band table",
			r.instrument.Key, a.Dimension, a.Score)
	}
	r.result = result
	r.state = StateCompleted

	session, err := r.api.Submit(ctx, r.test.ID, &model.Submission{
		UserID:  r.userID,
		Answers: r.answers,
	})
	if err != nil {
		log.Printf("[Session] submit failed, keeping local result: %v", err)
		r.submitErr = err
		return nil
	}
	r.session = session
	return nil
}

// Result returns the locally computed outcome of a completed run.
func (r *Runner) Result() (*scoring.Result, error) {
	if r.state != StateCompleted {
		return nil, ErrNotStarted
	}
	return r.result, nil
}

// Session returns the stored session if the submit succeeded, nil otherwise.
func (r *Runner) Session() *model.Session { return r.session }

// SubmitErr reports the recorded submit failure, if any.
func (r *Runner) SubmitErr() error { return r.submitErr }

// Restart discards all run state; the next Start begins from scratch.
func (r *Runner) Restart() {
	r.state = StateNotStarted
	r.instrument = nil
	r.test = nil
	r.idx = 0
	r.answers = nil
	r.result = nil
	r.session = nil
	r.submitErr = nil
}
