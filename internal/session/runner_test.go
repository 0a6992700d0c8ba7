package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindscale/internal/model"
)

type fakeAPI struct {
	test      *model.Test
	fetchErr  error
	submitErr error

	fetchedType   string
	fetchedScores bool
	submitted     *model.Submission
}

func (f *fakeAPI) GetTest(_ context.Context, testType string, includeScores bool) (*model.Test, error) {
	f.fetchedType = testType
	f.fetchedScores = includeScores
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.test, nil
}

func (f *fakeAPI) Submit(_ context.Context, testID string, sub *model.Submission) (*model.Session, error) {
	f.submitted = sub
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &model.Session{ID: "s1", TestID: testID, UserID: sub.UserID}, nil
}

func bsrsTest() *model.Test {
	t := &model.Test{ID: "t1", TestType: "bsrs5"}
	for q := 1; q <= 6; q++ {
		question := model.Question{ID: fmt.Sprintf("q%d", q), OrderIndex: q}
		for o := 0; o < 5; o++ {
			question.Options = append(question.Options, model.Option{
				ID: fmt.Sprintf("q%d-o%d", q, o),
			})
		}
		t.Questions = append(t.Questions, question)
	}
	return t
}

func runAll(t *testing.T, r *Runner, optIdx int) {
	t.Helper()
	for r.State() == StateInProgress {
		q, err := r.Current()
		require.NoError(t, err)
		require.NoError(t, r.Answer(context.Background(), q.Options[optIdx].ID))
	}
}

func TestRunnerHappyPath(t *testing.T) {
	api := &fakeAPI{test: bsrsTest()}
	r := NewRunner(api, "u1")

	require.NoError(t, r.Start(context.Background(), "bsrs5"))
	assert.Equal(t, StateInProgress, r.State())
	assert.Equal(t, "bsrs5", api.fetchedType)
	assert.False(t, api.fetchedScores) // positional instrument

	runAll(t, r, 0)

	assert.Equal(t, StateCompleted, r.State())
	res, err := r.Result()
	require.NoError(t, err)
	assert.Equal(t, "身心适应良好", res.Label)
	assert.Equal(t, 0, res.TotalScore)

	require.NotNil(t, api.submitted)
	assert.Equal(t, "u1", api.submitted.UserID)
	assert.Len(t, api.submitted.Answers, 6)
	require.NotNil(t, r.Session())
	assert.Equal(t, "t1", r.Session().TestID)
	assert.NoError(t, r.SubmitErr())
}

func TestRunnerFetchFailurePreventsStart(t *testing.T) {
	api := &fakeAPI{fetchErr: errors.New("boom")}
	r := NewRunner(api, "u1")

	err := r.Start(context.Background(), "bsrs5")
	require.Error(t, err)
	assert.Equal(t, StateNotStarted, r.State())
	_, err = r.Current()
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestRunnerUnknownInstrument(t *testing.T) {
	api := &fakeAPI{test: bsrsTest()}
	r := NewRunner(api, "u1")
	assert.Error(t, r.Start(context.Background(), "nope"))
	assert.Equal(t, StateNotStarted, r.State())
}

func TestRunnerQuestionCountMismatch(t *testing.T) {
	test := bsrsTest()
	test.Questions = test.Questions[:4]
	api := &fakeAPI{test: test}
	r := NewRunner(api, "u1")
	assert.Error(t, r.Start(context.Background(), "bsrs5"))
	assert.Equal(t, StateNotStarted, r.State())
}

func TestRunnerSubmitFailureKeepsResult(t *testing.T) {
	api := &fakeAPI{test: bsrsTest(), submitErr: errors.New("server down")}
	r := NewRunner(api, "u1")
	require.NoError(t, r.Start(context.Background(), "bsrs5"))

	runAll(t, r, 3)

	assert.Equal(t, StateCompleted, r.State())
	res, err := r.Result()
	require.NoError(t, err)
	assert.Equal(t, 15, res.TotalScore) // first five questions count
	assert.Equal(t, "重度情绪困扰", res.Label)
	assert.Error(t, r.SubmitErr())
	assert.Nil(t, r.Session())
}

func TestRunnerRejectsForeignOption(t *testing.T) {
	api := &fakeAPI{test: bsrsTest()}
	r := NewRunner(api, "u1")
	require.NoError(t, r.Start(context.Background(), "bsrs5"))

	err := r.Answer(context.Background(), "q2-o0")
	require.Error(t, err)
	answered, total := r.Progress()
	assert.Equal(t, 0, answered)
	assert.Equal(t, 6, total)
}

func TestRunnerOneAnswerPerQuestionInOrder(t *testing.T) {
	api := &fakeAPI{test: bsrsTest()}
	r := NewRunner(api, "u1")
	require.NoError(t, r.Start(context.Background(), "bsrs5"))

	q, err := r.Current()
	require.NoError(t, err)
	assert.Equal(t, 1, q.OrderIndex)
	require.NoError(t, r.Answer(context.Background(), q.Options[2].ID))

	q, err = r.Current()
	require.NoError(t, err)
	assert.Equal(t, 2, q.OrderIndex)
	answered, _ := r.Progress()
	assert.Equal(t, 1, answered)

	// Completed runs refuse further answers.
	runAll(t, r, 0)
	assert.ErrorIs(t, r.Answer(context.Background(), "q1-o0"), ErrAlreadyCompleted)
}

func TestRunnerRestart(t *testing.T) {
	api := &fakeAPI{test: bsrsTest()}
	r := NewRunner(api, "u1")
	require.NoError(t, r.Start(context.Background(), "bsrs5"))
	runAll(t, r, 1)
	require.Equal(t, StateCompleted, r.State())

	r.Restart()
	assert.Equal(t, StateNotStarted, r.State())
	_, err := r.Result()
	assert.Error(t, err)

	require.NoError(t, r.Start(context.Background(), "bsrs5"))
	answered, _ := r.Progress()
	assert.Equal(t, 0, answered)
}
