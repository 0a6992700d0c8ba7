package service

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"mindscale/internal/cache"
	"mindscale/internal/model"
	"mindscale/internal/repository"
)

type fakeTestRepo struct {
	byID   map[string]*model.Test
	nextID int
}

func newFakeTestRepo() *fakeTestRepo {
	return &fakeTestRepo{byID: map[string]*model.Test{}}
}

func (r *fakeTestRepo) Create(_ context.Context, test *model.Test) error {
	r.nextID++
	test.ID = fmt.Sprintf("test-%d", r.nextID)
	r.byID[test.ID] = test
	return nil
}

func (r *fakeTestRepo) GetByID(_ context.Context, id string) (*model.Test, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return t, nil
}

func (r *fakeTestRepo) GetByType(_ context.Context, testType string) (*model.Test, error) {
	for _, t := range r.byID {
		if t.TestType == testType {
			return t, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeTestRepo) List(_ context.Context) ([]*model.Test, error) {
	out := make([]*model.Test, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTestRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeSessionRepo struct {
	sessions []*model.Session
	nextID   int
}

func (r *fakeSessionRepo) Create(_ context.Context, s *model.Session) error {
	r.nextID++
	s.ID = fmt.Sprintf("session-%d", r.nextID)
	r.sessions = append(r.sessions, s)
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string) (*model.Session, error) {
	for _, s := range r.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeSessionRepo) GetByUserID(_ context.Context, userID string) ([]*model.Session, error) {
	var out []*model.Session
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) CountByTestType(_ context.Context) ([]repository.SessionCount, error) {
	byType := map[string]int64{}
	for _, s := range r.sessions {
		byType[s.TestType]++
	}
	var counts []repository.SessionCount
	for t, c := range byType {
		counts = append(counts, repository.SessionCount{TestType: t, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts, nil
}

type fakePopular struct {
	counts map[string]int64
}

func newFakePopular() *fakePopular {
	return &fakePopular{counts: map[string]int64{}}
}

func (c *fakePopular) Increment(_ context.Context, testType string) error {
	c.counts[testType]++
	return nil
}

func (c *fakePopular) GetTop(_ context.Context, limit int) ([]cache.PopularEntry, error) {
	entries := make([]cache.PopularEntry, 0, len(c.counts))
	for t, n := range c.counts {
		entries = append(entries, cache.PopularEntry{TestType: t, SessionCount: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].SessionCount > entries[j].SessionCount })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (c *fakePopular) Rebuild(_ context.Context, counts map[string]int64) error {
	c.counts = map[string]int64{}
	for t, n := range counts {
		c.counts[t] = n
	}
	return nil
}

func bsrsTestDoc() *model.Test {
	t := &model.Test{TestType: "bsrs5", Title: "心情温度计（BSRS-5）"}
	for q := 1; q <= 6; q++ {
		question := model.Question{ID: fmt.Sprintf("q%d", q), OrderIndex: q}
		for o := 0; o < 5; o++ {
			question.Options = append(question.Options, model.Option{
				ID:   fmt.Sprintf("q%d-o%d", q, o),
				Text: fmt.Sprintf("option %d", o),
			})
		}
		t.Questions = append(t.Questions, question)
	}
	return t
}

func answersAt(t *model.Test, idx int) []model.UserAnswer {
	answers := make([]model.UserAnswer, 0, len(t.Questions))
	for _, q := range t.Questions {
		answers = append(answers, model.UserAnswer{
			QuestionID:       q.ID,
			SelectedOptionID: q.Options[idx].ID,
		})
	}
	return answers
}

func TestCreateValidation(t *testing.T) {
	svc := NewTestService(newFakeTestRepo(), &fakeSessionRepo{}, newFakePopular())
	ctx := context.Background()

	err := svc.Create(ctx, &model.Test{Title: "x", Questions: []model.Question{{Options: []model.Option{{}}}}})
	assert.ErrorIs(t, err, ErrInvalidTest)

	err = svc.Create(ctx, &model.Test{TestType: "x", Title: "y"})
	assert.ErrorIs(t, err, ErrInvalidTest)

	doc := bsrsTestDoc()
	require.NoError(t, svc.Create(ctx, doc))
	assert.NotEmpty(t, doc.ID)
}

func TestGetByTypeStripsScores(t *testing.T) {
	repo := newFakeTestRepo()
	doc := bsrsTestDoc()
	doc.Questions[0].Options[1].Score = 3
	doc.Results = []model.ResultRange{{MinScore: 0, ResultRange: "ok"}}
	require.NoError(t, repo.Create(context.Background(), doc))

	svc := NewTestService(repo, &fakeSessionRepo{}, newFakePopular())

	stripped, err := svc.GetByType(context.Background(), "bsrs5", false)
	require.NoError(t, err)
	assert.Zero(t, stripped.Questions[0].Options[1].Score)
	assert.Empty(t, stripped.Results)

	full, err := svc.GetByType(context.Background(), "bsrs5", true)
	require.NoError(t, err)
	assert.Equal(t, 3, full.Questions[0].Options[1].Score)
	assert.Len(t, full.Results, 1)
}

func TestSubmitScoresKnownInstrument(t *testing.T) {
	testRepo := newFakeTestRepo()
	sessionRepo := &fakeSessionRepo{}
	popular := newFakePopular()
	ctx := context.Background()

	doc := bsrsTestDoc()
	require.NoError(t, testRepo.Create(ctx, doc))

	svc := NewSessionService(testRepo, sessionRepo, popular)
	session, err := svc.Submit(ctx, doc.ID, &model.Submission{
		UserID:  "u1",
		Answers: answersAt(doc, 2),
	})
	require.NoError(t, err)

	// First five questions at index 2 = 10 points.
	assert.Equal(t, 10, session.TotalScore)
	assert.Equal(t, "中度情绪困扰", session.Result)
	assert.Equal(t, "bsrs5", session.TestType)
	require.Len(t, session.Dimensions, 1)
	assert.Equal(t, "total", session.Dimensions[0].DimensionCode)
	assert.Equal(t, 10.0, session.Dimensions[0].Score)
	assert.Equal(t, int64(1), popular.counts["bsrs5"])

	stored, err := svc.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Result, stored.Result)
}

func TestSubmitUnknownInstrumentFallsBackToStoredRanges(t *testing.T) {
	testRepo := newFakeTestRepo()
	ctx := context.Background()

	max := 4
	doc := &model.Test{
		TestType: "custom_quiz",
		Title:    "custom",
		Questions: []model.Question{
			{ID: "q1", OrderIndex: 1, Options: []model.Option{
				{ID: "q1-a", Score: 1}, {ID: "q1-b", Score: 3},
			}},
			{ID: "q2", OrderIndex: 2, Options: []model.Option{
				{ID: "q2-a", Score: 0}, {ID: "q2-b", Score: 2},
			}},
		},
		Results: []model.ResultRange{
			{MinScore: 0, MaxScore: &max, ResultRange: "low"},
			{MinScore: 5, ResultRange: "high"},
		},
	}
	require.NoError(t, testRepo.Create(ctx, doc))

	svc := NewSessionService(testRepo, &fakeSessionRepo{}, newFakePopular())
	session, err := svc.Submit(ctx, doc.ID, &model.Submission{
		UserID: "u1",
		Answers: []model.UserAnswer{
			{QuestionID: "q1", SelectedOptionID: "q1-b"},
			{QuestionID: "q2", SelectedOptionID: "q2-b"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, session.TotalScore)
	assert.Equal(t, "high", session.Result)
	assert.Empty(t, session.Dimensions)
}

func TestSubmitRejectsBadInput(t *testing.T) {
	testRepo := newFakeTestRepo()
	ctx := context.Background()
	doc := bsrsTestDoc()
	require.NoError(t, testRepo.Create(ctx, doc))

	svc := NewSessionService(testRepo, &fakeSessionRepo{}, newFakePopular())

	_, err := svc.Submit(ctx, doc.ID, &model.Submission{UserID: "u1"})
	assert.ErrorIs(t, err, ErrNoAnswers)

	_, err = svc.Submit(ctx, "missing", &model.Submission{
		UserID:  "u1",
		Answers: answersAt(doc, 0),
	})
	assert.Error(t, err)

	short := answersAt(doc, 0)[:3]
	_, err = svc.Submit(ctx, doc.ID, &model.Submission{UserID: "u1", Answers: short})
	assert.Error(t, err)
}

func TestPopularRebuildsFromStore(t *testing.T) {
	testRepo := newFakeTestRepo()
	sessionRepo := &fakeSessionRepo{}
	popular := newFakePopular()
	ctx := context.Background()

	doc := bsrsTestDoc()
	require.NoError(t, testRepo.Create(ctx, doc))
	for i := 0; i < 3; i++ {
		sessionRepo.sessions = append(sessionRepo.sessions, &model.Session{TestType: "bsrs5"})
	}
	sessionRepo.sessions = append(sessionRepo.sessions, &model.Session{TestType: "mbti"})

	svc := NewTestService(testRepo, sessionRepo, popular)
	rows, err := svc.Popular(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "bsrs5", rows[0].TestType)
	assert.Equal(t, int64(3), rows[0].SessionCount)
	assert.Equal(t, "心情温度计（BSRS-5）", rows[0].Title)
	assert.Equal(t, doc.ID, rows[0].ID)

	// The cache was warmed by the fallback.
	assert.Equal(t, int64(3), popular.counts["bsrs5"])
}

func TestUserSessionHistory(t *testing.T) {
	testRepo := newFakeTestRepo()
	sessionRepo := &fakeSessionRepo{}
	ctx := context.Background()
	doc := bsrsTestDoc()
	require.NoError(t, testRepo.Create(ctx, doc))

	svc := NewSessionService(testRepo, sessionRepo, newFakePopular())
	for i := 0; i < 2; i++ {
		_, err := svc.Submit(ctx, doc.ID, &model.Submission{
			UserID:  "u1",
			Answers: answersAt(doc, i),
		})
		require.NoError(t, err)
	}
	_, err := svc.Submit(ctx, doc.ID, &model.Submission{UserID: "u2", Answers: answersAt(doc, 0)})
	require.NoError(t, err)

	sessions, err := svc.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}
