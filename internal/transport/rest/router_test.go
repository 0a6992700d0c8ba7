package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"mindscale/internal/cache"
	"mindscale/internal/model"
	"mindscale/internal/repository"
	"mindscale/internal/service"
)

type memTestRepo struct {
	byID map[string]*model.Test
	next int
}

func (r *memTestRepo) Create(_ context.Context, t *model.Test) error {
	r.next++
	t.ID = fmt.Sprintf("t%d", r.next)
	r.byID[t.ID] = t
	return nil
}

func (r *memTestRepo) GetByID(_ context.Context, id string) (*model.Test, error) {
	if t, ok := r.byID[id]; ok {
		return t, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memTestRepo) GetByType(_ context.Context, testType string) (*model.Test, error) {
	for _, t := range r.byID {
		if t.TestType == testType {
			return t, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memTestRepo) List(_ context.Context) ([]*model.Test, error) {
	var out []*model.Test
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out, nil
}

func (r *memTestRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type memSessionRepo struct {
	sessions []*model.Session
	next     int
}

func (r *memSessionRepo) Create(_ context.Context, s *model.Session) error {
	r.next++
	s.ID = fmt.Sprintf("s%d", r.next)
	r.sessions = append(r.sessions, s)
	return nil
}

func (r *memSessionRepo) GetByID(_ context.Context, id string) (*model.Session, error) {
	for _, s := range r.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memSessionRepo) GetByUserID(_ context.Context, userID string) ([]*model.Session, error) {
	var out []*model.Session
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSessionRepo) CountByTestType(_ context.Context) ([]repository.SessionCount, error) {
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

type memPopular struct {
	counts map[string]int64
}

func (c *memPopular) Increment(_ context.Context, testType string) error {
	c.counts[testType]++
	return nil
}

func (c *memPopular) GetTop(_ context.Context, limit int) ([]cache.PopularEntry, error) {
	var entries []cache.PopularEntry
	for t, n := range c.counts {
		entries = append(entries, cache.PopularEntry{TestType: t, SessionCount: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].SessionCount > entries[j].SessionCount })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (c *memPopular) Rebuild(_ context.Context, counts map[string]int64) error {
	c.counts = counts
	return nil
}

type denyLimiter struct{ allow bool }

func (l denyLimiter) Allow(context.Context, string) (bool, error) { return l.allow, nil }

func newTestServer(t *testing.T, limiter cache.RateLimiter) (*httptest.Server, *memTestRepo) {
	t.Helper()
	testRepo := &memTestRepo{byID: map[string]*model.Test{}}
	sessionRepo := &memSessionRepo{}
	popular := &memPopular{counts: map[string]int64{}}

	srv := httptest.NewServer(NewRouter(&Container{
		TestService:    service.NewTestService(testRepo, sessionRepo, popular),
		SessionService: service.NewSessionService(testRepo, sessionRepo, popular),
		RateLimiter:    limiter,
	}))
	t.Cleanup(srv.Close)
	return srv, testRepo
}

func seedBSRS(t *testing.T, repo *memTestRepo) *model.Test {
	t.Helper()
	doc := &model.Test{TestType: "bsrs5", Title: "心情温度计（BSRS-5）"}
	for q := 1; q <= 6; q++ {
		question := model.Question{ID: fmt.Sprintf("q%d", q), OrderIndex: q}
		for o := 0; o < 5; o++ {
			question.Options = append(question.Options, model.Option{
				ID: fmt.Sprintf("q%d-o%d", q, o), Text: fmt.Sprintf("opt %d", o),
			})
		}
		doc.Questions = append(doc.Questions, question)
	}
	require.NoError(t, repo.Create(context.Background(), doc))
	return doc
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetTestEndpoint(t *testing.T) {
	srv, repo := newTestServer(t, nil)
	seedBSRS(t, repo)

	resp, err := http.Get(srv.URL + "/api/v1/tests/bsrs5")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var test model.Test
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&test))
	assert.Equal(t, "bsrs5", test.TestType)
	assert.Len(t, test.Questions, 6)

	resp, err = http.Get(srv.URL + "/api/v1/tests/unknown")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitAndFetchSession(t *testing.T) {
	srv, repo := newTestServer(t, nil)
	doc := seedBSRS(t, repo)

	sub := model.Submission{UserID: "u1"}
	for _, q := range doc.Questions {
		sub.Answers = append(sub.Answers, model.UserAnswer{
			QuestionID:       q.ID,
			SelectedOptionID: q.Options[1].ID,
		})
	}
	payload, _ := json.Marshal(sub)

	resp, err := http.Post(srv.URL+"/api/v1/tests/"+doc.ID+"/submit", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session model.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.Equal(t, 5, session.TotalScore)
	assert.Equal(t, "身心适应良好", session.Result)

	got, err := http.Get(srv.URL + "/api/v1/sessions/" + session.ID)
	require.NoError(t, err)
	defer got.Body.Close()
	assert.Equal(t, http.StatusOK, got.StatusCode)

	list, err := http.Get(srv.URL + "/api/v1/users/u1/sessions")
	require.NoError(t, err)
	defer list.Body.Close()
	var sessions []model.Session
	require.NoError(t, json.NewDecoder(list.Body).Decode(&sessions))
	assert.Len(t, sessions, 1)
}

func TestPopularRouteTakesPrecedence(t *testing.T) {
	srv, repo := newTestServer(t, nil)
	seedBSRS(t, repo)

	resp, err := http.Get(srv.URL + "/api/v1/tests/popular")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []model.PopularTest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	assert.Empty(t, rows)
}

func TestRateLimitRejects(t *testing.T) {
	srv, repo := newTestServer(t, denyLimiter{allow: false})
	seedBSRS(t, repo)

	resp, err := http.Get(srv.URL + "/api/v1/tests/bsrs5")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	// Health is outside the limited subrouter.
	health, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}
