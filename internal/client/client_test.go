package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindscale/internal/model"
)

func TestGetTest(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(model.Test{ID: "abc", TestType: "bsrs5"})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/v1")
	test, err := c.GetTest(context.Background(), "bsrs5", true)
	require.NoError(t, err)
	assert.Equal(t, "abc", test.ID)
	assert.Equal(t, "/api/v1/tests/bsrs5", gotPath)
	assert.Equal(t, "include_scores=true", gotQuery)

	_, err = c.GetTest(context.Background(), "bsrs5", false)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestSubmit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tests/t1/submit", r.URL.Path)
		var sub model.Submission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, "u1", sub.UserID)
		require.Len(t, sub.Answers, 1)
		json.NewEncoder(w).Encode(model.Session{ID: "s1", Result: "身心适应良好", TotalScore: 3})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/v1")
	session, err := c.Submit(context.Background(), "t1", &model.Submission{
		UserID:  "u1",
		Answers: []model.UserAnswer{{QuestionID: "q1", SelectedOptionID: "q1-o0"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", session.ID)
	assert.Equal(t, 3, session.TotalScore)
}

func TestErrorStatusSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"test not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetTest(context.Background(), "missing", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "test not found")
}

func TestPopular(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tests/popular", r.URL.Path)
		json.NewEncoder(w).Encode([]model.PopularTest{
			{TestType: "mbti", SessionCount: 12},
			{TestType: "bsrs5", SessionCount: 5},
		})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/v1/")
	rows, err := c.Popular(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(12), rows[0].SessionCount)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetTest(ctx, "bsrs5", false)
	assert.Error(t, err)
}
