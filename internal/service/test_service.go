package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"mindscale/internal/cache"
	"mindscale/internal/model"
	"mindscale/internal/repository"
)

const popularLimit = 10

var ErrInvalidTest = errors.New("invalid test definition")

// TestService handles instrument definitions and the popularity ranking.
type TestService struct {
	testRepo    repository.TestRepository
	sessionRepo repository.SessionRepository
	popular     cache.PopularCache
}

// NewTestService creates a new test service.
func NewTestService(testRepo repository.TestRepository, sessionRepo repository.SessionRepository, popular cache.PopularCache) *TestService {
	return &TestService{
		testRepo:    testRepo,
		sessionRepo: sessionRepo,
		popular:     popular,
	}
}

// Create validates and stores a new instrument definition.
func (s *TestService) Create(ctx context.Context, test *model.Test) error {
	if test.TestType == "" {
		return fmt.Errorf("%w: test_type is required", ErrInvalidTest)
	}
	if test.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTest)
	}
	if len(test.Questions) == 0 {
		return fmt.Errorf("%w: at least one question is required", ErrInvalidTest)
	}
	for i := range test.Questions {
		q := &test.Questions[i]
		if q.OrderIndex == 0 {
			q.OrderIndex = i + 1
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("%w: question %d has no options", ErrInvalidTest, q.OrderIndex)
		}
	}
	return s.testRepo.Create(ctx, test)
}

// GetByType returns an instrument by its test type key. Unless includeScores
// is set, option weights and result ranges are stripped so answer pages
// cannot leak the scoring key.
func (s *TestService) GetByType(ctx context.Context, testType string, includeScores bool) (*model.Test, error) {
	test, err := s.testRepo.GetByType(ctx, testType)
	if err != nil {
		return nil, err
	}
	if !includeScores {
		return test.StripScores(), nil
	}
	return test, nil
}

// Popular returns tests ranked by completed session count. The Redis
// ranking is authoritative; when it is empty (cold cache) it is rebuilt
// from the session store.
func (s *TestService) Popular(ctx context.Context) ([]model.PopularTest, error) {
	entries, err := s.popular.GetTop(ctx, popularLimit)
	if err != nil || len(entries) == 0 {
		if err != nil {
			log.Printf("[TestService] popular cache read failed, falling back to store: %v", err)
		}
		entries, err = s.rebuildPopular(ctx)
		if err != nil {
			return nil, err
		}
	}

	tests, err := s.testRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byType := make(map[string]*model.Test, len(tests))
	for _, t := range tests {
		byType[t.TestType] = t
	}

	rows := make([]model.PopularTest, 0, len(entries))
	for _, e := range entries {
		row := model.PopularTest{
			TestType:     e.TestType,
			SessionCount: e.SessionCount,
		}
		if t, ok := byType[e.TestType]; ok {
			row.ID = t.ID
			row.Title = t.Title
			row.Description = t.Description
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *TestService) rebuildPopular(ctx context.Context) ([]cache.PopularEntry, error) {
	counts, err := s.sessionRepo.CountByTestType(ctx)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]int64, len(counts))
	entries := make([]cache.PopularEntry, 0, len(counts))
	for _, c := range counts {
		byType[c.TestType] = c.Count
		if len(entries) < popularLimit {
			entries = append(entries, cache.PopularEntry{TestType: c.TestType, SessionCount: c.Count})
		}
	}

	if err := s.popular.Rebuild(ctx, byType); err != nil {
		log.Printf("[TestService] popular cache rebuild failed: %v", err)
	}
	return entries, nil
}
