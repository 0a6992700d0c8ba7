package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"mindscale/internal/cache"
	"mindscale/internal/model"
	"mindscale/internal/repository"
	"mindscale/internal/scoring"
)

var ErrNoAnswers = errors.New("submission contains no answers")

// SessionService scores submissions server-side and persists the result.
type SessionService struct {
	testRepo    repository.TestRepository
	sessionRepo repository.SessionRepository
	popular     cache.PopularCache
}

// NewSessionService creates a new session service.
func NewSessionService(testRepo repository.TestRepository, sessionRepo repository.SessionRepository, popular cache.PopularCache) *SessionService {
	return &SessionService{
		testRepo:    testRepo,
		sessionRepo: sessionRepo,
		popular:     popular,
	}
}

// Submit scores a completed answer set against the stored test and persists
// the session. Known instrument keys run the full scoring spec; anything
// else falls back to summing stored option weights against the stored
// result ranges.
func (s *SessionService) Submit(ctx context.Context, testID string, sub *model.Submission) (*model.Session, error) {
	if len(sub.Answers) == 0 {
		return nil, ErrNoAnswers
	}

	test, err := s.testRepo.GetByID(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("load test: %w", err)
	}

	session := &model.Session{
		UserID:   sub.UserID,
		TestID:   test.ID,
		TestType: test.TestType,
		Answers:  sub.Answers,
	}

	if ins, err := scoring.Lookup(test.TestType); err == nil {
		result, err := scoring.Score(ins, test, sub.Answers)
		if err != nil {
			return nil, fmt.Errorf("score submission: %w", err)
		}
		for _, a := range result.Anomalies {
			log.Printf("[SessionService] anomaly: %s dimension %s score %v outside band table",
				test.TestType, a.Dimension, a.Score)
		}
		session.Result = result.Label
		session.TotalScore = result.TotalScore
		for _, d := range result.Dimensions {
			session.Dimensions = append(session.Dimensions, model.SessionDimension{
				DimensionCode: d.Code,
				Score:         d.Score,
				ResultRange:   d.Label,
			})
		}
	} else {
		total, err := sumStoredWeights(test, sub.Answers)
		if err != nil {
			return nil, err
		}
		session.TotalScore = total
		session.Result = matchStoredRange(test, total)
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	if err := s.popular.Increment(ctx, test.TestType); err != nil {
		log.Printf("[SessionService] popularity increment failed for %s: %v", test.TestType, err)
	}
	return session, nil
}

// GetByID returns one stored session.
func (s *SessionService) GetByID(ctx context.Context, id string) (*model.Session, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

// GetByUserID returns all sessions for a user, newest first.
func (s *SessionService) GetByUserID(ctx context.Context, userID string) ([]*model.Session, error) {
	return s.sessionRepo.GetByUserID(ctx, userID)
}

func sumStoredWeights(test *model.Test, answers []model.UserAnswer) (int, error) {
	total := 0
	for _, a := range answers {
		q := test.QuestionByID(a.QuestionID)
		if q == nil {
			return 0, fmt.Errorf("unknown question %s", a.QuestionID)
		}
		opt := q.OptionByID(a.SelectedOptionID)
		if opt == nil {
			return 0, fmt.Errorf("option %s does not belong to question %s", a.SelectedOptionID, a.QuestionID)
		}
		total += opt.Score
	}
	return total, nil
}

func matchStoredRange(test *model.Test, total int) string {
	for _, r := range test.Results {
		if r.DimensionCode != "" {
			continue
		}
		if total < r.MinScore {
			continue
		}
		if r.MaxScore == nil || total <= *r.MaxScore {
			return r.ResultRange
		}
	}
	return ""
}
