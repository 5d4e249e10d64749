// Package profile composes the results store with the scoring engine: it
// records results, builds trait reports, and stores questionnaire outcomes.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mind-engage/mindengage-cognition/internal/insight"
	"github.com/mind-engage/mindengage-cognition/internal/observability"
	"github.com/mind-engage/mindengage-cognition/internal/personality"
	"github.com/mind-engage/mindengage-cognition/internal/platform/logger"
	"github.com/mind-engage/mindengage-cognition/internal/results"
	syncx "github.com/mind-engage/mindengage-cognition/internal/sync"
	"github.com/mind-engage/mindengage-cognition/internal/traits"
)

var (
	ErrIncompleteAnswers = errors.New("questionnaire incomplete")
	ErrInvalidAnswer     = errors.New("invalid answer")
)

type Service struct {
	store   results.Store
	agg     traits.Aggregator
	gen     insight.Generator
	events  syncx.Appender
	metrics *observability.Metrics
	log     *logger.Logger
	now     func() time.Time
}

type Option func(*Service)

// WithEvents mirrors every stored result into the event log.
func WithEvents(a syncx.Appender) Option { return func(s *Service) { s.events = a } }

func WithMetrics(m *observability.Metrics) Option { return func(s *Service) { s.metrics = m } }

func WithLogger(l *logger.Logger) Option { return func(s *Service) { s.log = l } }

func WithInsight(g insight.Generator) Option { return func(s *Service) { s.gen = g } }

func NewService(store results.Store, agg traits.Aggregator, opts ...Option) *Service {
	s := &Service{
		store: store,
		agg:   agg,
		gen:   insight.Generator{Rules: insight.DefaultRules},
		log:   logger.Nop(),
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Report is everything the dashboard shows for one user.
type Report struct {
	UserID          string                           `json:"user_id"`
	Profile         traits.Profile                   `json:"profile"`
	Coverage        map[traits.Trait]traits.Coverage `json:"coverage"`
	Percentiles     map[string]int                   `json:"percentiles"`
	Insight         string                           `json:"insight"`
	Archetype       string                           `json:"archetype,omitempty"`
	Radar           []traits.RadarPoint              `json:"radar"`
	Badges          []string                         `json:"badges"`
	PersonalityType string                           `json:"personality_type,omitempty"`
	GeneratedAt     time.Time                        `json:"generated_at"`
}

// PersonalityView is a stored questionnaire outcome plus its narrative.
// Record is nil when the code has no entry.
type PersonalityView struct {
	ResultID string              `json:"result_id"`
	Profile  personality.Profile `json:"profile"`
	Record   *personality.Record `json:"record,omitempty"`
	TakenAt  time.Time           `json:"taken_at"`
}

// Record appends a game result and returns it with server fields filled.
func (s *Service) Record(ctx context.Context, r results.GameResult) (results.GameResult, error) {
	return s.append(ctx, r, syncx.TypeResultRecorded)
}

func (s *Service) append(ctx context.Context, r results.GameResult, eventType string) (results.GameResult, error) {
	saved, err := s.store.Append(ctx, r)
	if err != nil {
		return results.GameResult{}, err
	}
	s.metrics.ResultRecorded(saved.GameID)
	if s.events != nil {
		ev, err := syncx.NewEvent(eventType, saved.ID, saved)
		if err == nil {
			err = s.events.Append(ctx, ev)
		}
		if err != nil {
			// the result is already durable; the log only feeds replication
			s.log.Warn("event log append failed", "result_id", saved.ID, "error", err)
		}
	}
	return saved, nil
}

// History returns a user's results, oldest first, optionally filtered to
// one game (then newest first, capped at limit).
func (s *Service) History(ctx context.Context, userID, gameID string, limit int) ([]results.GameResult, error) {
	if gameID == "" {
		return s.store.History(ctx, userID)
	}
	return s.store.ListByGame(ctx, userID, gameID, limit)
}

// Best returns the user's best finite result for gameID, using the same
// selection as the trait report.
func (s *Service) Best(ctx context.Context, userID, gameID string) (results.GameResult, error) {
	list, err := s.store.ListByGame(ctx, userID, gameID, 0)
	if err != nil {
		return results.GameResult{}, err
	}
	best, _ := s.agg.BestPerGame(list)
	r, ok := best[gameID]
	if !ok {
		return results.GameResult{}, results.ErrNotFound
	}
	return r, nil
}

// TraitReport reads the user's history and latest questionnaire in
// parallel and scores them.
func (s *Service) TraitReport(ctx context.Context, userID string) (Report, error) {
	start := s.now()
	defer s.metrics.ObserveReport(start)

	var (
		history []results.GameResult
		code    string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := s.store.History(gctx, userID)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		history = h
		return nil
	})
	g.Go(func() error {
		v, err := s.LatestPersonality(gctx, userID)
		switch {
		case errors.Is(err, results.ErrNotFound):
			return nil
		case err != nil:
			return fmt.Errorf("load personality: %w", err)
		}
		code = v.Profile.Type
		return nil
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	an := s.agg.Analyze(history)
	best, _ := s.agg.BestPerGame(history)
	return Report{
		UserID:          userID,
		Profile:         an.Profile,
		Coverage:        an.Coverage,
		Percentiles:     an.Percentiles,
		Insight:         s.gen.Generate(an),
		Archetype:       s.gen.Archetype(an),
		Radar:           traits.RadarPoints(an.Profile),
		Badges:          insight.Badges(best),
		PersonalityType: code,
		GeneratedAt:     s.now().UTC(),
	}, nil
}

// SubmitPersonality scores a complete answer set and stores the outcome as
// a personality-test result whose Meta carries the profile.
func (s *Service) SubmitPersonality(ctx context.Context, userID string, answers personality.Answers) (personality.Profile, results.GameResult, error) {
	for id, v := range answers {
		if err := personality.ValidateAnswer(v); err != nil {
			return personality.Profile{}, results.GameResult{}, fmt.Errorf("%w: question %d: %v", ErrInvalidAnswer, id, err)
		}
	}
	if n, total := personality.Completeness(answers); n < total {
		return personality.Profile{}, results.GameResult{}, fmt.Errorf("%w: %d of %d answered", ErrIncompleteAnswers, n, total)
	}

	p := personality.Reduce(answers)
	meta, err := profileMeta(p, answers)
	if err != nil {
		return personality.Profile{}, results.GameResult{}, err
	}
	saved, err := s.append(ctx, results.GameResult{
		UserID: userID,
		GameID: results.PersonalityGameID,
		Meta:   meta,
	}, syncx.TypePersonalityRecorded)
	if err != nil {
		return personality.Profile{}, results.GameResult{}, err
	}
	s.metrics.PersonalityRecorded(p.Type)
	return p, saved, nil
}

// LatestPersonality returns the most recent questionnaire outcome, or
// results.ErrNotFound.
func (s *Service) LatestPersonality(ctx context.Context, userID string) (PersonalityView, error) {
	r, err := s.store.Latest(ctx, userID, results.PersonalityGameID)
	if err != nil {
		return PersonalityView{}, err
	}
	p, err := decodeProfile(r.Meta)
	if err != nil {
		return PersonalityView{}, err
	}
	v := PersonalityView{ResultID: r.ID, Profile: p, TakenAt: r.CreatedAt}
	if rec, ok := personality.Lookup(p.Type); ok {
		v.Record = &rec
	}
	return v, nil
}

// profileMeta flattens p through JSON so the in-memory and SQL stores hold
// the same shape.
func profileMeta(p personality.Profile, answers personality.Answers) (map[string]any, error) {
	b, err := json.Marshal(struct {
		personality.Profile
		Answers personality.Answers `json:"answers"`
	}{p, answers})
	if err != nil {
		return nil, fmt.Errorf("encode personality meta: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("encode personality meta: %w", err)
	}
	return m, nil
}

func decodeProfile(meta map[string]any) (personality.Profile, error) {
	var p personality.Profile
	b, err := json.Marshal(meta)
	if err == nil {
		err = json.Unmarshal(b, &p)
	}
	if err != nil || p.Type == "" {
		return personality.Profile{}, fmt.Errorf("%w: stored personality has no type", results.ErrNotFound)
	}
	return p, nil
}
