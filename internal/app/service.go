// Package service runs one leaderboard comparison: resolve the
// country, load the previous snapshot, fetch the current one,
// classify the tracked team's rank delta, deliver the rendered
// notification, and persist the new snapshot.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rankwatch/internal/domain/delta"
	"rankwatch/internal/domain/format"
	"rankwatch/internal/domain/markdown"
	"rankwatch/internal/domain/message"
	"rankwatch/internal/domain/model"
	"rankwatch/pkg/logger"
	"rankwatch/pkg/metrics"
)

// RankingSource fetches team info and leaderboard snapshots.
type RankingSource interface {
	TeamCountry(ctx context.Context, teamID int64) (string, error)
	Leaderboard(ctx context.Context, country string) (*model.Snapshot, error)
}

// Store persists the snapshot between runs.
type Store interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snap *model.Snapshot) error
}

// Notifier delivers the rendered notification.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// Service wires the collaborators for one run.
type Service struct {
	teamID    int64
	country   string
	source    RankingSource
	store     Store
	notifier  Notifier
	formatter *format.Formatter
	logger    logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		formatter: format.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run performs one batch comparison. Fetch, load, and persist
// failures are returned and abort the run; notification delivery
// failure is logged and the run still persists the new snapshot.
func (s *Service) Run(ctx context.Context) error {
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.source == nil || s.store == nil || s.notifier == nil {
		return ErrMissingDependency
	}

	country, err := s.resolveCountry(ctx)
	if err != nil {
		return err
	}
	s.logger.Debug(ctx, "resolved country",
		logger.Int64("team_id", s.teamID),
		logger.String("country", country),
	)

	oldSnap, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	fetchStart := time.Now()
	newSnap, err := s.source.Leaderboard(ctx, country)
	if err != nil {
		return err
	}
	metrics.ObserveFetchDuration(time.Since(fetchStart))
	metrics.SetTeamsFetched(newSnap.Len())

	res := delta.Classify(oldSnap, newSnap, s.teamID)
	s.logger.Info(ctx, "classified rank delta",
		logger.String("status", res.Status.String()),
		logger.Int("old_rank", res.OldRank),
		logger.Int("new_rank", res.NewRank),
		logger.Int("overtook", len(res.Overtook)),
		logger.Int("passed_by", len(res.PassedBy)),
	)
	if res.NewRank > 0 {
		metrics.SetTrackedRank(res.NewRank)
	}

	msg, ok := s.render(res, oldSnap, newSnap)
	if ok {
		if err := s.notifier.Send(ctx, msg); err != nil {
			// Non-fatal: future comparisons must not depend on
			// whether this delivery succeeded.
			s.logger.Warn(ctx, "notification delivery failed", logger.Error(err))
			metrics.RecordNotificationFailed()
		} else {
			s.logger.Info(ctx, "notification sent")
			metrics.RecordNotificationSent()
		}
	} else {
		s.logger.Info(ctx, "no significant change in leaderboard detected, skipping notification")
		metrics.RecordNotificationSkipped()
	}

	if err := s.store.Save(ctx, newSnap); err != nil {
		return err
	}
	metrics.SetLastRun(time.Now())
	return nil
}

// resolveCountry returns the configured country, or looks it up from
// the tracked team's info when none is configured. Country codes are
// lowercased to match the leaderboard endpoint.
func (s *Service) resolveCountry(ctx context.Context) (string, error) {
	country := s.country
	if country == "" {
		info, err := s.source.TeamCountry(ctx, s.teamID)
		if err != nil {
			return "", err
		}
		country = info
	}
	if country == "" {
		return "", fmt.Errorf("%w: team %d", ErrNoCountry, s.teamID)
	}
	return strings.ToLower(country), nil
}

// render formats the tracked team and the overtook/passed-by lists
// in snapshot discovery order, then maps the classification onto a
// notification template.
func (s *Service) render(res delta.Result, oldSnap, newSnap *model.Snapshot) (string, bool) {
	var name string
	switch res.Status {
	case delta.Removed:
		// No live leaderboard row to link; escaped name only.
		if rec, ok := oldSnap.Lookup(s.teamID); ok {
			name = markdown.Escape(rec.TeamName)
		}
	case delta.AbsentBoth:
		// No record to format in either snapshot.
	default:
		if rec, ok := newSnap.Lookup(s.teamID); ok {
			name = s.formatter.Team(rec)
		}
	}

	caughtUp := s.formatter.TeamList(res.Overtook, newSnap)
	passedBy := s.formatter.TeamList(res.PassedBy, newSnap)

	return message.Render(res, name, caughtUp, passedBy)
}
