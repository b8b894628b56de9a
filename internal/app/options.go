package service

import (
	"rankwatch/internal/domain/format"
	"rankwatch/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTeamID sets the tracked team id.
func WithTeamID(id int64) Option {
	return func(s *Service) {
		if id > 0 {
			s.teamID = id
		}
	}
}

// WithCountry pins the leaderboard country instead of resolving it
// from team info.
func WithCountry(country string) Option {
	return func(s *Service) {
		s.country = country
	}
}

// WithSource sets the ranking source.
func WithSource(source RankingSource) Option {
	return func(s *Service) {
		if source != nil {
			s.source = source
		}
	}
}

// WithStore sets the snapshot store.
func WithStore(store Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithNotifier sets the notification target.
func WithNotifier(notifier Notifier) Option {
	return func(s *Service) {
		if notifier != nil {
			s.notifier = notifier
		}
	}
}

// WithFormatter sets a custom team formatter.
func WithFormatter(f *format.Formatter) Option {
	return func(s *Service) {
		if f != nil {
			s.formatter = f
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
