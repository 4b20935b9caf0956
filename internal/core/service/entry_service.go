package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kintai/timesheet-system/internal/api/metrics"
	"github.com/kintai/timesheet-system/internal/core/domain"
	"github.com/kintai/timesheet-system/internal/core/ports"
)

const enteredAtLayout = "2006-01-02 15:04:05"

// EntryService implements timesheet CRUD over the row store.
type EntryService struct {
	entries ports.EntryRepository
	users   ports.UserRepository
	loc     *time.Location
	now     func() time.Time
	logger  zerolog.Logger
}

func NewEntryService(entries ports.EntryRepository, users ports.UserRepository, loc *time.Location, logger zerolog.Logger) *EntryService {
	if loc == nil {
		loc = time.UTC
	}
	return &EntryService{
		entries: entries,
		users:   users,
		loc:     loc,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *EntryService) List(ctx context.Context) ([]domain.TimeEntry, error) {
	return s.entries.List(ctx)
}

// Create appends a new row. The user's display name is denormalized onto the
// row at write time; an unknown user id gets "Unknown" rather than failing
// the save.
func (s *EntryService) Create(ctx context.Context, in ports.CreateEntryInput) (*domain.TimeEntry, error) {
	userName := "Unknown"
	if user, err := s.users.FindByID(ctx, in.UserID); err == nil {
		userName = user.Name
	}

	entry := &domain.TimeEntry{
		EnteredAt:  s.now().In(s.loc).Format(enteredAtLayout),
		UserID:     in.UserID,
		UserName:   userName,
		Start:      in.Start,
		End:        in.End,
		Engagement: in.Engagement,
		Activity:   in.Activity,
		Location:   in.Location,
		Details:    in.Details,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("failed to create entry")
		return nil, err
	}

	metrics.EntriesCreatedTotal.WithLabelValues(in.Engagement).Inc()
	s.logger.Info().Str("id", created.ID).Str("user_id", in.UserID).Str("engagement", in.Engagement).Msg("entry created")
	return created, nil
}

func (s *EntryService) Update(ctx context.Context, id string, in ports.UpdateEntryInput) error {
	entry := &domain.TimeEntry{
		Start:      in.Start,
		End:        in.End,
		Engagement: in.Engagement,
		Activity:   in.Activity,
		Location:   in.Location,
		Details:    in.Details,
	}

	if err := s.entries.Update(ctx, id, entry); err != nil {
		return err
	}

	metrics.EntriesUpdatedTotal.Inc()
	s.logger.Info().Str("id", id).Msg("entry updated")
	return nil
}

func (s *EntryService) Delete(ctx context.Context, id string) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		return err
	}

	metrics.EntriesDeletedTotal.Inc()
	s.logger.Info().Str("id", id).Msg("entry deleted")
	return nil
}
