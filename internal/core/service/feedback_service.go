package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

var errInvalidRating = errors.New("rating must be between 1 and 5")

// FeedbackService implements guest feedback submission and listing.
type FeedbackService struct {
	feedback ports.FeedbackRepository
	log      zerolog.Logger
}

func NewFeedbackService(feedback ports.FeedbackRepository, log zerolog.Logger) *FeedbackService {
	return &FeedbackService{feedback: feedback, log: log}
}

func (s *FeedbackService) Submit(ctx context.Context, input ports.SubmitFeedbackInput) (*domain.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errInvalidRating
	}

	fb := &domain.Feedback{
		GuestID:    input.GuestID,
		GuestName:  input.GuestName,
		RoomNumber: input.RoomNumber,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.feedback.Create(ctx, fb)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("guest_id", input.GuestID).Int("rating", input.Rating).Msg("feedback submitted")
	return created, nil
}

func (s *FeedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedback.List(ctx)
}
