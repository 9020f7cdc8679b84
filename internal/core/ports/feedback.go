package ports

import (
	"context"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

// FeedbackRepository defines the persistence interface for guest feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error)
	List(ctx context.Context) ([]domain.Feedback, error)
}

// SubmitFeedbackInput carries a guest's rating and comment.
type SubmitFeedbackInput struct {
	GuestID    string
	GuestName  string
	RoomNumber string
	Rating     int
	Comment    string
}

// FeedbackService defines use-case operations for feedback.
type FeedbackService interface {
	Submit(ctx context.Context, input SubmitFeedbackInput) (*domain.Feedback, error)
	List(ctx context.Context) ([]domain.Feedback, error)
}
