package services

import (
	"context"
	"fmt"

	"github.com/arshopsy/arshopsy/internal/feedback"
)

// FeedbackService forwards feedback form submissions to the mail relay.
// Relay credentials stay in server configuration and never reach clients.
type FeedbackService struct {
	sender feedback.Sender
}

func NewFeedbackService(sender feedback.Sender) *FeedbackService {
	return &FeedbackService{sender: sender}
}

// Submit relays a feedback message. Fully empty submissions are dropped
// without contacting the relay.
func (s *FeedbackService) Submit(ctx context.Context, msg feedback.Message) error {
	if msg.Empty() {
		return nil
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("error relaying feedback: %w", err)
	}
	return nil
}
