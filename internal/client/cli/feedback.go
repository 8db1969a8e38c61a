package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/arshopsy/arshopsy/internal/feedback"
)

// Feedback walks the user through the feedback form and relays the answers
// through the server. A fully empty form is discarded without sending.
func (a *App) Feedback(ctx context.Context) error {

	msg := feedback.Message{Name: a.userName, Email: a.userEmail}

	var err error
	if msg.Name == "" {
		if msg.Name, err = getSimpleText(a.reader, "Your name", os.Stdout); err != nil {
			return err
		}
	}
	if msg.Email == "" {
		if msg.Email, err = getSimpleText(a.reader, "Your email", os.Stdout); err != nil {
			return err
		}
	}

	if msg.Liked, err = getSimpleText(a.reader, "What did you like?", os.Stdout); err != nil {
		return err
	}
	if msg.Improve, err = getSimpleText(a.reader, "What could we improve?", os.Stdout); err != nil {
		return err
	}
	if msg.Features, err = getSimpleText(a.reader, "What features would you like to see?", os.Stdout); err != nil {
		return err
	}
	if msg.Comments, err = GetMultiline(a.reader, "Any other comments?", os.Stdout); err != nil {
		return err
	}

	if msg.Empty() {
		fmt.Println("Nothing to send.")
		return nil
	}

	if err := a.api.SendFeedback(ctx, msg); err != nil {
		log.Printf("Could not send feedback: %s", err.Error())
		return err
	}

	fmt.Println("Thanks for the feedback!")
	return nil
}
