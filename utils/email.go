package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendCommentAlert emails the site owner about a new guestbook comment.
// Callers skip it entirely when no API key is configured.
func SendCommentAlert(apiKey, ownerEmail, author, text string) error {
	from := mail.NewEmail("hbday", "donotreply@hbday.site")
	subject := fmt.Sprintf("New comment from %s", author)
	to := mail.NewEmail("", ownerEmail)

	plainTextContent := fmt.Sprintf("%s wrote:\n\n%s", author, text)
	htmlContent := fmt.Sprintf("<strong>%s</strong> wrote:<br><br>%s", author, text)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}
	return nil
}
