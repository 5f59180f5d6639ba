package email

import (
	"fmt"
	"log"
	"strings"

	"github.com/alefmoda/alef-golang/internal/config"
	"github.com/alefmoda/alef-golang/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendOrderNotification mails the shop inbox about a submitted order.
// It is best-effort: checkout already succeeded via the webhook, so the
// caller only logs failures.
func SendOrderNotification(order models.WebhookOrder) error {
	if config.SendGridAPIKey == "" || config.OrderEmailTo == "" {
		return nil // email not configured, skip silently
	}

	var lines []string
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%dx %s - $%.2f", item.Quantity, item.Product, item.Price))
	}
	body := fmt.Sprintf("Nueva orden de %s\n\n%s\n\nTotal: $%.2f",
		order.Customer.Phone, strings.Join(lines, "\n"), order.Total)

	from := mail.NewEmail("Alef Tienda", "no-reply@alefmoda.com")
	to := mail.NewEmail("Alef", config.OrderEmailTo)
	message := mail.NewSingleEmail(from, "Nueva orden recibida", to, body, "")
	client := sendgrid.NewSendClient(config.SendGridAPIKey)

	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending order email: %v", err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("SendGrid API Error: Status Code %d, Body: %s", response.StatusCode, response.Body)
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}
	return nil
}
