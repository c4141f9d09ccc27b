package services

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPNotifier delivers reorder notifications over plain SMTP.
type SMTPNotifier struct {
	Addr string // host:port of the SMTP relay
	From string
}

// NewSMTPNotifier creates a new SMTP notifier.
func NewSMTPNotifier(addr, from string) *SMTPNotifier {
	return &SMTPNotifier{Addr: addr, From: from}
}

// Send delivers one reorder message to the supplier contact.
func (n *SMTPNotifier) Send(contactEmail string, payload ReorderPayload) error {
	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", n.From)
	fmt.Fprintf(&body, "To: %s\r\n", contactEmail)
	fmt.Fprintf(&body, "Subject: Reorder request: %s\r\n", payload.ItemName)
	body.WriteString("\r\n")
	fmt.Fprintf(&body, "Material: %s (%s)\r\n", payload.ItemName, payload.Category)
	fmt.Fprintf(&body, "Current stock: %d (threshold %d)\r\n", payload.Stock, payload.Threshold)
	fmt.Fprintf(&body, "Unit cost: %.2f\r\n", payload.UnitCost)
	if payload.NextResupplyDate != nil {
		fmt.Fprintf(&body, "Expected resupply: %s\r\n", payload.NextResupplyDate.Format("2006-01-02"))
	} else {
		body.WriteString("Expected resupply: not scheduled\r\n")
	}
	if payload.ProjectName != "" {
		fmt.Fprintf(&body, "Project: %s\r\n", payload.ProjectName)
	}
	body.WriteString("\r\nPlease confirm the delivery date for this order.\r\n")

	if err := smtp.SendMail(n.Addr, nil, n.From, []string{contactEmail}, []byte(body.String())); err != nil {
		return fmt.Errorf("sending reorder mail to %s: %w", contactEmail, err)
	}
	return nil
}
