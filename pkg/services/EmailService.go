package services

import (
	"html/template"
	"strings"

	"github.com/adampresley/adamgokit/email"

	"github.com/mugisham37/moses-mugisha/pkg/models"
)

/*
SendInquiryEmail notifies the portfolio owner about a new contact
inquiry through Resend.
*/
func SendInquiryEmail(apiKey, toName, toEmail, fromName, fromEmail string, inquiry models.Inquiry) error {
	parsedTemplate := strings.Builder{}

	service := email.NewResendService(&email.Config{
		ApiKey: apiKey,
	})

	tmpl := `
<h1>New portfolio inquiry</h1>
<p>{{.name}} ({{.email}}) sent a message through the portfolio
contact form:</p>
<blockquote>{{.message}}</blockquote>
	`

	data := map[string]any{
		"name":    inquiry.Name,
		"email":   inquiry.Email,
		"message": inquiry.Message,
	}

	t := template.Must(template.New("email").Parse(tmpl))
	_ = t.Execute(&parsedTemplate, data)

	return service.Send(email.Mail{
		Body:       parsedTemplate.String(),
		BodyIsHtml: true,
		From: email.EmailAddress{
			Email: fromEmail,
			Name:  fromName,
		},
		Subject: "New inquiry from " + inquiry.Name,
		To: []email.EmailAddress{
			{Name: toName, Email: toEmail},
		},
	})
}
