package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/digiserv/backend/subm"
)

var adminNotificationTmpl = template.Must(template.New("admin").Parse(`
<div style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #f9fafb; border-radius: 12px; overflow: hidden;">
    <div style="background: linear-gradient(135deg, #1e40af, #0891b2); padding: 30px; text-align: center;">
        <h1 style="color: white; margin: 0; font-size: 24px;">New Contact Form Submission</h1>
    </div>
    <div style="padding: 30px;">
        <p><strong>Name:</strong> {{.Name}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Phone:</strong> {{.Phone}}</p>
        <p><strong>Subject:</strong> {{.Subject}}</p>
        <p><strong>Message:</strong><br>{{.Message}}</p>
    </div>
</div>
`))

var userAutoReplyTmpl = template.Must(template.New("user").Parse(`
<div style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #ffffff; border: 1px solid #e5e7eb; border-radius: 12px; overflow: hidden;">
    <div style="background: linear-gradient(135deg, #2563eb, #06b6d4); padding: 30px; text-align: center;">
        <h1 style="color: white; margin: 0; font-size: 24px;">Thank You for Contacting Us!</h1>
    </div>
    <div style="padding: 30px; color: #374151; line-height: 1.6;">
        <p>Hi {{.Name}},</p>
        <p>We have received your message regarding <strong>"{{.Subject}}"</strong>.</p>
        <p>Our team is reviewing it and will get back to you shortly to resolve your issue properly.</p>
        <hr style="border: 0; border-top: 1px solid #e5e7eb; margin: 20px 0;">
        <p style="font-size: 14px; color: #6b7280;">
            <strong>Digital Services Team</strong><br>
            Banking &amp; Networking Infrastructure Specialists<br>
            Gaya, Bihar
        </p>
    </div>
</div>
`))

type templateData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message template.HTML
}

func newTemplateData(s *subm.Submission) templateData {
	phone := s.Phone
	if phone == "" {
		phone = "N/A"
	}
	// Escape first, then restore line breaks as <br> tags.
	escaped := template.HTMLEscapeString(s.Message)
	message := strings.ReplaceAll(escaped, "\n", "<br>")
	return templateData{
		Name:    s.Name,
		Email:   s.Email,
		Phone:   phone,
		Subject: s.Subject(),
		Message: template.HTML(message),
	}
}

func renderAdminNotification(s *subm.Submission) (string, error) {
	var buf bytes.Buffer
	if err := adminNotificationTmpl.Execute(&buf, newTemplateData(s)); err != nil {
		return "", fmt.Errorf("failed to render admin notification: %w", err)
	}
	return buf.String(), nil
}

func renderUserAutoReply(s *subm.Submission) (string, error) {
	var buf bytes.Buffer
	if err := userAutoReplyTmpl.Execute(&buf, newTemplateData(s)); err != nil {
		return "", fmt.Errorf("failed to render user auto-reply: %w", err)
	}
	return buf.String(), nil
}
