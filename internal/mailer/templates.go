package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Enquiry fields are user input, so the HTML bodies go through
// html/template for escaping.

const layoutHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #1a1a2e, #16213e); padding: 20px; text-align: center;">
    <h1 style="color: #FF6B35; margin: 0;">VPP Realtech</h1>
    {{if .Heading}}<p style="color: #fff; margin: 10px 0 0;">{{.Heading}}</p>{{end}}
  </div>
  <div style="padding: 30px; background: #fff;">{{block "body" .}}{{end}}</div>
  <div style="background: #f5f5f5; padding: 15px; text-align: center; font-size: 12px; color: #666;">
    <p>{{.Footer}}</p>
  </div>
</div>`

const enquiryBodyHTML = `{{define "body"}}
  <h2 style="color: #1a1a2e; border-bottom: 2px solid #FF6B35; padding-bottom: 10px;">Contact Details</h2>
  <table style="width: 100%; border-collapse: collapse;">
    {{range .Rows}}<tr><td style="padding: 8px 0; color: #666;">{{.Label}}:</td><td style="padding: 8px 0;"><strong>{{.Value}}</strong></td></tr>
    {{end}}
  </table>
  {{if .Message}}
  <h3 style="color: #1a1a2e; margin-top: 20px;">Message</h3>
  <p style="background: #f5f5f5; padding: 15px; border-radius: 8px;">{{.Message}}</p>
  {{end}}
{{end}}`

const confirmationBodyHTML = `{{define "body"}}
  <h2 style="color: #1a1a2e;">Thank you, {{.Name}}!</h2>
  <p style="color: #444; line-height: 1.8;">
    We have received your {{.What}} and our team will get back to you within 24 hours.
  </p>
  {{if .WhatsAppNumber}}
  <p style="color: #444; line-height: 1.8;">
    In the meantime, feel free to reach us on WhatsApp for instant assistance:
  </p>
  <div style="text-align: center; margin: 20px 0;">
    <a href="https://wa.me/{{.WhatsAppNumber}}" style="display: inline-block; background: #25D366; color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px; font-weight: bold;">
      Chat on WhatsApp
    </a>
  </div>
  {{end}}
  <p style="color: #666; font-size: 14px;">
    Best regards,<br/>
    <strong>VPP Realtech Team</strong>
  </p>
{{end}}`

var (
	enquiryTmpl      = template.Must(template.Must(template.New("enquiry").Parse(layoutHTML)).Parse(enquiryBodyHTML))
	confirmationTmpl = template.Must(template.Must(template.New("confirmation").Parse(layoutHTML)).Parse(confirmationBodyHTML))
)

type row struct {
	Label string
	Value string
}

type enquiryData struct {
	Heading string
	Footer  string
	Rows    []row
	Message string
}

type confirmationData struct {
	Heading        string
	Footer         string
	Name           string
	What           string
	WhatsAppNumber string
}

// BuyerEnquiry is the data for the admin notification about a buyer lead.
type BuyerEnquiry struct {
	Name         string
	Email        string
	Phone        string
	Budget       string
	PropertyType string
	Location     string
	Message      string
	ProjectName  string
}

// DeveloperEnquiry is the data for the admin notification about a
// developer partnership lead.
type DeveloperEnquiry struct {
	Name            string
	Company         string
	Email           string
	Phone           string
	ProjectName     string
	ProjectLocation string
	Message         string
}

// ContactSubmission is the data for the admin notification about a
// contact-form submission.
type ContactSubmission struct {
	Name        string
	Email       string
	Phone       string
	EnquiryType string
	Message     string
}

// Templates renders the notification bodies. Recipient addresses are
// supplied by the caller; rendered messages come back with To unset.
type Templates struct {
	whatsAppNumber string
}

// NewTemplates builds the template set. whatsAppNumber may be empty, in
// which case confirmations omit the WhatsApp link.
func NewTemplates(whatsAppNumber string) *Templates {
	return &Templates{whatsAppNumber: whatsAppNumber}
}

const automatedFooter = "This is an automated email from VPP Realtech website."

// BuyerEnquiryMessage renders the admin notification for a buyer lead.
func (t *Templates) BuyerEnquiryMessage(data BuyerEnquiry) (Message, error) {
	subject := "New Buyer Enquiry"
	if data.ProjectName != "" {
		subject += " - " + data.ProjectName
	}

	rows := []row{
		{"Name", data.Name},
		{"Email", data.Email},
		{"Phone", data.Phone},
	}
	rows = appendRow(rows, "Interested In", data.ProjectName)
	rows = appendRow(rows, "Budget", data.Budget)
	rows = appendRow(rows, "Property Type", data.PropertyType)
	rows = appendRow(rows, "Preferred Location", data.Location)

	return renderEnquiry(subject, enquiryData{
		Heading: "New Buyer Enquiry Received",
		Footer:  automatedFooter,
		Rows:    rows,
		Message: data.Message,
	})
}

// DeveloperEnquiryMessage renders the admin notification for a developer
// mandate lead.
func (t *Templates) DeveloperEnquiryMessage(data DeveloperEnquiry) (Message, error) {
	from := data.Company
	if from == "" {
		from = data.Name
	}

	rows := []row{{"Name", data.Name}}
	rows = appendRow(rows, "Company", data.Company)
	rows = append(rows, row{"Email", data.Email}, row{"Phone", data.Phone})
	rows = appendRow(rows, "Project Name", data.ProjectName)
	rows = appendRow(rows, "Project Location", data.ProjectLocation)

	return renderEnquiry("New Developer Mandate Enquiry - "+from, enquiryData{
		Heading: "New Developer Partnership Enquiry",
		Footer:  automatedFooter,
		Rows:    rows,
		Message: data.Message,
	})
}

// ContactMessage renders the admin notification for a contact-form
// submission.
func (t *Templates) ContactMessage(data ContactSubmission) (Message, error) {
	enquiryType := data.EnquiryType
	if enquiryType == "" {
		enquiryType = "General"
	}

	rows := []row{
		{"Name", data.Name},
		{"Email", data.Email},
	}
	rows = appendRow(rows, "Phone", data.Phone)
	rows = appendRow(rows, "Enquiry Type", data.EnquiryType)

	return renderEnquiry("New Contact Form Submission - "+enquiryType, enquiryData{
		Heading: "Contact Form Submission",
		Footer:  automatedFooter,
		Rows:    rows,
		Message: data.Message,
	})
}

// ConfirmationMessage renders the submitter confirmation. leadType picks
// the wording; anything other than buyer reads as a partnership enquiry,
// and contact-form submitters get a generic "message".
func (t *Templates) ConfirmationMessage(name, leadType string) (Message, error) {
	what := "partnership enquiry"
	switch leadType {
	case "buyer":
		what = "property enquiry"
	case "contact":
		what = "message"
	}

	var html bytes.Buffer
	err := confirmationTmpl.Execute(&html, confirmationData{
		Footer:         "VPP Realtech | Baner Road, Pune 411045",
		Name:           name,
		What:           what,
		WhatsAppNumber: t.whatsAppNumber,
	})
	if err != nil {
		return Message{}, fmt.Errorf("failed to render confirmation email: %w", err)
	}

	text := fmt.Sprintf("Thank you, %s!\n\nWe have received your %s and our team will get back to you within 24 hours.\n\nBest regards,\nVPP Realtech Team", name, what)

	return Message{
		Subject: "Thank you for contacting VPP Realtech",
		HTML:    html.String(),
		Text:    text,
	}, nil
}

func renderEnquiry(subject string, data enquiryData) (Message, error) {
	var html bytes.Buffer
	if err := enquiryTmpl.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("failed to render %q email: %w", subject, err)
	}

	var text strings.Builder
	text.WriteString(data.Heading + "\n\n")
	for _, r := range data.Rows {
		fmt.Fprintf(&text, "%s: %s\n", r.Label, r.Value)
	}
	if data.Message != "" {
		text.WriteString("Message: " + data.Message + "\n")
	}

	return Message{
		Subject: subject,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

func appendRow(rows []row, label, value string) []row {
	if value == "" {
		return rows
	}
	return append(rows, row{Label: label, Value: value})
}
