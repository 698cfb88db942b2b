package leads

import (
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"vpprealtech/server/internal/ident"
	"vpprealtech/server/internal/mailer"
	"vpprealtech/server/internal/models"
	"vpprealtech/server/internal/store"
)

// Dispatcher queues outbound notifications. Enqueue failures are logged
// and never surfaced to callers of this service.
type Dispatcher interface {
	Enqueue(msg mailer.Message) error
}

// Service implements lead intake and triage. Intake persists the lead
// first; notifications are queued afterwards as fire-and-forget, so a
// lead is successfully created once it is on disk regardless of what
// happens to the emails.
type Service struct {
	leads      *store.Collection[models.Lead]
	projects   *store.Collection[models.Listing]
	contacts   *store.Collection[models.Contact]
	dispatch   Dispatcher
	templates  *mailer.Templates
	adminEmail string
	logger     *logrus.Logger
}

// NewService wires the lead service. projects is used only to snapshot
// the referenced project's title at intake time.
func NewService(
	leads *store.Collection[models.Lead],
	projects *store.Collection[models.Listing],
	contacts *store.Collection[models.Contact],
	dispatch Dispatcher,
	templates *mailer.Templates,
	adminEmail string,
	logger *logrus.Logger,
) *Service {
	return &Service{
		leads:      leads,
		projects:   projects,
		contacts:   contacts,
		dispatch:   dispatch,
		templates:  templates,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// CreateInput is the public intake payload. ProjectName and
// ProjectLocation are what a developer names their own project; they feed
// the notification email and are not persisted.
type CreateInput struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Type              string `json:"type"`
	ProjectID         string `json:"projectId"`
	Budget            string `json:"budget"`
	PropertyType      string `json:"propertyType"`
	PreferredLocation string `json:"preferredLocation"`
	Message           string `json:"message"`
	Company           string `json:"company"`
	ProjectName       string `json:"projectName"`
	ProjectLocation   string `json:"projectLocation"`
	Source            string `json:"source"`
}

// UpdateInput carries the admin triage fields; nil means leave untouched.
type UpdateInput struct {
	Notes  *string `json:"notes"`
	Status *string `json:"status"`
}

// ContactInput is a contact-form submission.
type ContactInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	EnquiryType string `json:"enquiryType"`
	Message     string `json:"message"`
}

// Create validates and persists a new lead, then queues the notification
// emails. Status is always "new" no matter what the caller sends.
func (s *Service) Create(input CreateInput) (models.Lead, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Phone) == "" {
		return models.Lead{}, models.Invalid("Name and phone are required")
	}

	leadType := input.Type
	if leadType == "" {
		leadType = models.LeadTypeBuyer
	}
	if !models.ValidLeadType(leadType) {
		return models.Lead{}, models.Invalid("Unknown lead type: " + input.Type)
	}

	source := input.Source
	if source == "" {
		source = "website"
	}

	// Snapshot the project title; a projectId that resolves to nothing is
	// tolerated and leaves the name null.
	var projectID, projectName *string
	if input.ProjectID != "" {
		projectID = &input.ProjectID
		if title, ok := s.resolveProjectTitle(input.ProjectID); ok {
			projectName = &title
		}
	}

	now := time.Now().UTC()
	lead := models.Lead{
		ID:                ident.NewID("lead"),
		Name:              input.Name,
		Email:             input.Email,
		Phone:             input.Phone,
		Type:              leadType,
		ProjectID:         projectID,
		ProjectName:       projectName,
		Budget:            optional(input.Budget),
		PropertyType:      optional(input.PropertyType),
		PreferredLocation: optional(input.PreferredLocation),
		Message:           input.Message,
		Company:           optional(input.Company),
		Source:            source,
		Status:            models.LeadStatusNew,
		Notes:             "",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := s.leads.Update(func(records []models.Lead) ([]models.Lead, error) {
		return append(records, lead), nil
	})
	if err != nil {
		return models.Lead{}, err
	}

	s.notifyLeadCreated(lead, input)
	return lead, nil
}

// SubmitContact persists a contact-form submission and queues the admin
// notification plus the submitter confirmation.
func (s *Service) SubmitContact(input ContactInput) (models.Contact, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return models.Contact{}, models.Invalid("Name, email, and message are required")
	}

	contact := models.Contact{
		ID:          ident.NewID("contact"),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		EnquiryType: input.EnquiryType,
		Message:     input.Message,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.contacts.Update(func(records []models.Contact) ([]models.Contact, error) {
		return append(records, contact), nil
	})
	if err != nil {
		return models.Contact{}, err
	}

	adminMsg, err := s.templates.ContactMessage(mailer.ContactSubmission{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		EnquiryType: input.EnquiryType,
		Message:     input.Message,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to render contact notification")
	} else {
		s.enqueueAdmin(adminMsg)
	}

	s.enqueueConfirmation(input.Email, input.Name, models.LeadTypeContact)
	return contact, nil
}

// List returns leads filtered by type and status, newest first unless
// sortOrder is "asc".
func (s *Service) List(typeFilter, statusFilter, sortOrder string) ([]models.Lead, error) {
	records, err := s.leads.ReadAll()
	if err != nil {
		return nil, err
	}

	out := make([]models.Lead, 0, len(records))
	for _, l := range records {
		if typeFilter != "" && l.Type != typeFilter {
			continue
		}
		if statusFilter != "" && l.Status != statusFilter {
			continue
		}
		out = append(out, l)
	}

	asc := sortOrder == "asc"
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Get returns one lead by id.
func (s *Service) Get(id string) (models.Lead, error) {
	records, err := s.leads.ReadAll()
	if err != nil {
		return models.Lead{}, err
	}
	for _, l := range records {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Lead{}, models.ErrNotFound
}

// Stats aggregates the admin dashboard counters. thisWeek counts leads
// created within the trailing seven days of the call.
func (s *Service) Stats() (models.LeadStats, error) {
	records, err := s.leads.ReadAll()
	if err != nil {
		return models.LeadStats{}, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	stats := models.LeadStats{Total: len(records)}
	for _, l := range records {
		switch l.Status {
		case models.LeadStatusNew:
			stats.New++
		case models.LeadStatusContacted:
			stats.Contacted++
		}
		switch l.Type {
		case models.LeadTypeBuyer:
			stats.Buyers++
		case models.LeadTypeDeveloper:
			stats.Developers++
		}
		if l.CreatedAt.After(weekAgo) {
			stats.ThisWeek++
		}
	}
	return stats, nil
}

// UpdateStatus moves a lead to any of the four valid statuses.
func (s *Service) UpdateStatus(id, status string) (models.Lead, error) {
	if !models.ValidLeadStatus(status) {
		return models.Lead{}, models.Invalid("Status must be one of: " + strings.Join(models.LeadStatuses, ", "))
	}

	var updated models.Lead
	err := s.leads.Update(func(records []models.Lead) ([]models.Lead, error) {
		for i := range records {
			if records[i].ID != id {
				continue
			}
			records[i].Status = status
			records[i].UpdatedAt = time.Now().UTC()
			updated = records[i]
			return records, nil
		}
		return nil, models.ErrNotFound
	})
	if err != nil {
		return models.Lead{}, err
	}
	return updated, nil
}

// Update applies independent optional edits to notes and status.
func (s *Service) Update(id string, input UpdateInput) (models.Lead, error) {
	if input.Status != nil && !models.ValidLeadStatus(*input.Status) {
		return models.Lead{}, models.Invalid("Status must be one of: " + strings.Join(models.LeadStatuses, ", "))
	}

	var updated models.Lead
	err := s.leads.Update(func(records []models.Lead) ([]models.Lead, error) {
		for i := range records {
			if records[i].ID != id {
				continue
			}
			if input.Notes != nil {
				records[i].Notes = *input.Notes
			}
			if input.Status != nil {
				records[i].Status = *input.Status
			}
			if input.Notes != nil || input.Status != nil {
				records[i].UpdatedAt = time.Now().UTC()
			}
			updated = records[i]
			return records, nil
		}
		return nil, models.ErrNotFound
	})
	if err != nil {
		return models.Lead{}, err
	}
	return updated, nil
}

// Delete removes a lead.
func (s *Service) Delete(id string) error {
	return s.leads.Update(func(records []models.Lead) ([]models.Lead, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, models.ErrNotFound
	})
}

func (s *Service) resolveProjectTitle(projectID string) (string, bool) {
	projects, err := s.projects.ReadAll()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to resolve project for lead")
		return "", false
	}
	for _, p := range projects {
		if p.ID == projectID {
			return p.Title, true
		}
	}
	return "", false
}

// notifyLeadCreated queues exactly one admin notification and, when the
// submitter left an email address, exactly one confirmation.
func (s *Service) notifyLeadCreated(lead models.Lead, input CreateInput) {
	var adminMsg mailer.Message
	var err error
	if lead.Type == models.LeadTypeBuyer {
		adminMsg, err = s.templates.BuyerEnquiryMessage(mailer.BuyerEnquiry{
			Name:         lead.Name,
			Email:        lead.Email,
			Phone:        lead.Phone,
			Budget:       input.Budget,
			PropertyType: input.PropertyType,
			Location:     input.PreferredLocation,
			Message:      lead.Message,
			ProjectName:  deref(lead.ProjectName),
		})
	} else {
		adminMsg, err = s.templates.DeveloperEnquiryMessage(mailer.DeveloperEnquiry{
			Name:            lead.Name,
			Company:         input.Company,
			Email:           lead.Email,
			Phone:           lead.Phone,
			ProjectName:     input.ProjectName,
			ProjectLocation: input.ProjectLocation,
			Message:         lead.Message,
		})
	}
	if err != nil {
		s.logger.WithError(err).Error("Failed to render lead notification")
	} else {
		s.enqueueAdmin(adminMsg)
	}

	if lead.Email != "" {
		s.enqueueConfirmation(lead.Email, lead.Name, lead.Type)
	}
}

func (s *Service) enqueueAdmin(msg mailer.Message) {
	if s.adminEmail == "" {
		s.logger.Warn("ADMIN_EMAIL not configured, dropping admin notification")
		return
	}
	msg.To = s.adminEmail
	if err := s.dispatch.Enqueue(msg); err != nil {
		s.logger.WithError(err).Error("Failed to queue admin notification")
	}
}

func (s *Service) enqueueConfirmation(to, name, leadType string) {
	msg, err := s.templates.ConfirmationMessage(name, leadType)
	if err != nil {
		s.logger.WithError(err).Error("Failed to render confirmation email")
		return
	}
	msg.To = to
	if err := s.dispatch.Enqueue(msg); err != nil {
		s.logger.WithError(err).Error("Failed to queue confirmation email")
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
