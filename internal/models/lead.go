package models

import "time"

// Lead statuses
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusClosed    = "closed"
)

// Lead types
const (
	LeadTypeBuyer     = "buyer"
	LeadTypeDeveloper = "developer"
	LeadTypeProject   = "project"
	LeadTypeMandate   = "mandate"
	LeadTypeContact   = "contact"
)

// LeadStatuses are the valid values for Lead.Status.
var LeadStatuses = []string{LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusClosed}

// LeadTypes are the valid values for Lead.Type.
var LeadTypes = []string{LeadTypeBuyer, LeadTypeDeveloper, LeadTypeProject, LeadTypeMandate, LeadTypeContact}

// Lead is an inbound enquiry. ProjectName is a snapshot of the referenced
// project's title taken at creation time; it is not kept in sync if the
// project is later renamed or deleted.
type Lead struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Type              string    `json:"type"`
	ProjectID         *string   `json:"projectId"`
	ProjectName       *string   `json:"projectName"`
	Budget            *string   `json:"budget"`
	PropertyType      *string   `json:"propertyType"`
	PreferredLocation *string   `json:"preferredLocation"`
	Message           string    `json:"message"`
	Company           *string   `json:"company"`
	Source            string    `json:"source"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ValidLeadStatus reports whether s is one of the four lead statuses.
func ValidLeadStatus(s string) bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidLeadType reports whether s is a known lead type.
func ValidLeadType(s string) bool {
	for _, v := range LeadTypes {
		if v == s {
			return true
		}
	}
	return false
}

// LeadStats is the admin dashboard aggregation.
type LeadStats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	Contacted  int `json:"contacted"`
	Buyers     int `json:"buyers"`
	Developers int `json:"developers"`
	ThisWeek   int `json:"thisWeek"`
}
