package leads

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpprealtech/server/internal/mailer"
	"vpprealtech/server/internal/models"
	"vpprealtech/server/internal/store"
)

type fakeDispatcher struct {
	queued []mailer.Message
}

func (d *fakeDispatcher) Enqueue(msg mailer.Message) error {
	d.queued = append(d.queued, msg)
	return nil
}

type fixture struct {
	svc      *Service
	leads    *store.Collection[models.Lead]
	projects *store.Collection[models.Listing]
	dispatch *fakeDispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	leadCol := store.NewCollection[models.Lead](dir, "leads")
	projectCol := store.NewCollection[models.Listing](dir, "projects")
	contactCol := store.NewCollection[models.Contact](dir, "contacts")
	dispatch := &fakeDispatcher{}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	svc := NewService(leadCol, projectCol, contactCol, dispatch, mailer.NewTemplates("919999999999"), "admin@vpprealtech.com", logger)
	return &fixture{svc: svc, leads: leadCol, projects: projectCol, dispatch: dispatch}
}

func TestService_Create(t *testing.T) {
	f := newFixture(t)

	lead, err := f.svc.Create(CreateInput{
		Name:  "Asha Rao",
		Phone: "9876543210",
		Email: "asha@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, models.LeadTypeBuyer, lead.Type)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, "website", lead.Source)

	stored, err := f.leads.ReadAll()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, lead.ID, stored[0].ID)

	// One admin notification plus one confirmation for the given email
	require.Len(t, f.dispatch.queued, 2)
	assert.Equal(t, "admin@vpprealtech.com", f.dispatch.queued[0].To)
	assert.Equal(t, "asha@example.com", f.dispatch.queued[1].To)
}

func TestService_CreateWithoutEmailSkipsConfirmation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(CreateInput{Name: "Asha Rao", Phone: "9876543210"})
	require.NoError(t, err)

	require.Len(t, f.dispatch.queued, 1)
	assert.Equal(t, "admin@vpprealtech.com", f.dispatch.queued[0].To)
}

func TestService_CreateRequiresNameAndPhone(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(CreateInput{Name: "  ", Phone: "9876543210"})
	assert.True(t, models.IsValidation(err))

	_, err = f.svc.Create(CreateInput{Name: "Asha Rao"})
	assert.True(t, models.IsValidation(err))

	// A rejected lead is never persisted and never notified
	stored, readErr := f.leads.ReadAll()
	require.NoError(t, readErr)
	assert.Empty(t, stored)
	assert.Empty(t, f.dispatch.queued)
}

func TestService_CreateRejectsUnknownType(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(CreateInput{Name: "A", Phone: "1", Type: "tenant"})
	assert.True(t, models.IsValidation(err))
}

func TestService_CreateSnapshotsProjectName(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.projects.WriteAll([]models.Listing{
		{ID: "proj-1", Title: "Skyline Residency", Published: true},
	}))

	lead, err := f.svc.Create(CreateInput{Name: "A", Phone: "1", ProjectID: "proj-1"})
	require.NoError(t, err)
	require.NotNil(t, lead.ProjectName)
	assert.Equal(t, "Skyline Residency", *lead.ProjectName)
}

func TestService_CreateToleratesUnknownProject(t *testing.T) {
	f := newFixture(t)

	lead, err := f.svc.Create(CreateInput{Name: "A", Phone: "1", ProjectID: "proj-gone"})
	require.NoError(t, err)
	require.NotNil(t, lead.ProjectID)
	assert.Nil(t, lead.ProjectName)
}

func TestService_DeveloperLeadUsesPartnershipTemplate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(CreateInput{
		Name:        "Dev Co",
		Phone:       "1",
		Type:        models.LeadTypeDeveloper,
		Company:     "Dev Co Pvt Ltd",
		ProjectName: "Harbor Heights",
	})
	require.NoError(t, err)

	require.NotEmpty(t, f.dispatch.queued)
	assert.Contains(t, f.dispatch.queued[0].Subject, "Developer")
}

func TestService_SubmitContact(t *testing.T) {
	f := newFixture(t)

	contact, err := f.svc.SubmitContact(ContactInput{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Message: "Looking for a 2BHK",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, contact.ID)

	// Admin notification plus submitter confirmation
	require.Len(t, f.dispatch.queued, 2)
	assert.Equal(t, "admin@vpprealtech.com", f.dispatch.queued[0].To)
	assert.Equal(t, "asha@example.com", f.dispatch.queued[1].To)
}

func TestService_SubmitContactValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.SubmitContact(ContactInput{Name: "A", Email: "a@b.c"})
	assert.True(t, models.IsValidation(err))
}

func TestService_ListFiltersAndSorts(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()
	require.NoError(t, f.leads.WriteAll([]models.Lead{
		{ID: "l1", Type: models.LeadTypeBuyer, Status: models.LeadStatusNew, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "l2", Type: models.LeadTypeDeveloper, Status: models.LeadStatusContacted, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "l3", Type: models.LeadTypeBuyer, Status: models.LeadStatusContacted, CreatedAt: now},
	}))

	all, err := f.svc.List("", "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first by default
	assert.Equal(t, "l3", all[0].ID)

	asc, err := f.svc.List("", "", "asc")
	require.NoError(t, err)
	assert.Equal(t, "l1", asc[0].ID)

	buyers, err := f.svc.List(models.LeadTypeBuyer, "", "")
	require.NoError(t, err)
	assert.Len(t, buyers, 2)

	contacted, err := f.svc.List(models.LeadTypeBuyer, models.LeadStatusContacted, "")
	require.NoError(t, err)
	require.Len(t, contacted, 1)
	assert.Equal(t, "l3", contacted[0].ID)
}

func TestService_Stats(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()
	require.NoError(t, f.leads.WriteAll([]models.Lead{
		{ID: "l1", Type: models.LeadTypeBuyer, Status: models.LeadStatusNew, CreatedAt: now},
		{ID: "l2", Type: models.LeadTypeDeveloper, Status: models.LeadStatusContacted, CreatedAt: now.AddDate(0, 0, -8)},
		{ID: "l3", Type: models.LeadTypeBuyer, Status: models.LeadStatusNew, CreatedAt: now.AddDate(0, 0, -3)},
	}))

	stats, err := f.svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.New)
	assert.Equal(t, 1, stats.Contacted)
	assert.Equal(t, 2, stats.Buyers)
	assert.Equal(t, 1, stats.Developers)
	// The 8-day-old lead falls outside the trailing week
	assert.Equal(t, 2, stats.ThisWeek)
}

func TestService_UpdateStatus(t *testing.T) {
	f := newFixture(t)
	lead, err := f.svc.Create(CreateInput{Name: "A", Phone: "1"})
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(lead.ID, models.LeadStatusQualified)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusQualified, updated.Status)

	_, err = f.svc.UpdateStatus(lead.ID, "archived")
	assert.True(t, models.IsValidation(err))

	_, err = f.svc.UpdateStatus("lead-nope", models.LeadStatusClosed)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestService_Update(t *testing.T) {
	f := newFixture(t)
	lead, err := f.svc.Create(CreateInput{Name: "A", Phone: "1"})
	require.NoError(t, err)

	notes := "Called twice, call back Monday"
	status := models.LeadStatusContacted
	updated, err := f.svc.Update(lead.ID, UpdateInput{Notes: &notes, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, status, updated.Status)

	// Notes alone leaves the status untouched
	other := "Second note"
	updated, err = f.svc.Update(lead.ID, UpdateInput{Notes: &other})
	require.NoError(t, err)
	assert.Equal(t, status, updated.Status)
	assert.Equal(t, other, updated.Notes)
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	lead, err := f.svc.Create(CreateInput{Name: "A", Phone: "1"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(lead.ID))
	_, err = f.svc.Get(lead.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, f.svc.Delete(lead.ID), models.ErrNotFound)
}
