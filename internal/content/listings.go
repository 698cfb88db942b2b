package content

import (
	"strings"
	"time"

	"vpprealtech/server/internal/ident"
	"vpprealtech/server/internal/models"
	"vpprealtech/server/internal/store"
)

// ListingService implements CRUD, publish gating and slug uniqueness for
// one listing collection. Projects and mandates share the service; they
// differ only in id prefix and accepted statuses.
type ListingService struct {
	col      *store.Collection[models.Listing]
	idPrefix string
	statuses []string
}

// NewListingService binds a service to a listing collection.
func NewListingService(col *store.Collection[models.Listing], idPrefix string, statuses []string) *ListingService {
	return &ListingService{col: col, idPrefix: idPrefix, statuses: statuses}
}

// ListingFilters are the public list filters. All set filters must match
// (AND); Limit caps the result after filtering.
type ListingFilters struct {
	Location string
	Type     string
	Status   string
	Budget   string
	Featured bool
	Limit    int
}

// ListingInput is the create payload. Published and Featured default to
// false unless explicitly set.
type ListingInput struct {
	Title          string   `json:"title"`
	Location       string   `json:"location"`
	Address        string   `json:"address"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	PriceRange     string   `json:"priceRange"`
	Developers     []string `json:"developers"`
	ReraIDs        []string `json:"reraIds"`
	Possession     string   `json:"possession"`
	Configurations []string `json:"configurations"`
	Sizes          string   `json:"sizes"`
	Amenities      []string `json:"amenities"`
	Overview       string   `json:"overview"`
	Highlights     []string `json:"highlights"`
	Images         []string `json:"images"`
	VideoURL       string   `json:"videoUrl"`
	BudgetCategory string   `json:"budgetCategory"`
	Published      bool     `json:"published"`
	Featured       bool     `json:"featured"`
}

// ListingUpdate is the merge-update payload. Nil fields are left
// untouched. There are deliberately no id, slug or createdAt fields:
// those are write-protected after creation.
type ListingUpdate struct {
	Title          *string  `json:"title"`
	Location       *string  `json:"location"`
	Address        *string  `json:"address"`
	Type           *string  `json:"type"`
	Status         *string  `json:"status"`
	PriceRange     *string  `json:"priceRange"`
	Developers     []string `json:"developers"`
	ReraIDs        []string `json:"reraIds"`
	Possession     *string  `json:"possession"`
	Configurations []string `json:"configurations"`
	Sizes          *string  `json:"sizes"`
	Amenities      []string `json:"amenities"`
	Overview       *string  `json:"overview"`
	Highlights     []string `json:"highlights"`
	Images         []string `json:"images"`
	VideoURL       *string  `json:"videoUrl"`
	BudgetCategory *string  `json:"budgetCategory"`
	Published      *bool    `json:"published"`
	Featured       *bool    `json:"featured"`
}

// List returns published listings matching the filters, in collection
// order.
func (s *ListingService) List(f ListingFilters) ([]models.Listing, error) {
	records, err := s.col.ReadAll()
	if err != nil {
		return nil, err
	}

	out := make([]models.Listing, 0, len(records))
	for _, l := range records {
		if !l.Published {
			continue
		}
		if f.Location != "" && !strings.EqualFold(l.Location, f.Location) {
			continue
		}
		if f.Type != "" && !strings.EqualFold(l.Type, f.Type) {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if f.Budget != "" && l.BudgetCategory != f.Budget {
			continue
		}
		if f.Featured && !l.Featured {
			continue
		}
		out = append(out, l)
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// ListAll returns every listing, drafts included.
func (s *ListingService) ListAll() ([]models.Listing, error) {
	return s.col.ReadAll()
}

// Featured returns listings that are both published and featured.
func (s *ListingService) Featured() ([]models.Listing, error) {
	records, err := s.col.ReadAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.Listing, 0)
	for _, l := range records {
		if l.Published && l.Featured {
			out = append(out, l)
		}
	}
	return out, nil
}

// GetBySlug is the public lookup. An unpublished listing behaves exactly
// like a nonexistent one so drafts cannot be reached by guessing URLs.
func (s *ListingService) GetBySlug(slug string) (models.Listing, error) {
	records, err := s.col.ReadAll()
	if err != nil {
		return models.Listing{}, err
	}
	for _, l := range records {
		if l.Slug == slug && l.Published {
			return l, nil
		}
	}
	return models.Listing{}, models.ErrNotFound
}

// Create validates the input, generates id and slug and appends the new
// listing. A slug collision is resolved once, at creation time, by
// appending a base36 timestamp.
func (s *ListingService) Create(input ListingInput) (models.Listing, error) {
	if input.Title == "" || input.Location == "" || input.Type == "" || input.Status == "" {
		return models.Listing{}, models.Invalid("Title, location, type, and status are required")
	}
	if !contains(models.ListingTypes, input.Type) {
		return models.Listing{}, models.Invalid("Type must be one of: " + strings.Join(models.ListingTypes, ", "))
	}
	if !contains(s.statuses, input.Status) {
		return models.Listing{}, models.Invalid("Status must be one of: " + strings.Join(s.statuses, ", "))
	}

	slug := ident.Slugify(input.Title)
	if slug == "" {
		return models.Listing{}, models.Invalid("Title must contain at least one letter or digit")
	}

	now := time.Now().UTC()
	listing := models.Listing{
		ID:             ident.NewID(s.idPrefix),
		Slug:           slug,
		Title:          input.Title,
		Location:       input.Location,
		Address:        input.Address,
		Type:           input.Type,
		Status:         input.Status,
		PriceRange:     input.PriceRange,
		Developers:     orEmpty(input.Developers),
		ReraIDs:        orEmpty(input.ReraIDs),
		Possession:     input.Possession,
		Configurations: orEmpty(input.Configurations),
		Sizes:          input.Sizes,
		Amenities:      orEmpty(input.Amenities),
		Overview:       input.Overview,
		Highlights:     orEmpty(input.Highlights),
		Images:         orEmpty(input.Images),
		VideoURL:       input.VideoURL,
		BudgetCategory: input.BudgetCategory,
		Published:      input.Published,
		Featured:       input.Featured,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.col.Update(func(records []models.Listing) ([]models.Listing, error) {
		for _, existing := range records {
			if existing.Slug == listing.Slug {
				listing.Slug = slug + "-" + ident.SlugSuffix()
				break
			}
		}
		return append(records, listing), nil
	})
	if err != nil {
		return models.Listing{}, err
	}
	return listing, nil
}

// Update merges the patch onto the existing listing. Id, slug and
// createdAt are kept from the stored record no matter what the caller
// sends; updatedAt is bumped.
func (s *ListingService) Update(id string, patch ListingUpdate) (models.Listing, error) {
	if patch.Type != nil && !contains(models.ListingTypes, *patch.Type) {
		return models.Listing{}, models.Invalid("Type must be one of: " + strings.Join(models.ListingTypes, ", "))
	}
	if patch.Status != nil && !contains(s.statuses, *patch.Status) {
		return models.Listing{}, models.Invalid("Status must be one of: " + strings.Join(s.statuses, ", "))
	}

	var updated models.Listing
	err := s.col.Update(func(records []models.Listing) ([]models.Listing, error) {
		for i := range records {
			if records[i].ID != id {
				continue
			}
			l := records[i]
			setIf(&l.Title, patch.Title)
			setIf(&l.Location, patch.Location)
			setIf(&l.Address, patch.Address)
			setIf(&l.Type, patch.Type)
			setIf(&l.Status, patch.Status)
			setIf(&l.PriceRange, patch.PriceRange)
			setIf(&l.Possession, patch.Possession)
			setIf(&l.Sizes, patch.Sizes)
			setIf(&l.Overview, patch.Overview)
			setIf(&l.VideoURL, patch.VideoURL)
			setIf(&l.BudgetCategory, patch.BudgetCategory)
			setIf(&l.Published, patch.Published)
			setIf(&l.Featured, patch.Featured)
			if patch.Developers != nil {
				l.Developers = patch.Developers
			}
			if patch.ReraIDs != nil {
				l.ReraIDs = patch.ReraIDs
			}
			if patch.Configurations != nil {
				l.Configurations = patch.Configurations
			}
			if patch.Amenities != nil {
				l.Amenities = patch.Amenities
			}
			if patch.Highlights != nil {
				l.Highlights = patch.Highlights
			}
			if patch.Images != nil {
				l.Images = patch.Images
			}
			l.UpdatedAt = time.Now().UTC()
			records[i] = l
			updated = l
			return records, nil
		}
		return nil, models.ErrNotFound
	})
	if err != nil {
		return models.Listing{}, err
	}
	return updated, nil
}

// TogglePublish flips the published flag.
func (s *ListingService) TogglePublish(id string) (models.Listing, error) {
	var updated models.Listing
	err := s.col.Update(func(records []models.Listing) ([]models.Listing, error) {
		for i := range records {
			if records[i].ID != id {
				continue
			}
			records[i].Published = !records[i].Published
			records[i].UpdatedAt = time.Now().UTC()
			updated = records[i]
			return records, nil
		}
		return nil, models.ErrNotFound
	})
	if err != nil {
		return models.Listing{}, err
	}
	return updated, nil
}

// Delete removes the listing. Hard delete; leads referencing it keep
// their denormalized project name.
func (s *ListingService) Delete(id string) error {
	return s.col.Update(func(records []models.Listing) ([]models.Listing, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, models.ErrNotFound
	})
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
