package content

import (
	"sort"
	"strings"
	"time"

	"vpprealtech/server/internal/ident"
	"vpprealtech/server/internal/models"
	"vpprealtech/server/internal/store"
)

const wordsPerMinute = 200

const defaultAuthor = "VPP Realtech"

// BlogService implements CRUD and publish gating for blog posts.
type BlogService struct {
	col *store.Collection[models.Blog]
}

// NewBlogService binds the service to the blogs collection.
func NewBlogService(col *store.Collection[models.Blog]) *BlogService {
	return &BlogService{col: col}
}

// BlogInput is the create payload.
type BlogInput struct {
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Author        string   `json:"author"`
	FeaturedImage string   `json:"featuredImage"`
	GalleryImages []string `json:"galleryImages"`
	SourceLink    string   `json:"sourceLink"`
	Published     bool     `json:"published"`
}

// BlogUpdate is the merge-update payload; nil fields are left untouched.
// Id, slug and createdAt are write-protected.
type BlogUpdate struct {
	Title         *string  `json:"title"`
	Excerpt       *string  `json:"excerpt"`
	Content       *string  `json:"content"`
	Category      *string  `json:"category"`
	Author        *string  `json:"author"`
	FeaturedImage *string  `json:"featuredImage"`
	GalleryImages []string `json:"galleryImages"`
	SourceLink    *string  `json:"sourceLink"`
	Published     *bool    `json:"published"`
}

// ReadingTime estimates the minutes needed to read content at 200 words
// per minute, with a minimum of one minute.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// List returns published posts, newest first.
func (s *BlogService) List() ([]models.Blog, error) {
	records, err := s.col.ReadAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.Blog, 0, len(records))
	for _, b := range records {
		if b.Published {
			out = append(out, b)
		}
	}
	sortByCreatedDesc(out)
	return out, nil
}

// ListAll returns every post, drafts included, newest first.
func (s *BlogService) ListAll() ([]models.Blog, error) {
	records, err := s.col.ReadAll()
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(records)
	return records, nil
}

// GetBySlug is the public lookup; unpublished posts are indistinguishable
// from missing ones.
func (s *BlogService) GetBySlug(slug string) (models.Blog, error) {
	records, err := s.col.ReadAll()
	if err != nil {
		return models.Blog{}, err
	}
	for _, b := range records {
		if b.Slug == slug && b.Published {
			return b, nil
		}
	}
	return models.Blog{}, models.ErrNotFound
}

// Create validates the input, derives slug and reading time and appends
// the post.
func (s *BlogService) Create(input BlogInput) (models.Blog, error) {
	if input.Title == "" {
		return models.Blog{}, models.Invalid("Title is required")
	}
	slug := ident.Slugify(input.Title)
	if slug == "" {
		return models.Blog{}, models.Invalid("Title must contain at least one letter or digit")
	}
	author := input.Author
	if author == "" {
		author = defaultAuthor
	}

	now := time.Now().UTC()
	blog := models.Blog{
		ID:            ident.NewID("blog"),
		Slug:          slug,
		Title:         input.Title,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		Category:      input.Category,
		Author:        author,
		FeaturedImage: input.FeaturedImage,
		GalleryImages: orEmpty(input.GalleryImages),
		SourceLink:    input.SourceLink,
		ReadingTime:   ReadingTime(input.Content),
		Published:     input.Published,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.col.Update(func(records []models.Blog) ([]models.Blog, error) {
		for _, existing := range records {
			if existing.Slug == blog.Slug {
				blog.Slug = slug + "-" + ident.SlugSuffix()
				break
			}
		}
		return append(records, blog), nil
	})
	if err != nil {
		return models.Blog{}, err
	}
	return blog, nil
}

// Update merges the patch onto the existing post; a content change
// recomputes the reading time.
func (s *BlogService) Update(id string, patch BlogUpdate) (models.Blog, error) {
	var updated models.Blog
	err := s.col.Update(func(records []models.Blog) ([]models.Blog, error) {
		for i := range records {
			if records[i].ID != id {
				continue
			}
			b := records[i]
			setIf(&b.Title, patch.Title)
			setIf(&b.Excerpt, patch.Excerpt)
			setIf(&b.Category, patch.Category)
			setIf(&b.Author, patch.Author)
			setIf(&b.FeaturedImage, patch.FeaturedImage)
			setIf(&b.SourceLink, patch.SourceLink)
			setIf(&b.Published, patch.Published)
			if patch.GalleryImages != nil {
				b.GalleryImages = patch.GalleryImages
			}
			if patch.Content != nil {
				b.Content = *patch.Content
				b.ReadingTime = ReadingTime(b.Content)
			}
			b.UpdatedAt = time.Now().UTC()
			records[i] = b
			updated = b
			return records, nil
		}
		return nil, models.ErrNotFound
	})
	if err != nil {
		return models.Blog{}, err
	}
	return updated, nil
}

// TogglePublish flips the published flag.
func (s *BlogService) TogglePublish(id string) (models.Blog, error) {
	var updated models.Blog
	err := s.col.Update(func(records []models.Blog) ([]models.Blog, error) {
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
		return models.Blog{}, err
	}
	return updated, nil
}

// Delete removes the post.
func (s *BlogService) Delete(id string) error {
	return s.col.Update(func(records []models.Blog) ([]models.Blog, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, models.ErrNotFound
	})
}

func sortByCreatedDesc(records []models.Blog) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}
