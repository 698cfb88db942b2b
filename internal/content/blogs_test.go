package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpprealtech/server/internal/models"
	"vpprealtech/server/internal/store"
)

func newBlogService(t *testing.T) *BlogService {
	t.Helper()
	col := store.NewCollection[models.Blog](t.TempDir(), "blogs")
	return NewBlogService(col)
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 1, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("just a few words"))
	assert.Equal(t, 1, ReadingTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("word ", 250)))
	assert.Equal(t, 3, ReadingTime(strings.Repeat("word ", 401)))
}

func TestBlogService_CreateDefaults(t *testing.T) {
	svc := newBlogService(t)

	blog, err := svc.Create(BlogInput{Title: "Market Trends 2026", Content: "short post"})
	require.NoError(t, err)

	assert.Equal(t, "market-trends-2026", blog.Slug)
	assert.Equal(t, "VPP Realtech", blog.Author)
	assert.Equal(t, 1, blog.ReadingTime)
	assert.False(t, blog.Published)
}

func TestBlogService_CreateRequiresTitle(t *testing.T) {
	svc := newBlogService(t)
	_, err := svc.Create(BlogInput{Content: "body"})
	assert.True(t, models.IsValidation(err))
}

func TestBlogService_ListOrder(t *testing.T) {
	svc := newBlogService(t)

	_, err := svc.Create(BlogInput{Title: "Older", Published: true})
	require.NoError(t, err)
	newer, err := svc.Create(BlogInput{Title: "Newer", Published: true})
	require.NoError(t, err)
	_, err = svc.Create(BlogInput{Title: "Draft"})
	require.NoError(t, err)

	posts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	// Newest first; the draft never shows
	assert.Equal(t, newer.ID, posts[0].ID)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBlogService_UpdateRecomputesReadingTime(t *testing.T) {
	svc := newBlogService(t)

	blog, err := svc.Create(BlogInput{Title: "Post", Content: "short"})
	require.NoError(t, err)
	assert.Equal(t, 1, blog.ReadingTime)

	long := strings.Repeat("word ", 450)
	updated, err := svc.Update(blog.ID, BlogUpdate{Content: &long})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ReadingTime)
	assert.Equal(t, blog.Slug, updated.Slug)
}

func TestBlogService_GetBySlugHidesDrafts(t *testing.T) {
	svc := newBlogService(t)

	blog, err := svc.Create(BlogInput{Title: "Hidden Draft"})
	require.NoError(t, err)

	_, err = svc.GetBySlug(blog.Slug)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.TogglePublish(blog.ID)
	require.NoError(t, err)

	got, err := svc.GetBySlug(blog.Slug)
	assert.NoError(t, err)
	assert.Equal(t, blog.ID, got.ID)
}

func TestBlogService_Delete(t *testing.T) {
	svc := newBlogService(t)
	blog, err := svc.Create(BlogInput{Title: "Short Lived"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(blog.ID))
	assert.ErrorIs(t, svc.Delete(blog.ID), models.ErrNotFound)
}
