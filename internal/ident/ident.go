package ident

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NewID returns an opaque record identifier: the current unix millisecond
// in base36 followed by six random base36 characters, prefixed with
// "<prefix>-" when a prefix is given. Uniqueness is probabilistic (a
// collision needs the same millisecond and the same random suffix), so
// callers must treat insertion as best-effort.
func NewID(prefix string) string {
	var b strings.Builder
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	for i := 0; i < 6; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	return b.String()
}

// Slugify derives a URL-safe slug from a title: lowercase, every run of
// characters outside [a-z0-9] collapsed to a single hyphen, leading and
// trailing hyphens trimmed. A punctuation-only title yields ""; callers
// must reject that as invalid input rather than store an empty slug.
func Slugify(title string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// SlugSuffix returns the base36 timestamp appended to a slug when the
// derived slug already exists in the target collection.
func SlugSuffix() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36)
}
