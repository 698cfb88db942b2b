package ident

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id := NewID("lead")
	assert.True(t, strings.HasPrefix(id, "lead-"))
	assert.Regexp(t, regexp.MustCompile(`^lead-[0-9a-z]+$`), id)

	// No prefix means no separator either
	bare := NewID("")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-z]+$`), bare)
	assert.NotContains(t, bare, "-")
}

func TestNewID_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID("x")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "skyline-residency", Slugify("Skyline Residency"))
	assert.Equal(t, "2-3-bhk-flats-in-pune", Slugify("2 & 3 BHK Flats in Pune!"))
	assert.Equal(t, "luxury-villas", Slugify("  Luxury   Villas  "))

	// Already-slugged input is a fixed point
	assert.Equal(t, "skyline-residency", Slugify("skyline-residency"))
}

func TestSlugify_PunctuationOnly(t *testing.T) {
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "", Slugify(""))
}
