package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "study-in-canada", Slugify("Study in Canada"))
	assert.Equal(t, "scholarships-2026", Slugify("  Scholarships   2026  "))
	assert.Equal(t, "already-lower", Slugify("already-lower"))
	assert.Equal(t, "", Slugify("   "))
}

func TestDisambiguateSlug(t *testing.T) {
	assert.Equal(t, "study-in-canada-2", DisambiguateSlug("study-in-canada", 2))
	assert.Equal(t, "study-in-canada-15", DisambiguateSlug("study-in-canada", 15))
}
