package usecase

import (
	"strings"
	"testing"

	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"

	"github.com/stretchr/testify/assert"
)

func TestJobsMatchCacheKey(t *testing.T) {
	a := JobsMatchCacheKey(skillset.New("Go", "SQL"), 100)
	assert.True(t, strings.HasPrefix(a, cachePrefixSkillMatch))
	assert.True(t, strings.HasPrefix(a, cachePrefixJobs))

	assert.Equal(t, a, JobsMatchCacheKey(skillset.New("Go", "SQL", "Go"), 100))
	assert.NotEqual(t, a, JobsMatchCacheKey(skillset.New("go", "SQL"), 100))
	assert.NotEqual(t, a, JobsMatchCacheKey(skillset.New("SQL", "Go"), 100))
	assert.NotEqual(t, a, JobsMatchCacheKey(skillset.New("Go", "SQL"), 50))
}
