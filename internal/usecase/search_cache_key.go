package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
)

const (
	cachePrefixJobs       = "jobs:"
	cachePrefixSkillMatch = "jobs:match:"
	cacheKeyCategories    = "jobs:categories"
)

// JobsMatchCacheKey keeps skill case and order since both affect the result.
func JobsMatchCacheKey(skills skillset.Set, poolLimit int) string {
	sum := sha256.Sum256([]byte(skillset.Encode(skills) + "|" + strconv.Itoa(poolLimit)))
	return cachePrefixSkillMatch + hex.EncodeToString(sum[:])
}
