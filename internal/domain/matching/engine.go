package matching

import (
	"errors"
	"math"
	"sort"

	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"

	"github.com/google/uuid"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Candidate is a job or a person being matched. Item is carried through untouched.
type Candidate[T any] struct {
	ID     uuid.UUID
	Skills skillset.Set
	Item   T
}

type Result[T any] struct {
	Candidate       Candidate[T]
	MatchPercentage int
	MatchingSkills  skillset.Set
	SkillGap        skillset.Set
}

// Match scores every candidate against query and returns the non-zero matches,
// best first. The percentage is relative to the candidate's own skill count.
// Equal percentages keep pool order.
func Match[T any](query skillset.Set, pool []Candidate[T]) ([]Result[T], error) {
	if query.IsEmpty() || query.HasBlank() {
		return nil, ErrInvalidArgument
	}

	out := make([]Result[T], 0, len(pool))
	for _, c := range pool {
		r := Score(query, c)
		if r.MatchPercentage == 0 {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out, nil
}

// Score computes the match of a single candidate without filtering.
func Score[T any](query skillset.Set, c Candidate[T]) Result[T] {
	matching := query.Intersect(c.Skills)
	return Result[T]{
		Candidate:       c,
		MatchPercentage: Percentage(matching.Len(), c.Skills.Len()),
		MatchingSkills:  matching,
		SkillGap:        c.Skills.Difference(query),
	}
}

func Percentage(matched, total int) int {
	denom := total
	if denom < 1 {
		denom = 1
	}
	pct := int(math.Round(100 * float64(matched) / float64(denom)))
	return clampInt(pct, 0, 100)
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
