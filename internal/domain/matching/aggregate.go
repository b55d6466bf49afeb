package matching

import (
	"sort"

	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
)

type Frequency struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Aggregate counts each distinct skill once per pool entry and returns the
// topN most frequent. Ties keep the order in which a skill was first seen.
func Aggregate(pool []skillset.Set, topN int) []Frequency {
	if topN <= 0 {
		return []Frequency{}
	}

	table := make([]Frequency, 0)
	pos := make(map[string]int)
	for _, s := range pool {
		for _, name := range s.Names() {
			i, ok := pos[name]
			if !ok {
				pos[name] = len(table)
				table = append(table, Frequency{Skill: name, Count: 1})
				continue
			}
			table[i].Count++
		}
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})

	if len(table) > topN {
		table = table[:topN]
	}
	return table
}
