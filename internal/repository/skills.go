package repository

import (
	"encoding/json"

	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// decodeSkills reads a stored skill column. Unparsable text yields an empty
// set and a warning so one bad row never fails a whole listing.
func decodeSkills(log *zap.Logger, kind string, id uuid.UUID, text *string) skillset.Set {
	s, ok := skillset.Decode(text)
	if !ok {
		log.Warn("malformed skill list",
			zap.String("kind", kind),
			zap.String("id", id.String()),
			zap.String("raw", *text),
		)
	}
	return s
}

func encodeStrings(v []string) *string {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

func decodeStrings(text *string) []string {
	if text == nil || *text == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(*text), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
