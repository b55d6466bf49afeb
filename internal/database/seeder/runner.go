package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/database"

	"go.uber.org/zap"
)

// Seeder inserts demo rows. Run must be safe to repeat.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeder done", zap.String("seeder", s.Name()), zap.Duration("took", time.Since(start)))
	}
	return nil
}
