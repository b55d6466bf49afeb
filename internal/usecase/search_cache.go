package usecase

import (
	"context"
	"time"
)

type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, prefixes ...string) error
}

type noopCache struct{}

func (noopCache) GetJSON(context.Context, string, any) (bool, error)         { return false, nil }
func (noopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) Invalidate(context.Context, ...string) error                { return nil }

func cacheOrNoop(c SearchCache) SearchCache {
	if c == nil {
		return noopCache{}
	}
	return c
}
