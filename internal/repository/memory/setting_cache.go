package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/contract"
)

// SettingCache is a read-through cache over the settings repository. Gateway
// credentials are read on every checkout, so the hot path avoids the DB.
// Writes go straight through and invalidate the cached group.
type SettingCache struct {
	inner contract.SettingRepository
	cache *cache.Cache
}

func NewSettingCache(inner contract.SettingRepository) *SettingCache {
	// Settings change rarely; a short TTL keeps admin edits visible without
	// an explicit bus between instances.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &SettingCache{
		inner: inner,
		cache: c,
	}
}

func (r *SettingCache) Upsert(ctx context.Context, setting *entity.Setting) error {
	if err := r.inner.Upsert(ctx, setting); err != nil {
		return err
	}
	r.cache.Delete(setting.Group)
	return nil
}

func (r *SettingCache) FindGroup(ctx context.Context, group string) ([]*entity.Setting, error) {
	if x, found := r.cache.Get(group); found {
		return x.([]*entity.Setting), nil
	}
	settings, err := r.inner.FindGroup(ctx, group)
	if err != nil {
		return nil, err
	}
	r.cache.Set(group, settings, cache.DefaultExpiration)
	return settings, nil
}

func (r *SettingCache) FindValue(ctx context.Context, group, key string) (string, error) {
	settings, err := r.FindGroup(ctx, group)
	if err != nil {
		return "", err
	}
	for _, s := range settings {
		if s.Key == key {
			return s.Value, nil
		}
	}
	return "", nil
}

func (r *SettingCache) Delete(ctx context.Context, group, key string) error {
	if err := r.inner.Delete(ctx, group, key); err != nil {
		return err
	}
	r.cache.Delete(group)
	return nil
}
