package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheKeyPrefix is the Redis key prefix for cached posts.
const cacheKeyPrefix = "post:"

// cachedPostRepository decorates a PostRepository with a Redis read-through
// cache on FindByID. The single-post page is the only anonymous-heavy read
// path, so it is the only one cached. The cache is best effort: any Redis
// failure logs a warning and falls through to the database.
type cachedPostRepository struct {
	inner PostRepository
	redis *redis.Client
	ttl   time.Duration
}

// NewCachedRepository wraps repo with a Redis cache for single-post lookups.
// Entries expire after ttl and are invalidated on Update and Delete.
func NewCachedRepository(repo PostRepository, rdb *redis.Client, ttl time.Duration) PostRepository {
	return &cachedPostRepository{inner: repo, redis: rdb, ttl: ttl}
}

// Create passes through; nothing is cached for a brand-new id.
func (r *cachedPostRepository) Create(ctx context.Context, post *Post) error {
	return r.inner.Create(ctx, post)
}

// FindByID serves from Redis when possible, falling back to the database
// and populating the cache on a miss.
func (r *cachedPostRepository) FindByID(ctx context.Context, id int64) (*Post, error) {
	key := cacheKey(id)

	data, err := r.redis.Get(ctx, key).Bytes()
	if err == nil {
		post := &Post{}
		if err := json.Unmarshal(data, post); err == nil {
			return post, nil
		}
		// Undecodable entry -- drop it and fall through.
		r.redis.Del(ctx, key)
	} else if err != redis.Nil {
		slog.Warn("post cache read failed",
			slog.Int64("post_id", id),
			slog.Any("error", err),
		)
	}

	post, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(post); err == nil {
		if err := r.redis.Set(ctx, key, data, r.ttl).Err(); err != nil {
			slog.Warn("post cache write failed",
				slog.Int64("post_id", id),
				slog.Any("error", err),
			)
		}
	}

	return post, nil
}

// ListByAuthor passes through. The dashboard always shows live data.
func (r *cachedPostRepository) ListByAuthor(ctx context.Context, authorID int64) ([]Post, error) {
	return r.inner.ListByAuthor(ctx, authorID)
}

// Update writes through and drops the cached entry.
func (r *cachedPostRepository) Update(ctx context.Context, id int64, title, body string) error {
	if err := r.inner.Update(ctx, id, title, body); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// Delete writes through and drops the cached entry.
func (r *cachedPostRepository) Delete(ctx context.Context, id int64) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// invalidate removes a post's cache entry. Failure only means a stale read
// until the TTL runs out, so it is logged and not propagated.
func (r *cachedPostRepository) invalidate(ctx context.Context, id int64) {
	if err := r.redis.Del(ctx, cacheKey(id)).Err(); err != nil {
		slog.Warn("post cache invalidation failed",
			slog.Int64("post_id", id),
			slog.Any("error", err),
		)
	}
}

// cacheKey builds the Redis key for a post id.
func cacheKey(id int64) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, id)
}
