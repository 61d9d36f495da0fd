package posts

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// newTestCache wires a cached repository over a miniredis instance and the
// given inner mock.
func newTestCache(t *testing.T, inner PostRepository) (PostRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewCachedRepository(inner, rdb, 5*time.Minute), mr
}

func TestCachedRepository_SecondReadSkipsDatabase(t *testing.T) {
	dbReads := 0
	inner := &mockPostRepo{
		findByIDFn: func(ctx context.Context, id int64) (*Post, error) {
			dbReads++
			return &Post{ID: id, Title: "cached", Body: "body", AuthorID: 7, AuthorName: "abc"}, nil
		},
	}
	repo, _ := newTestCache(t, inner)
	ctx := context.Background()

	first, err := repo.FindByID(ctx, 10)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := repo.FindByID(ctx, 10)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}

	if dbReads != 1 {
		t.Errorf("expected 1 database read, got %d", dbReads)
	}
	if first.ID != second.ID || first.Title != second.Title || first.AuthorName != second.AuthorName {
		t.Errorf("cache returned a different post: %+v vs %+v", first, second)
	}
}

func TestCachedRepository_UpdateInvalidates(t *testing.T) {
	dbReads := 0
	title := "before"
	inner := &mockPostRepo{
		findByIDFn: func(ctx context.Context, id int64) (*Post, error) {
			dbReads++
			return &Post{ID: id, Title: title, AuthorID: 7}, nil
		},
	}
	repo, mr := newTestCache(t, inner)
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, 10); err != nil {
		t.Fatalf("priming read: %v", err)
	}
	if !mr.Exists("post:10") {
		t.Fatal("expected the post to be cached after the first read")
	}

	title = "after"
	if err := repo.Update(ctx, 10, "after", "body"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if mr.Exists("post:10") {
		t.Error("expected the cache entry to be dropped on update")
	}

	post, err := repo.FindByID(ctx, 10)
	if err != nil {
		t.Fatalf("read after update: %v", err)
	}
	if post.Title != "after" {
		t.Errorf("expected fresh title after invalidation, got %q", post.Title)
	}
	if dbReads != 2 {
		t.Errorf("expected 2 database reads, got %d", dbReads)
	}
}

func TestCachedRepository_DeleteInvalidates(t *testing.T) {
	inner := &mockPostRepo{
		findByIDFn: func(ctx context.Context, id int64) (*Post, error) {
			return &Post{ID: id, Title: "doomed", AuthorID: 7}, nil
		},
	}
	repo, mr := newTestCache(t, inner)
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, 10); err != nil {
		t.Fatalf("priming read: %v", err)
	}
	if err := repo.Delete(ctx, 10); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists("post:10") {
		t.Error("expected the cache entry to be dropped on delete")
	}
}

// Redis being down must not take the read path with it.
func TestCachedRepository_RedisDownFallsThrough(t *testing.T) {
	inner := &mockPostRepo{
		findByIDFn: func(ctx context.Context, id int64) (*Post, error) {
			return &Post{ID: id, Title: "resilient", AuthorID: 7}, nil
		},
	}
	repo, mr := newTestCache(t, inner)
	mr.Close()

	post, err := repo.FindByID(context.Background(), 10)
	if err != nil {
		t.Fatalf("expected fallthrough to the database, got %v", err)
	}
	if post.Title != "resilient" {
		t.Errorf("unexpected post %+v", post)
	}
}

func TestCachedRepository_UndecodableEntryDropped(t *testing.T) {
	inner := &mockPostRepo{
		findByIDFn: func(ctx context.Context, id int64) (*Post, error) {
			return &Post{ID: id, Title: "recovered", AuthorID: 7}, nil
		},
	}
	repo, mr := newTestCache(t, inner)

	if err := mr.Set("post:10", "{not json"); err != nil {
		t.Fatalf("seeding bad entry: %v", err)
	}

	post, err := repo.FindByID(context.Background(), 10)
	if err != nil {
		t.Fatalf("read with poisoned cache: %v", err)
	}
	if post.Title != "recovered" {
		t.Errorf("expected the database row, got %+v", post)
	}
}
