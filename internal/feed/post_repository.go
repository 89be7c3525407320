package feed

import (
	"context"
	"fmt"
	"sort"

	"microblog/internal/common"
	"microblog/internal/dbmysql"
	"microblog/internal/search"
)

func init() {
	search.Register(&dbmysql.Post{})
}

type PostRepository interface {
	// Create persists a post inside a Store transaction so commit
	// observers (the search synchronizer) see it.
	Create(ctx context.Context, post *dbmysql.Post) error
	ByAuthor(ctx context.Context, userID uint64, page, perPage int) ([]dbmysql.Post, int64, error)
	CountByAuthor(ctx context.Context, userID uint64) (int64, error)
	All(ctx context.Context, page, perPage int) ([]dbmysql.Post, int64, error)
	// Followed returns the feed: posts authored by userID or by anyone
	// userID follows, newest first.
	Followed(ctx context.Context, userID uint64, page, perPage int) ([]dbmysql.Post, int64, error)
	// Search queries the full-text index and returns matching posts in
	// relevance order together with the total hit count.
	Search(ctx context.Context, expression string, page, perPage int) ([]dbmysql.Post, int, error)
}

type postRepository struct {
	store *dbmysql.Store
	index search.IndexClient
}

func NewPostRepository(store *dbmysql.Store, index search.IndexClient) PostRepository {
	return &postRepository{store: store, index: index}
}

func (r *postRepository) Create(ctx context.Context, post *dbmysql.Post) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return err
	}
	if err := tx.Create(post); err != nil {
		tx.Rollback()
		return fmt.Errorf("create post: %w", err)
	}
	return tx.Commit()
}

func (r *postRepository) ByAuthor(ctx context.Context, userID uint64, page, perPage int) ([]dbmysql.Post, int64, error) {
	q := r.store.DB().WithContext(ctx).
		Model(&dbmysql.Post{}).
		Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	var posts []dbmysql.Post
	err := q.Order("timestamp DESC, id DESC").
		Offset(common.PageOffset(page, perPage)).
		Limit(perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	return posts, total, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	err := r.store.DB().WithContext(ctx).
		Model(&dbmysql.Post{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

func (r *postRepository) All(ctx context.Context, page, perPage int) ([]dbmysql.Post, int64, error) {
	var total int64
	if err := r.store.DB().WithContext(ctx).Model(&dbmysql.Post{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	var posts []dbmysql.Post
	err := r.store.DB().WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Offset(common.PageOffset(page, perPage)).
		Limit(perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	return posts, total, nil
}

func (r *postRepository) Followed(ctx context.Context, userID uint64, page, perPage int) ([]dbmysql.Post, int64, error) {
	followed := r.store.DB().
		Table("follows").
		Select("followed_id").
		Where("follower_id = ?", userID)

	q := r.store.DB().WithContext(ctx).
		Model(&dbmysql.Post{}).
		Where("user_id = ? OR user_id IN (?)", userID, followed)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count feed: %w", err)
	}

	var posts []dbmysql.Post
	err := q.Order("timestamp DESC, id DESC").
		Offset(common.PageOffset(page, perPage)).
		Limit(perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list feed: %w", err)
	}
	return posts, total, nil
}

func (r *postRepository) Search(ctx context.Context, expression string, page, perPage int) ([]dbmysql.Post, int, error) {
	ids, total, err := r.index.Search(ctx, dbmysql.PostIndex, expression,
		common.PageOffset(page, perPage), perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("search index: %w", err)
	}
	if total == 0 {
		// nothing matched (or search is disabled); skip the relational
		// round trip entirely
		return []dbmysql.Post{}, 0, nil
	}
	if len(ids) == 0 {
		// page window past the last hit; the total still stands so
		// pagination can point back at the real pages
		return []dbmysql.Post{}, total, nil
	}

	var posts []dbmysql.Post
	err = r.store.DB().WithContext(ctx).
		Where("id IN ?", ids).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("fetch matched posts: %w", err)
	}

	// the engine's relevance order is not reproducible with ORDER BY;
	// re-sort the rows to match the rank positions it returned
	rank := make(map[uint64]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	sort.Slice(posts, func(i, j int) bool {
		return rank[posts[i].ID] < rank[posts[j].ID]
	})

	return posts, total, nil
}

