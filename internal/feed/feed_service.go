package feed

import (
	"context"
	"log"

	"github.com/abadojack/whatlanggo"

	"microblog/internal/common"
	"microblog/internal/config"
	"microblog/internal/dbmysql"
)

// UserDirectory is the slice of the user repository the feed needs for
// resolving profile pages.
type UserDirectory interface {
	ByUsername(ctx context.Context, username string) (*dbmysql.User, error)
}

type FeedService interface {
	CreatePost(ctx context.Context, authorID uint64, body string) (*dbmysql.Post, error)
	// Timeline is the personalized feed: the user's own posts plus
	// posts of everyone they follow.
	Timeline(ctx context.Context, userID uint64, page int) (common.Page[dbmysql.Post], error)
	// Explore shows every post on the site, newest first.
	Explore(ctx context.Context, page int) (common.Page[dbmysql.Post], error)
	UserPosts(ctx context.Context, username string, page int) (common.Page[dbmysql.Post], error)
	// SearchPosts full-text searches post bodies. Search being down or
	// unconfigured degrades to an empty page, never an error.
	SearchPosts(ctx context.Context, expression string, page int) (common.Page[dbmysql.Post], error)
}

type feedService struct {
	posts   PostRepository
	users   UserDirectory
	perPage int
}

func NewFeedService(posts PostRepository, users UserDirectory, cfg *config.Config) FeedService {
	return &feedService{
		posts:   posts,
		users:   users,
		perPage: cfg.App.PostsPerPage,
	}
}

func (s *feedService) CreatePost(ctx context.Context, authorID uint64, body string) (*dbmysql.Post, error) {
	if err := common.ValidatePostBody(body); err != nil {
		return nil, err
	}

	post := &dbmysql.Post{
		UserID:   authorID,
		Body:     body,
		Language: detectLanguage(body),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// detectLanguage tags the post body with an ISO 639-1 code, best
// effort. Short or ambiguous text gets an empty tag.
func detectLanguage(body string) string {
	info := whatlanggo.Detect(body)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}

func (s *feedService) Timeline(ctx context.Context, userID uint64, page int) (common.Page[dbmysql.Post], error) {
	posts, total, err := s.posts.Followed(ctx, userID, page, s.perPage)
	if err != nil {
		return common.Page[dbmysql.Post]{}, err
	}
	return common.NewPage(posts, page, s.perPage, total), nil
}

func (s *feedService) Explore(ctx context.Context, page int) (common.Page[dbmysql.Post], error) {
	posts, total, err := s.posts.All(ctx, page, s.perPage)
	if err != nil {
		return common.Page[dbmysql.Post]{}, err
	}
	return common.NewPage(posts, page, s.perPage, total), nil
}

func (s *feedService) UserPosts(ctx context.Context, username string, page int) (common.Page[dbmysql.Post], error) {
	user, err := s.users.ByUsername(ctx, username)
	if err != nil {
		return common.Page[dbmysql.Post]{}, err
	}

	posts, total, err := s.posts.ByAuthor(ctx, user.ID, page, s.perPage)
	if err != nil {
		return common.Page[dbmysql.Post]{}, err
	}
	return common.NewPage(posts, page, s.perPage, total), nil
}

func (s *feedService) SearchPosts(ctx context.Context, expression string, page int) (common.Page[dbmysql.Post], error) {
	posts, total, err := s.posts.Search(ctx, expression, page, s.perPage)
	if err != nil {
		// a broken search backend reads as "no results", the page
		// must never hard-fail on it
		log.Printf("feed: search %q failed: %v", expression, err)
		return common.NewPage([]dbmysql.Post{}, page, s.perPage, 0), nil
	}
	return common.NewPage(posts, page, s.perPage, int64(total)), nil
}
