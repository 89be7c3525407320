//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"microblog/internal/config"
	"microblog/internal/feed"
	"microblog/internal/message"
	"microblog/internal/notif"
	"microblog/internal/search"
	"microblog/internal/user"
)

// InitializeApp assembles the full application graph. Wire generates
// the real body in wire_gen.go.
func InitializeApp(db *gorm.DB, index search.IndexClient, cfg *config.Config) (*App, error) {
	wire.Build(
		search.NewSynchronizer,
		search.NewReindexer,
		ProvideStore,
		user.NewUserRepository,
		user.NewFollowRepository,
		feed.NewPostRepository,
		notif.NewNotificationRepository,
		message.NewMessageRepository,
		user.NewUserService,
		feed.NewFeedService,
		notif.NewNotificationService,
		message.NewMessageService,
		user.NewHandler,
		feed.NewHandler,
		notif.NewHandler,
		message.NewHandler,
		wire.Bind(new(user.PostCounter), new(feed.PostRepository)),
		wire.Bind(new(feed.UserDirectory), new(user.UserRepository)),
		wire.Bind(new(message.UserStore), new(user.UserRepository)),
		wire.Bind(new(message.Notifier), new(notif.NotificationService)),
		wire.Struct(new(App), "*"),
	)
	return &App{}, nil
}
