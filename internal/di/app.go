package di

import (
	"gorm.io/gorm"

	"microblog/internal/config"
	"microblog/internal/dbmysql"
	"microblog/internal/feed"
	"microblog/internal/message"
	"microblog/internal/notif"
	"microblog/internal/search"
	"microblog/internal/user"
)

// App holds the assembled application: every handler plus the services
// the entrypoint needs directly.
type App struct {
	Config    *config.Config
	Store     *dbmysql.Store
	Reindexer *search.Reindexer

	Users    user.UserService
	Feed     feed.FeedService
	Messages message.MessageService

	UserHandler    *user.Handler
	FeedHandler    *feed.Handler
	MessageHandler *message.Handler
	NotifHandler   *notif.Handler
}

// ProvideStore wraps the gorm handle in the transactional store with
// the search synchronizer attached as commit observer.
func ProvideStore(db *gorm.DB, sync *search.Synchronizer) *dbmysql.Store {
	return dbmysql.NewStore(db, sync)
}
