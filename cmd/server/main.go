package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"microblog/internal/common"
	"microblog/internal/config"
	"microblog/internal/dbmysql"
	"microblog/internal/di"
	"microblog/internal/search"
)

func main() {
	reindex := flag.Bool("reindex", false, "rebuild the full-text index from the database and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.LoadConfig()

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if !cfg.SearchEnabled() {
		log.Println("No search backend configured, search is disabled")
	}
	index, err := search.NewClient(cfg.Search.URL)
	if err != nil {
		log.Fatalf("Failed to create search client: %v", err)
	}

	app, err := di.InitializeApp(db, index, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *reindex {
		log.Println("Rebuilding search indexes...")
		if err := app.Reindexer.ReindexAll(context.Background()); err != nil {
			log.Fatalf("Reindex failed: %v", err)
		}
		log.Println("Reindex completed")
		return
	}

	router := newRouter(app)

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

func newRouter(app *di.App) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	app.UserHandler.RegisterPublicRoutes(api)

	authed := api.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	authed.Use(app.UserHandler.LastSeenMiddleware)
	app.UserHandler.RegisterRoutes(authed)
	app.FeedHandler.RegisterRoutes(authed)
	app.MessageHandler.RegisterRoutes(authed)
	app.NotifHandler.RegisterRoutes(authed)

	return router
}
