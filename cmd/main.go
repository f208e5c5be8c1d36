package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vnkhanh/podcast-site/config"
	"github.com/vnkhanh/podcast-site/controllers"
	"github.com/vnkhanh/podcast-site/middleware"
	"github.com/vnkhanh/podcast-site/repository"
	"github.com/vnkhanh/podcast-site/routes"
	"github.com/vnkhanh/podcast-site/services"
	"github.com/vnkhanh/podcast-site/utils"
)

func main() {
	os.Exit(run(os.Args, utils.NewLogger(os.Getenv("GIN_MODE") == gin.DebugMode)))
}

func newApp(log *zap.Logger) *cli.App {
	return &cli.App{
		Name:  "podcast-site",
		Usage: "podcast listings and RSS feeds",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return serve(ctx.Context, log)
				},
			},
			{
				Name:  "migrate",
				Usage: "run database migrations",
				Action: func(ctx *cli.Context) error {
					return migrate(log)
				},
			},
		},
	}
}

// run trả về exit code; log được flush trước khi main gọi os.Exit
func run(args []string, log *zap.Logger) int {
	defer log.Sync()

	if err := newApp(log).Run(args); err != nil {
		log.Error("podcast-site exited", zap.Error(err))
		return 1
	}
	return 0
}

func migrate(log *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := config.OpenDB(cfg)
	if err != nil {
		return err
	}
	if err := config.Migrate(db); err != nil {
		return err
	}
	log.Info("postgreSQL migrated successfully")
	return nil
}

func serve(ctx context.Context, log *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := config.OpenDB(cfg)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins(),
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Accept", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Location"},
	}))

	svc := services.NewPodcastService(
		repository.NewGormPodcastRepository(db),
		services.ListingConfig{
			IndexPerPage:          cfg.IndexPerPage,
			IndexFirstPage:        cfg.IndexFirstPage,
			ViewPerPage:           cfg.ViewPerPage,
			PreviewEpisodes:       cfg.IndexPreviewEpisodes,
			FeedMaxEpisodes:       cfg.FeedMaxEpisodes,
			RedirectSinglePodcast: cfg.RedirectSinglePodcast,
		},
		log,
	)
	routes.SetupRouter(r, db, controllers.NewPodcastController(svc, cfg.SiteURL, log))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	eg, groupCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
