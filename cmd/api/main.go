package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/benmore-apps/taskrabbit-backend/config"
	"github.com/benmore-apps/taskrabbit-backend/internal/bootstrap"
	"github.com/benmore-apps/taskrabbit-backend/internal/cache"
	cronjob "github.com/benmore-apps/taskrabbit-backend/internal/cron"
	projrepo "github.com/benmore-apps/taskrabbit-backend/internal/projects/repository"
	"github.com/benmore-apps/taskrabbit-backend/internal/storage/photos"
	taskrepo "github.com/benmore-apps/taskrabbit-backend/internal/tasks/repository"
	"github.com/benmore-apps/taskrabbit-backend/internal/users"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	deps := bootstrap.RouterDeps{
		ServiceName:  "taskrabbit-backend",
		Version:      cfg.App.Version,
		RateLimitRPS: cfg.App.RateLimit,
	}

	switch cfg.App.Store {
	case "memory":
		taskStore := taskrepo.NewMemory()
		deps.Tasks = taskStore
		deps.Projects = projrepo.NewMemory(taskStore)
		deps.Users = users.NewMemory()
		log.Println("using in-memory record store")
	default:
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pool.Close()

		deps.DB = pool
		deps.Tasks = taskrepo.NewPostgres(pool)
		deps.Projects = projrepo.NewPostgres(pool)
		deps.Users = users.NewRepo(pool)
	}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
		deps.Counts = cache.NewSummary(client)
		log.Printf("task-count cache enabled via redis at %s", cfg.Redis.Addr)
	}

	photoStore, err := photos.New(cfg.Uploads.Dir)
	if err != nil {
		log.Fatalf("photos: %v", err)
	}
	deps.Photos = photoStore

	projects := deps.Projects
	sched := cronjob.NewScheduler(func() (int, error) {
		referenced, err := projects.PhotoPaths(context.Background())
		if err != nil {
			return 0, err
		}
		return photoStore.Sweep(context.Background(), referenced)
	})
	sched.Start()
	defer sched.Stop()

	r := bootstrap.BuildRouter(deps)

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
