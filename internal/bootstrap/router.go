package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/benmore-apps/taskrabbit-backend/internal/api/http"
	"github.com/benmore-apps/taskrabbit-backend/internal/api/http/middleware"
	"github.com/benmore-apps/taskrabbit-backend/internal/auth"
	"github.com/benmore-apps/taskrabbit-backend/internal/cache"
	projhttp "github.com/benmore-apps/taskrabbit-backend/internal/projects/http"
	projrepo "github.com/benmore-apps/taskrabbit-backend/internal/projects/repository"
	projservice "github.com/benmore-apps/taskrabbit-backend/internal/projects/service"
	"github.com/benmore-apps/taskrabbit-backend/internal/storage/photos"
	taskhttp "github.com/benmore-apps/taskrabbit-backend/internal/tasks/http"
	taskrepo "github.com/benmore-apps/taskrabbit-backend/internal/tasks/repository"
	taskservice "github.com/benmore-apps/taskrabbit-backend/internal/tasks/service"
	"github.com/benmore-apps/taskrabbit-backend/internal/users"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool

	Users    users.Store
	Projects projrepo.Store
	Tasks    taskrepo.Store
	Counts   *cache.Summary
	Photos   *photos.Store

	RateLimitRPS int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	if dep.Photos != nil {
		r.Static("/media", dep.Photos.Dir())
	}

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(middleware.RateLimitMiddleware(dep.RateLimitRPS))
	api.Use(auth.WithUser(dep.Users))

	projSvc := projservice.New(dep.Projects, dep.Tasks, dep.Users, dep.Counts)
	projhttp.New(projSvc, dep.Photos).Register(api.Group("/projects"))

	taskSvc := taskservice.New(dep.Tasks, dep.Projects, dep.Counts)
	taskhttp.New(taskSvc).Register(api.Group("/tasks"))

	return r
}
