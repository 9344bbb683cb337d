package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/benmore-apps/taskrabbit-backend/config"
	"github.com/benmore-apps/taskrabbit-backend/internal/bootstrap"
	projdomain "github.com/benmore-apps/taskrabbit-backend/internal/projects/domain"
	projrepo "github.com/benmore-apps/taskrabbit-backend/internal/projects/repository"
	"github.com/benmore-apps/taskrabbit-backend/internal/storage/photos"
	taskdomain "github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
	taskrepo "github.com/benmore-apps/taskrabbit-backend/internal/tasks/repository"
	"github.com/benmore-apps/taskrabbit-backend/internal/users"
)

var companyWords = []string{
	"Acme", "Northwind", "Bluebird", "Redwood", "Hilltop", "Lakeside",
	"Ironclad", "Sunrise", "Cobalt", "Meridian", "Granite", "Harbor",
}

var companySuffixes = []string{
	"Logistics", "Systems", "Media", "Labs", "Partners", "Industries",
	"Consulting", "Holdings", "Studio", "Works",
}

var taskVerbs = []string{
	"Review", "Draft", "Ship", "Refactor", "Document", "Test", "Design",
	"Deploy", "Audit", "Schedule",
}

var taskObjects = []string{
	"the onboarding flow", "quarterly invoices", "the landing page",
	"client contracts", "the staging environment", "release notes",
	"the billing pipeline", "team rotations", "the support queue",
	"vendor agreements",
}

var seedUsers = []users.Upsert{
	{Username: "amara.okafor", Email: "amara@benmore.dev", DisplayName: "Amara Okafor"},
	{Username: "jonas.lindqvist", Email: "jonas@benmore.dev", DisplayName: "Jonas Lindqvist"},
	{Username: "priya.raman", Email: "priya@benmore.dev", DisplayName: "Priya Raman"},
	{Username: "marco.deluca", Email: "marco@benmore.dev", DisplayName: "Marco De Luca"},
	{Username: "saoirse.byrne", Email: "saoirse@benmore.dev", DisplayName: "Saoirse Byrne"},
	{Username: "kenji.watanabe", Email: "kenji@benmore.dev", DisplayName: "Kenji Watanabe"},
	{Username: "lena.hoffmann", Email: "lena@benmore.dev", DisplayName: "Lena Hoffmann"},
	{Username: "tomas.silva", Email: "tomas@benmore.dev", DisplayName: "Tomas Silva"},
}

func main() {
	nProjects := flag.Int("projects", 10, "number of projects to create")
	nTasks := flag.Int("tasks", 20, "tasks per project")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	photoStore, err := photos.New(cfg.Uploads.Dir)
	if err != nil {
		log.Fatalf("photos: %v", err)
	}

	userRepo := users.NewRepo(pool)
	projectRepo := projrepo.NewPostgres(pool)
	taskRepo := taskrepo.NewPostgres(pool)

	memberIDs := make([]int64, 0, len(seedUsers))
	for _, u := range seedUsers {
		created, err := userRepo.EnsureUser(ctx, u)
		if err != nil {
			log.Fatalf("seed user %s: %v", u.Username, err)
		}
		memberIDs = append(memberIDs, created.ID)
	}
	log.Printf("ensured %d users", len(memberIDs))

	for i := 0; i < *nProjects; i++ {
		due := time.Now().UTC().AddDate(0, 0, 1+rand.Intn(30))

		p, err := projectRepo.Create(ctx, projdomain.Project{
			Title:   randomCompany(),
			DueDate: &due,
			Members: randomMembers(memberIDs),
		})
		if err != nil {
			log.Fatalf("seed project: %v", err)
		}

		name, err := writePhoto(photoStore)
		if err != nil {
			log.Fatalf("seed photo: %v", err)
		}
		if _, err := projectRepo.SetPhoto(ctx, p.ID, name); err != nil {
			log.Fatalf("attach photo: %v", err)
		}

		for j := 0; j < *nTasks; j++ {
			_, err := taskRepo.Create(ctx, taskdomain.Task{
				Title:     randomTaskTitle(),
				ProjectID: p.ID,
				Complete:  rand.Intn(2) == 0,
			})
			if err != nil {
				log.Fatalf("seed task: %v", err)
			}
		}

		log.Printf("created project %d %q with %d tasks", p.ID, p.Title, *nTasks)
	}
}

func randomCompany() string {
	return companyWords[rand.Intn(len(companyWords))] + " " +
		companySuffixes[rand.Intn(len(companySuffixes))]
}

func randomTaskTitle() string {
	return taskVerbs[rand.Intn(len(taskVerbs))] + " " +
		taskObjects[rand.Intn(len(taskObjects))]
}

func randomMembers(ids []int64) []int64 {
	n := 1 + rand.Intn(3)
	perm := rand.Perm(len(ids))
	out := make([]int64, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, ids[idx])
	}
	return out
}

// writePhoto generates a solid-color 200x200 PNG into the upload dir and
// returns its stored name.
func writePhoto(store *photos.Store) (string, error) {
	name, err := store.Filename("seed.png")
	if err != nil {
		return "", err
	}

	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	fill := color.RGBA{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
		A: 255,
	}
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, fill)
		}
	}

	f, err := os.Create(store.Path(name))
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode photo: %w", err)
	}
	return name, nil
}
