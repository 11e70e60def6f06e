// Command topstatsd periodically recomputes the published leaderboards.
// It is the daemon counterpart of `amfftool topstats update`.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/tools/topstats"
	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
)

var projectID string
var schedule string
var top int
var once bool

func init() {
	flag.StringVar(&projectID, "project", "", "Google Cloud Project ID. If equal to the empty string, the environment variable GCP_PROJECT will be used.")
	flag.StringVar(&schedule, "schedule", "0 9,16 * * *", "Cron expression for leaderboard refreshes.")
	flag.IntVar(&top, "top", 6, "Number of entries per leaderboard.")
	flag.BoolVar(&once, "once", false, "Refresh once and exit instead of running on a schedule.")
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}
	flag.Parse()

	if projectID == "" {
		projectID = os.Getenv("GCP_PROJECT")
	}
	if projectID == "" {
		log.Fatal("Project ID required: set -project or GCP_PROJECT")
	}

	client, err := fs.NewClient(context.Background(), projectID)
	if err != nil {
		log.Fatalf("Failed to create firestore client: %v", err)
	}
	defer client.Close()

	refresh := func() {
		ctx := topstats.NewContext(context.Background())
		ctx.FirestoreClient = client
		ctx.TopN = top
		ctx.NoProgress = true
		if err := topstats.UpdateTopStats(ctx); err != nil {
			log.Printf("Leaderboard refresh failed: %v", err)
			return
		}
		log.Print("Leaderboard refresh complete")
	}

	if once {
		refresh()
		return
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	_, err = sched.NewJob(
		gocron.CronJob(schedule, false),
		gocron.NewTask(refresh),
		gocron.WithName("topstats-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeWait),
	)
	if err != nil {
		log.Fatalf("Failed to schedule refresh job: %v", err)
	}

	sched.Start()
	log.Printf("Scheduled leaderboard refreshes (%s)", schedule)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	if err := sched.Shutdown(); err != nil {
		log.Printf("Scheduler shutdown failed: %v", err)
	}
}
