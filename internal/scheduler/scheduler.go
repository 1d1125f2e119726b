// Package scheduler runs theme analysis on a cron schedule.
package scheduler

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vportella/feedbackiq/internal/processor"
)

// Start parses the cron expression and launches a background loop
// that runs theme analysis at each scheduled time. An empty or invalid
// expression disables scheduling.
func Start(schedule string, proc *processor.Processor) {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		log.Printf("Scheduled theme analysis disabled")
		return
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		log.Printf("WARNING: invalid ANALYZE_SCHEDULE %q, scheduled analysis disabled: %v", schedule, err)
		return
	}

	go func() {
		for {
			next := sched.Next(time.Now())
			log.Printf("Next scheduled theme analysis at %s", next.Format(time.RFC3339))
			time.Sleep(time.Until(next))

			result, err := proc.AnalyzeThemes(context.Background())
			if err != nil {
				log.Printf("Scheduled theme analysis failed: %v", err)
				continue
			}
			log.Printf("Scheduled theme analysis done: %d theme(s) from %d feedback item(s)", len(result.Themes), result.AnalyzedFeedback)
		}
	}()
}
