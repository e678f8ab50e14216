// Command checkguide fetches the configured TV guide sources and reports
// which mirrors are usable. Handy when the guide endpoint starts serving
// fallback data and you want to know which mirror broke.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"lismoretv/config"
	"lismoretv/services/guide"
)

func main() {
	var (
		configPath = flag.String("config", "cache/settings.json", "Path to settings.json")
		timeout    = flag.Duration("timeout", 2*time.Minute, "Overall fetch deadline")
	)
	flag.Parse()

	mgr := config.NewManager(*configPath)
	settings, err := mgr.Load()
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	svc, err := guide.NewService(settings.Guide)
	if err != nil {
		log.Fatalf("create guide service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	programs := svc.Programs(ctx)
	status := svc.Status()

	for _, src := range status.Sources {
		line := fmt.Sprintf("%-12s %s", src.Outcome, src.URL)
		if src.Detail != "" {
			line += " (" + src.Detail + ")"
		}
		fmt.Println(line)
	}

	if status.Fallback {
		fmt.Println("\nno usable source: guide endpoint would serve synthetic programs")
		os.Exit(1)
	}

	total := 0
	for _, list := range programs {
		total += len(list)
	}
	fmt.Printf("\nloaded %d programs across %d channels\n", total, len(programs))
}
