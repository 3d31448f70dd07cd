package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/pivolan/opendata_analyzer/config"
)

func main() {
	fmt.Println("started")
	cfg := config.GetConfig()
	if cfg.DatasetURL == "" {
		log.Fatalln("DATASET_URL is not set")
	}

	fetcher := NewDatasetFetcher(cfg.DatasetURL, cfg.PageSize)
	analyzer := NewAnalyzer(fetcher)

	mux := http.NewServeMux()
	NewWebHandler(analyzer).Register(mux)

	go func() {
		fmt.Println("listen on: http://localhost" + cfg.ListenAddr)
		err := http.ListenAndServe(cfg.ListenAddr, mux)
		if err != nil {
			fmt.Println("Error starting server:", err)
			os.Exit(1)
		}
	}()

	if err := analyzer.LoadAll(context.Background()); err != nil {
		// partial data stays usable, the server keeps serving it
		log.Printf("Error loading dataset: %v", err)
	}
	dashboard := analyzer.Dashboard("", "")
	fmt.Printf("loaded snapshot %s: %d rows, group=%s metric=%s date=%s\n",
		dashboard.SnapshotID, dashboard.RowCount,
		dashboard.GroupColumn, dashboard.MetricColumn, dashboard.DateColumn)

	select {}
}
