package main

import (
	"context"
	"log"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/joho/godotenv"

	"crosswarped.com/sevenseg/internal/server"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	var recorder *server.Recorder
	if project := os.Getenv("BIGQUERY_PROJECT"); project != "" {
		dataset := os.Getenv("BIGQUERY_DATASET")
		table := os.Getenv("BIGQUERY_TABLE")
		if dataset == "" || table == "" {
			log.Fatalf("BIGQUERY_PROJECT is set but BIGQUERY_DATASET or BIGQUERY_TABLE is missing")
		}

		var err error
		recorder, err = server.NewRecorder(ctx, project, dataset, table)
		if err != nil {
			log.Fatalf("server.NewRecorder: %v", err)
		}
		defer recorder.Close()
	}

	srv := server.New(recorder)
	funcframework.RegisterHTTPFunction("/decode", srv.Decode)
	funcframework.RegisterHTTPFunction("/results", srv.Results)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
