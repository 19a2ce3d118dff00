package server

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// ResultRow is one solved puzzle in the result table.
type ResultRow struct {
	SolvedAt    time.Time `bigquery:"solved_at" json:"solvedAt"`
	Lines       int       `bigquery:"lines" json:"lines"`
	UniqueCount int       `bigquery:"unique_count" json:"uniqueCount"`
	OutputSum   int       `bigquery:"output_sum" json:"outputSum"`
}

// Recorder writes solved puzzles to a BigQuery table and reads them back.
type Recorder struct {
	client  *bigquery.Client
	project string
	dataset string
	table   string
}

func NewRecorder(ctx context.Context, project, dataset, table string) (*Recorder, error) {
	client, err := bigquery.NewClient(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	return &Recorder{
		client:  client,
		project: project,
		dataset: dataset,
		table:   table,
	}, nil
}

func (r *Recorder) Close() error {
	return r.client.Close()
}

// Record appends one row to the result table.
func (r *Recorder) Record(ctx context.Context, row ResultRow) error {
	inserter := r.client.Dataset(r.dataset).Table(r.table).Inserter()
	if err := inserter.Put(ctx, row); err != nil {
		return fmt.Errorf("inserter.Put: %w", err)
	}
	return nil
}

// Recent returns the most recently solved puzzles, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]ResultRow, error) {
	query := fmt.Sprintf(
		"SELECT solved_at, lines, unique_count, output_sum FROM `%s.%s.%s` ORDER BY solved_at DESC LIMIT %d",
		r.project, r.dataset, r.table, limit)
	q := r.client.Query(query)

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var rows []ResultRow
	for {
		var row ResultRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
