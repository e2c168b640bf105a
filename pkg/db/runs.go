package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run represents one extraction run.
type Run struct {
	RunID            int64
	RunUUID          string
	CreatedAt        time.Time
	InputDir         string
	OutputPath       string
	DocumentCount    int
	TotalTools       int
	TotalExperiences int
	TotalPeople      int
}

// RunDocument is one note's contribution to a run.
type RunDocument struct {
	Identifier      string
	ContentHash     string
	DateLabel       string
	ToolCount       int
	ExperienceCount int
}

// RecordRun stores a run and its documents in one transaction.
// RunID, RunUUID and CreatedAt are assigned here; DocumentCount is taken
// from docs.
func (db *DB) RecordRun(run Run, docs []RunDocument) (*Run, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after Commit

	run.RunUUID = uuid.New().String()
	run.DocumentCount = len(docs)

	result, err := tx.Exec(`
		INSERT INTO runs (run_uuid, input_dir, output_path, document_count,
		                  total_tools, total_experiences, total_people)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.RunUUID, run.InputDir, run.OutputPath, run.DocumentCount,
		run.TotalTools, run.TotalExperiences, run.TotalPeople)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	run.RunID, err = result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get run ID: %w", err)
	}

	for i, d := range docs {
		_, err := tx.Exec(`
			INSERT INTO run_documents (run_id, position, identifier, content_hash,
			                           date_label, tool_count, experience_count)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, run.RunID, i, d.Identifier, d.ContentHash, d.DateLabel, d.ToolCount, d.ExperienceCount)
		if err != nil {
			return nil, fmt.Errorf("failed to record document %s: %w", d.Identifier, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run: %w", err)
	}

	return db.GetRunByID(run.RunID)
}

// GetRunByID returns a single run.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, run_uuid, created_at, input_dir, output_path, document_count,
		       total_tools, total_experiences, total_people
		FROM runs WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.RunUUID, &r.CreatedAt, &r.InputDir, &r.OutputPath,
		&r.DocumentCount, &r.TotalTools, &r.TotalExperiences, &r.TotalPeople)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// ListRuns returns the most recent runs first. limit <= 0 returns all.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, run_uuid, created_at, input_dir, output_path, document_count,
		       total_tools, total_experiences, total_people
		FROM runs
		ORDER BY created_at DESC, run_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.RunUUID, &r.CreatedAt, &r.InputDir, &r.OutputPath,
			&r.DocumentCount, &r.TotalTools, &r.TotalExperiences, &r.TotalPeople); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// GetRunDocuments returns a run's documents in corpus order.
func (db *DB) GetRunDocuments(runID int64) ([]RunDocument, error) {
	rows, err := db.Query(`
		SELECT identifier, content_hash, COALESCE(date_label, ''), tool_count, experience_count
		FROM run_documents
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run documents: %w", err)
	}
	defer rows.Close()

	var docs []RunDocument
	for rows.Next() {
		var d RunDocument
		if err := rows.Scan(&d.Identifier, &d.ContentHash, &d.DateLabel, &d.ToolCount, &d.ExperienceCount); err != nil {
			return nil, fmt.Errorf("failed to scan run document: %w", err)
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

// PreviousHashes returns identifier -> content hash for the run recorded
// just before runID, or an empty map if there is none.
func (db *DB) PreviousHashes(runID int64) (map[string]string, error) {
	var prevID int64
	err := db.QueryRow(`SELECT run_id FROM runs WHERE run_id < ? ORDER BY run_id DESC LIMIT 1`, runID).Scan(&prevID)
	if err == sql.ErrNoRows {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find previous run: %w", err)
	}

	docs, err := db.GetRunDocuments(prevID)
	if err != nil {
		return nil, err
	}

	hashes := make(map[string]string, len(docs))
	for _, d := range docs {
		hashes[d.Identifier] = d.ContentHash
	}
	return hashes, nil
}
