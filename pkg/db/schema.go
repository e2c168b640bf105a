package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs: one row per extract invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    input_dir TEXT NOT NULL,
    output_path TEXT NOT NULL,
    document_count INTEGER NOT NULL DEFAULT 0,
    total_tools INTEGER NOT NULL DEFAULT 0,
    total_experiences INTEGER NOT NULL DEFAULT 0,
    total_people INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

-- Run documents: what each note contributed to a run
CREATE TABLE IF NOT EXISTS run_documents (
    run_document_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    identifier TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    date_label TEXT,
    tool_count INTEGER NOT NULL DEFAULT 0,
    experience_count INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_run_documents_run ON run_documents(run_id);
CREATE INDEX IF NOT EXISTS idx_run_documents_identifier ON run_documents(identifier);
`
