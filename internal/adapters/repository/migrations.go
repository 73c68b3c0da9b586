package repository

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    seq           INTEGER PRIMARY KEY AUTOINCREMENT,
    id            TEXT NOT NULL UNIQUE,
    board         TEXT NOT NULL,
    generated_at  TEXT NOT NULL,
    players       INTEGER NOT NULL DEFAULT 0,
    top_person_id TEXT NOT NULL DEFAULT '',
    top_score     REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_board ON runs(board, seq);

CREATE TABLE IF NOT EXISTS run_scores (
    run_id     TEXT NOT NULL REFERENCES runs(id),
    person_id  TEXT NOT NULL,
    board_rank INTEGER NOT NULL,
    score      REAL NOT NULL,
    PRIMARY KEY (run_id, person_id)
);
`
