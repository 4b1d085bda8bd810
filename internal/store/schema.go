package store

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL,
    sample TEXT NOT NULL,
    data_file TEXT NOT NULL,
    curves_file TEXT NOT NULL,
    sirm REAL NOT NULL,
    hcr REAL NOT NULL,
    points INTEGER NOT NULL,
    components INTEGER NOT NULL,
    plot_path TEXT
);

CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
CREATE INDEX IF NOT EXISTS idx_analyses_sample ON analyses(sample);
`
