package store

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Sources: one row per upstream air district
CREATE TABLE IF NOT EXISTS sources (
    web_id TEXT PRIMARY KEY,
    source_url TEXT NOT NULL,
    label TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Fetches: every pipeline invocation persisted through the store
CREATE TABLE IF NOT EXISTS fetches (
    fetch_id TEXT PRIMARY KEY,
    web_id TEXT NOT NULL,
    fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_text TEXT,
    day_count INTEGER NOT NULL,
    entry_count INTEGER NOT NULL,
    FOREIGN KEY (web_id) REFERENCES sources(web_id)
);

CREATE INDEX IF NOT EXISTS idx_fetches_web ON fetches(web_id);
CREATE INDEX IF NOT EXISTS idx_fetches_time ON fetches(fetched_at);

-- Days: day columns observed per source; day_id is the scrape's stable id
CREATE TABLE IF NOT EXISTS days (
    web_id TEXT NOT NULL,
    day_id TEXT NOT NULL,
    label TEXT NOT NULL,
    date TEXT,
    PRIMARY KEY (web_id, day_id),
    FOREIGN KEY (web_id) REFERENCES sources(web_id)
);

-- Entries: (source, area, day) facts; id is the deterministic scrape id,
-- so replaying the same upstream table is a no-op upsert
CREATE TABLE IF NOT EXISTS entries (
    id TEXT PRIMARY KEY,
    web_id TEXT NOT NULL,
    web_source TEXT NOT NULL,
    web_label TEXT NOT NULL,
    area_id TEXT NOT NULL,
    area_source TEXT NOT NULL,
    area_label TEXT NOT NULL,
    day_id TEXT NOT NULL,
    value INTEGER,              -- 1 permitted, 0 not permitted, NULL unknown
    first_seen TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_seen TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (web_id) REFERENCES sources(web_id)
);

CREATE INDEX IF NOT EXISTS idx_entries_web ON entries(web_id);
CREATE INDEX IF NOT EXISTS idx_entries_area ON entries(area_id);
CREATE INDEX IF NOT EXISTS idx_entries_day ON entries(day_id);
`
