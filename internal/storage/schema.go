// ABOUTME: SQLite database schema for ranking engine storage
// ABOUTME: Creates all tables and indexes for posts, stats, interests, and vectors
package storage

// Schema contains all SQL statements for database initialization
const Schema = `
-- Interest profile singleton table
CREATE TABLE IF NOT EXISTS interest_profile (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    handle TEXT,
    interests TEXT,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Posts under ranking consideration
CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    author_id TEXT NOT NULL,
    author_handle TEXT,
    text TEXT NOT NULL,
    created_at DATETIME,
    fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Cached behavioral stats per author
CREATE TABLE IF NOT EXISTS author_stats (
    author_id TEXT PRIMARY KEY,
    followers INTEGER DEFAULT 0,
    following INTEGER DEFAULT 0,
    posts_per_day REAL DEFAULT 0,
    recent_posts INTEGER DEFAULT 0,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Embeddings table (vector storage)
CREATE TABLE IF NOT EXISTS embeddings (
    id TEXT PRIMARY KEY,
    post_id TEXT,
    vector BLOB NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_posts_author ON posts(author_id);
CREATE INDEX IF NOT EXISTS idx_embeddings_post ON embeddings(post_id);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
