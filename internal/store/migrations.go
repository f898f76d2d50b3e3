package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL UNIQUE,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS trackers (
	id          TEXT PRIMARY KEY,
	category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
	title       TEXT NOT NULL,
	color       TEXT NOT NULL DEFAULT '',
	emoji       TEXT NOT NULL DEFAULT '',
	schedule    TEXT NOT NULL DEFAULT '[]',
	kind        TEXT NOT NULL DEFAULT 'habit' CHECK(kind IN ('habit', 'event')),
	pinned      INTEGER NOT NULL DEFAULT 0 CHECK(pinned IN (0, 1)),
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trackers_category_id ON trackers(category_id);
CREATE INDEX IF NOT EXISTS idx_trackers_pinned ON trackers(pinned);

CREATE TABLE IF NOT EXISTS completion_records (
	tracker_id TEXT NOT NULL REFERENCES trackers(id) ON DELETE CASCADE,
	day        DATETIME NOT NULL,
	PRIMARY KEY (tracker_id, day)
);

CREATE INDEX IF NOT EXISTS idx_completion_records_day ON completion_records(day);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
