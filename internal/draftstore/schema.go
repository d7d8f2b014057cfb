package draftstore

const schemaSQL = `
CREATE TABLE IF NOT EXISTS drafts (
    key          TEXT PRIMARY KEY,
    payload      TEXT NOT NULL,
    updated_at   TEXT NOT NULL
);
`
