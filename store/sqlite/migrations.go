package sqlite

// Schema statements executed by Migrate. SQLite needs no versioned
// migration machinery for a single append-only table.
const schema = `
CREATE TABLE IF NOT EXISTS mintgate_receipts (
    id           TEXT PRIMARY KEY,
    sale_id      TEXT NOT NULL DEFAULT '',
    kind         TEXT NOT NULL DEFAULT '',
    item_id      INTEGER,
    account      TEXT NOT NULL DEFAULT '',
    from_account TEXT NOT NULL DEFAULT '',
    amount       TEXT NOT NULL DEFAULT '0',
    price        TEXT NOT NULL DEFAULT '0',
    created_at   TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at   TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_mintgate_receipts_sale ON mintgate_receipts (sale_id);
CREATE INDEX IF NOT EXISTS idx_mintgate_receipts_sale_kind ON mintgate_receipts (sale_id, kind);
`
