package store

// SchemaVersion is the layout of the stored values this build writes.
const SchemaVersion = 2

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);
`

// Keys of the persisted collections.
const (
	KeyMood         = "rb_mood_v2"
	KeySavings      = "rb_savings_v2"
	KeyInvestments  = "rb_invest_v2"
	KeyDebts        = "rb_debts_v2"
	KeyTransactions = "rb_tx_v2"
	KeySettings     = "rb_settings_v2"

	// KeyLegacySurvival held the monthly survival cost before it moved
	// into settings.
	KeyLegacySurvival = "rb_survival_v2"
)

const metaSchemaVersion = "schema_version"
