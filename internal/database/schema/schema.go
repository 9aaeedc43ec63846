package schema

// TableDefinitions contains the SQL statements that create the touchpoint
// tables. Statements are idempotent so startup can run them unconditionally.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS visitors (
		id VARCHAR(64) PRIMARY KEY,
		first_seen_at TIMESTAMPTZ NOT NULL,
		last_seen_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id VARCHAR(64) PRIMARY KEY,
		visitor_id VARCHAR(64) NOT NULL,
		first_seen_at TIMESTAMPTZ NOT NULL,
		last_seen_at TIMESTAMPTZ NOT NULL,
		ip_first VARCHAR(64),
		ua_first TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS attributions (
		token VARCHAR(64) PRIMARY KEY,
		first_touch_at TIMESTAMPTZ NOT NULL,
		last_touch_at TIMESTAMPTZ NOT NULL,
		first_url TEXT NOT NULL,
		last_url TEXT NOT NULL,
		first_referrer TEXT,
		last_referrer TEXT,
		ip VARCHAR(64),
		user_agent TEXT,
		utm_source TEXT,
		utm_medium TEXT,
		utm_campaign TEXT,
		utm_term TEXT,
		utm_content TEXT,
		gclid TEXT,
		gbraid TEXT,
		wbraid TEXT,
		dclid TEXT,
		fbclid TEXT,
		fbp TEXT,
		fbc TEXT,
		ttclid TEXT,
		msclkid TEXT,
		hubspotutk TEXT,
		visitor_id VARCHAR(64) NOT NULL,
		session_id VARCHAR(64) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inbound_webhooks (
		id UUID PRIMARY KEY,
		source VARCHAR(32) NOT NULL,
		action VARCHAR(64) NOT NULL,
		external_id VARCHAR(64) NOT NULL,
		body_raw TEXT NOT NULL,
		body_hash VARCHAR(64) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS inbound_webhooks_body_hash_idx
		ON inbound_webhooks (source, body_hash)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id VARCHAR(64) PRIMARY KEY,
		appointment_type_id VARCHAR(64),
		calendar_id VARCHAR(64),
		status VARCHAR(32) NOT NULL,
		datetime TEXT,
		email TEXT,
		phone TEXT,
		first_name TEXT,
		last_name TEXT,
		attribution_token VARCHAR(64),
		gclid TEXT,
		ttclid TEXT,
		fbp TEXT,
		fbc TEXT,
		raw_payload TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS canonical_events (
		id UUID PRIMARY KEY,
		name VARCHAR(64) NOT NULL,
		event_time TIMESTAMPTZ NOT NULL,
		appointment_id VARCHAR(64),
		attribution_token VARCHAR(64),
		value DOUBLE PRECISION,
		currency VARCHAR(8) NOT NULL,
		event_id VARCHAR(64) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS deliveries (
		id UUID PRIMARY KEY,
		canonical_event_id UUID NOT NULL,
		platform VARCHAR(32) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
		attempts INTEGER NOT NULL DEFAULT 0,
		last_attempt_at TIMESTAMPTZ,
		response_code INTEGER,
		response_body TEXT,
		request_body TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (canonical_event_id, platform)
	)`,
	`CREATE INDEX IF NOT EXISTS deliveries_status_idx
		ON deliveries (status)`,
}
