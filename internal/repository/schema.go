package repository

// schema is applied by Migrate. The partial unique index guarantees at most one unpaid loan per
// borrower even when two creations race.
const schema = `
CREATE SCHEMA IF NOT EXISTS lending;

CREATE TABLE IF NOT EXISTS lending.borrowers (
	id               UUID PRIMARY KEY,
	name             TEXT NOT NULL,
	phone            TEXT NOT NULL UNIQUE,
	national_id_hash TEXT NOT NULL UNIQUE,
	national_id_enc  TEXT NOT NULL,
	address          TEXT NOT NULL,
	email            TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS lending.loans (
	id            UUID PRIMARY KEY,
	borrower_id   UUID NOT NULL REFERENCES lending.borrowers (id),
	principal     NUMERIC(18, 2) NOT NULL CHECK (principal > 0),
	interest_rate NUMERIC(9, 4) NOT NULL,
	total_amount  NUMERIC(18, 2) NOT NULL,
	start_date    TIMESTAMPTZ NOT NULL,
	end_date      TIMESTAMPTZ NOT NULL,
	due_day       SMALLINT NOT NULL,
	status        TEXT NOT NULL CHECK (status IN ('unpaid', 'paid')),
	installments  JSONB NOT NULL,
	version       INTEGER NOT NULL DEFAULT 1,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS loans_one_active_per_borrower
	ON lending.loans (borrower_id) WHERE status = 'unpaid';

CREATE INDEX IF NOT EXISTS loans_status_idx ON lending.loans (status, created_at);

CREATE TABLE IF NOT EXISTS lending.admins (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);
`
