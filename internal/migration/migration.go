// internal/migration/migration.go
package migration

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// Migrator applies the database schema with plain SQL. The API process never
// migrates; schema changes are applied explicitly through the CLI.
type Migrator struct {
	DB *sql.DB
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{DB: db}
}

// InitializeSchema creates the extensions, enum types, and tables.
func (m *Migrator) InitializeSchema() error {
	if _, err := m.DB.Exec(`
	CREATE EXTENSION IF NOT EXISTS citext;
	CREATE EXTENSION IF NOT EXISTS pgcrypto;
	`); err != nil {
		return err
	}

	// Enum types have no IF NOT EXISTS, so guard each one.
	if _, err := m.DB.Exec(`
	DO $$ BEGIN
		CREATE TYPE user_role AS ENUM ('CONSUMER', 'PARTNER', 'ADMIN');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$;

	DO $$ BEGIN
		CREATE TYPE verification_status AS ENUM ('unverified', 'pending', 'verified');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$;

	DO $$ BEGIN
		CREATE TYPE growth_service_type AS ENUM ('SEO', 'ADS');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$;

	DO $$ BEGIN
		CREATE TYPE growth_request_status AS ENUM ('PENDING', 'COMPLETED', 'CANCELLED');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$;

	DO $$ BEGIN
		CREATE TYPE notification_type AS ENUM ('verification', 'growth', 'billing');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$;

	DO $$ BEGIN
		CREATE TYPE subscription_status AS ENUM ('active', 'past_due', 'canceled');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$;
	`); err != nil {
		return err
	}

	_, err := m.DB.Exec(`
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email CITEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT,
		role user_role NOT NULL DEFAULT 'CONSUMER',
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS companies (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		owner_id UUID NOT NULL UNIQUE REFERENCES users(id),
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		location TEXT NOT NULL,
		contact_email TEXT NOT NULL,
		description TEXT,
		tagline TEXT,
		media_urls TEXT[],
		onboarding_step INT NOT NULL DEFAULT 0,
		verification_status verification_status NOT NULL DEFAULT 'unverified',
		cvr_number TEXT,
		legal_name TEXT,
		business_address TEXT,
		permit_type TEXT,
		permit_issuer TEXT,
		permit_documents TEXT[],
		verification_notes TEXT,
		verified_at TIMESTAMPTZ,
		verified_by_id UUID REFERENCES users(id),
		selected_plan_tier TEXT,
		selected_plan_cycle TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_companies_verification_status
		ON companies(verification_status);

	CREATE TABLE IF NOT EXISTS growth_requests (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		type growth_service_type NOT NULL,
		details JSONB,
		status growth_request_status NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_growth_requests_company_id
		ON growth_requests(company_id);
	CREATE INDEX IF NOT EXISTS idx_growth_requests_status
		ON growth_requests(status);

	CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		type notification_type NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_notifications_user_id
		ON notifications(user_id);

	CREATE TABLE IF NOT EXISTS admin_activity_logs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		admin_id UUID NOT NULL REFERENCES users(id),
		action TEXT NOT NULL,
		target_type TEXT NOT NULL,
		target_id TEXT NOT NULL,
		details JSONB,
		request_id TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_admin_activity_logs_admin_id
		ON admin_activity_logs(admin_id);
	CREATE INDEX IF NOT EXISTS idx_admin_activity_logs_target
		ON admin_activity_logs(target_type, target_id);

	CREATE TABLE IF NOT EXISTS subscriptions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		company_id UUID NOT NULL UNIQUE REFERENCES companies(id) ON DELETE CASCADE,
		tier TEXT NOT NULL,
		cycle TEXT NOT NULL,
		status subscription_status NOT NULL,
		external_ref TEXT,
		current_period_end TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS plan_intents (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL UNIQUE REFERENCES users(id),
		tier TEXT NOT NULL,
		cycle TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`)

	return err
}
