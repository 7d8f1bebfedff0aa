package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/target/consensource-sds/logging"
)

// PostgresStore implements Store against the reporting database.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *logging.ComponentLogger
}

// NewPostgresStore connects to the reporting database, verifies the
// connection, and bootstraps the schema.
func NewPostgresStore(ctx context.Context, connString string, logger *logging.ComponentLogger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to ping postgres")
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to initialize schema")
	}

	logger.Info().Msg("Reporting database ready")
	return &PostgresStore{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// initSchema creates the versioned tables if they do not exist.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS blocks (
			block_num BIGINT PRIMARY KEY,
			block_id VARCHAR(128) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS organizations (
			id BIGSERIAL PRIMARY KEY,
			organization_id VARCHAR(256) NOT NULL,
			name TEXT NOT NULL,
			organization_type VARCHAR(32) NOT NULL,
			start_block_num BIGINT NOT NULL,
			end_block_num BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS accreditations (
			id BIGSERIAL PRIMARY KEY,
			organization_id VARCHAR(256) NOT NULL,
			standard_id VARCHAR(256) NOT NULL,
			standard_version TEXT NOT NULL,
			accreditor_id VARCHAR(256) NOT NULL,
			valid_from BIGINT NOT NULL,
			valid_to BIGINT NOT NULL,
			start_block_num BIGINT NOT NULL,
			end_block_num BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS addresses (
			id BIGSERIAL PRIMARY KEY,
			organization_id VARCHAR(256) NOT NULL,
			street_line_1 TEXT NOT NULL,
			street_line_2 TEXT,
			city TEXT NOT NULL,
			state_province TEXT,
			country TEXT NOT NULL,
			postal_code TEXT,
			start_block_num BIGINT NOT NULL,
			end_block_num BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS authorizations (
			id BIGSERIAL PRIMARY KEY,
			organization_id VARCHAR(256) NOT NULL,
			public_key VARCHAR(256) NOT NULL,
			role VARCHAR(32) NOT NULL,
			start_block_num BIGINT NOT NULL,
			end_block_num BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS contacts (
			id BIGSERIAL PRIMARY KEY,
			organization_id VARCHAR(256) NOT NULL,
			name TEXT NOT NULL,
			phone_number TEXT NOT NULL,
			language_code TEXT NOT NULL,
			start_block_num BIGINT NOT NULL,
			end_block_num BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS agents (
			id BIGSERIAL PRIMARY KEY,
			public_key VARCHAR(256) NOT NULL,
			organization_id VARCHAR(256),
			name TEXT NOT NULL,
			timestamp BIGINT NOT NULL,
			start_block_num BIGINT NOT NULL,
			end_block_num BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS certificates (
			id BIGSERIAL PRIMARY KEY,
			certificate_id VARCHAR(256) NOT NULL,
			certifying_body_id VARCHAR(256) NOT NULL,
			factory_id VARCHAR(256) NOT NULL,
			standard_id VARCHAR(256) NOT NULL,
			standard_version TEXT NOT NULL,
			valid_from BIGINT NOT NULL,
			valid_to BIGINT NOT NULL,
			start_block_num BIGINT NOT NULL,
			end_block_num BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS requests (
			id BIGSERIAL PRIMARY KEY,
			request_id VARCHAR(256) NOT NULL,
			factory_id VARCHAR(256) NOT NULL,
			standard_id VARCHAR(256) NOT NULL,
			status VARCHAR(32) NOT NULL,
			request_date BIGINT NOT NULL,
			start_block_num BIGINT NOT NULL,
			end_block_num BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS standards (
			id BIGSERIAL PRIMARY KEY,
			standard_id VARCHAR(256) NOT NULL,
			organization_id VARCHAR(256) NOT NULL,
			name TEXT NOT NULL,
			start_block_num BIGINT NOT NULL,
			end_block_num BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS standard_versions (
			id BIGSERIAL PRIMARY KEY,
			standard_id VARCHAR(256) NOT NULL,
			version TEXT NOT NULL,
			link TEXT NOT NULL,
			description TEXT NOT NULL,
			approval_date BIGINT NOT NULL,
			start_block_num BIGINT NOT NULL,
			end_block_num BIGINT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_organizations_open ON organizations(organization_id, end_block_num);
		CREATE INDEX IF NOT EXISTS idx_agents_open ON agents(public_key, end_block_num);
		CREATE INDEX IF NOT EXISTS idx_certificates_open ON certificates(certificate_id, end_block_num);
		CREATE INDEX IF NOT EXISTS idx_requests_open ON requests(request_id, end_block_num);
		CREATE INDEX IF NOT EXISTS idx_standards_open ON standards(standard_id, end_block_num);
	`)
	return err
}

// FetchKnownBlocks returns every applied block, newest first.
func (s *PostgresStore) FetchKnownBlocks(ctx context.Context) ([]Block, error) {
	rows, err := s.pool.Query(ctx, `SELECT block_num, block_id FROM blocks ORDER BY block_num DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch known blocks")
	}
	defer rows.Close()

	var blocks []Block
	for rows.Next() {
		var b Block
		if err := rows.Scan(&b.BlockNum, &b.BlockID); err != nil {
			return nil, errors.Wrap(err, "failed to scan block row")
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

// versionedTables lists every table carrying start/end block provenance,
// used when unwinding an abandoned fork.
var versionedTables = []string{
	"organizations", "accreditations", "addresses", "authorizations",
	"contacts", "agents", "certificates", "requests", "standards",
	"standard_versions",
}

// ExecuteOperationsInBlock applies all of a block's operations in one
// transaction. If the block number was already applied on a different fork,
// the stale fork's rows are dropped and the versions they had closed are
// reopened before the new rows are inserted.
func (s *PostgresStore) ExecuteOperationsInBlock(ctx context.Context, operations []Operation, block Block) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	if err := s.resolveFork(ctx, tx, block.BlockNum); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO blocks (block_num, block_id) VALUES ($1, $2)`,
		block.BlockNum, block.BlockID,
	); err != nil {
		return errors.Wrapf(err, "failed to insert block %d", block.BlockNum)
	}

	for _, op := range operations {
		if err := s.applyOperation(ctx, tx, op); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrapf(err, "failed to commit block %d", block.BlockNum)
	}

	s.logger.Debug().
		Int64("block_num", block.BlockNum).
		Str("block_id", block.BlockID).
		Int("operations", len(operations)).
		Msg("Applied block to reporting database")
	return nil
}

// resolveFork drops rows written by blocks at or above blockNum and reopens
// the versions those blocks had superseded.
func (s *PostgresStore) resolveFork(ctx context.Context, tx pgx.Tx, blockNum int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM blocks WHERE block_num >= $1`, blockNum)
	if err != nil {
		return errors.Wrap(err, "failed to drop forked blocks")
	}
	if tag.RowsAffected() == 0 {
		return nil
	}

	s.logger.Warn().
		Int64("block_num", blockNum).
		Msg("Detected chain fork, dropping state from abandoned blocks")

	for _, table := range versionedTables {
		if _, err := tx.Exec(ctx,
			`DELETE FROM `+table+` WHERE start_block_num >= $1`, blockNum,
		); err != nil {
			return errors.Wrapf(err, "failed to drop forked rows from %s", table)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE `+table+` SET end_block_num = $1 WHERE end_block_num >= $2 AND end_block_num != $1`,
			MaxBlockNum, blockNum,
		); err != nil {
			return errors.Wrapf(err, "failed to reopen rows in %s", table)
		}
	}
	return nil
}

func (s *PostgresStore) applyOperation(ctx context.Context, tx pgx.Tx, op Operation) error {
	switch o := op.(type) {
	case CreateOrganization:
		for _, rec := range o.Organizations {
			if err := s.insertOrganization(ctx, tx, rec); err != nil {
				return err
			}
		}
	case CreateAgent:
		for _, agent := range o.Agents {
			if err := s.insertAgent(ctx, tx, agent); err != nil {
				return err
			}
		}
	case CreateCertificate:
		for _, cert := range o.Certificates {
			if err := s.insertCertificate(ctx, tx, cert); err != nil {
				return err
			}
		}
	case CreateRequest:
		for _, req := range o.Requests {
			if err := s.insertRequest(ctx, tx, req); err != nil {
				return err
			}
		}
	case CreateStandard:
		for _, std := range o.Standards {
			if err := s.insertStandard(ctx, tx, std); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("unknown operation type %T", op)
	}
	return nil
}

// closeVersions marks the open rows matching the key columns as superseded
// at startBlockNum.
func closeVersions(ctx context.Context, tx pgx.Tx, table, keyColumn string, keyValue interface{}, startBlockNum int64) error {
	_, err := tx.Exec(ctx,
		`UPDATE `+table+` SET end_block_num = $1 WHERE `+keyColumn+` = $2 AND end_block_num = $3`,
		startBlockNum, keyValue, MaxBlockNum,
	)
	return errors.Wrapf(err, "failed to close open versions in %s", table)
}

func (s *PostgresStore) insertOrganization(ctx context.Context, tx pgx.Tx, rec OrganizationRecord) error {
	org := rec.Organization

	// A new organization version supersedes the organization row and every
	// dependent row owned by it.
	for _, table := range []string{"organizations", "accreditations", "addresses", "authorizations", "contacts"} {
		if err := closeVersions(ctx, tx, table, "organization_id", org.OrganizationID, org.StartBlockNum); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO organizations (organization_id, name, organization_type, start_block_num, end_block_num)
		VALUES ($1, $2, $3, $4, $5)`,
		org.OrganizationID, org.Name, string(org.OrganizationType), org.StartBlockNum, org.EndBlockNum,
	); err != nil {
		return errors.Wrapf(err, "failed to insert organization %s", org.OrganizationID)
	}

	for _, acc := range rec.Accreditations {
		if _, err := tx.Exec(ctx, `
			INSERT INTO accreditations (organization_id, standard_id, standard_version, accreditor_id, valid_from, valid_to, start_block_num, end_block_num)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			acc.OrganizationID, acc.StandardID, acc.StandardVersion, acc.AccreditorID,
			acc.ValidFrom, acc.ValidTo, acc.StartBlockNum, acc.EndBlockNum,
		); err != nil {
			return errors.Wrapf(err, "failed to insert accreditation for %s", acc.OrganizationID)
		}
	}

	if rec.Address != nil {
		addr := rec.Address
		if _, err := tx.Exec(ctx, `
			INSERT INTO addresses (organization_id, street_line_1, street_line_2, city, state_province, country, postal_code, start_block_num, end_block_num)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			addr.OrganizationID, addr.StreetLine1, addr.StreetLine2, addr.City,
			addr.StateProvince, addr.Country, addr.PostalCode, addr.StartBlockNum, addr.EndBlockNum,
		); err != nil {
			return errors.Wrapf(err, "failed to insert address for %s", addr.OrganizationID)
		}
	}

	for _, auth := range rec.Authorizations {
		if _, err := tx.Exec(ctx, `
			INSERT INTO authorizations (organization_id, public_key, role, start_block_num, end_block_num)
			VALUES ($1, $2, $3, $4, $5)`,
			auth.OrganizationID, auth.PublicKey, string(auth.Role), auth.StartBlockNum, auth.EndBlockNum,
		); err != nil {
			return errors.Wrapf(err, "failed to insert authorization for %s", auth.OrganizationID)
		}
	}

	for _, contact := range rec.Contacts {
		if _, err := tx.Exec(ctx, `
			INSERT INTO contacts (organization_id, name, phone_number, language_code, start_block_num, end_block_num)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			contact.OrganizationID, contact.Name, contact.PhoneNumber, contact.LanguageCode,
			contact.StartBlockNum, contact.EndBlockNum,
		); err != nil {
			return errors.Wrapf(err, "failed to insert contact for %s", contact.OrganizationID)
		}
	}
	return nil
}

func (s *PostgresStore) insertAgent(ctx context.Context, tx pgx.Tx, agent Agent) error {
	if err := closeVersions(ctx, tx, "agents", "public_key", agent.PublicKey, agent.StartBlockNum); err != nil {
		return err
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO agents (public_key, organization_id, name, timestamp, start_block_num, end_block_num)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		agent.PublicKey, agent.OrganizationID, agent.Name, agent.Timestamp,
		agent.StartBlockNum, agent.EndBlockNum,
	)
	return errors.Wrapf(err, "failed to insert agent %s", agent.PublicKey)
}

func (s *PostgresStore) insertCertificate(ctx context.Context, tx pgx.Tx, cert Certificate) error {
	if err := closeVersions(ctx, tx, "certificates", "certificate_id", cert.CertificateID, cert.StartBlockNum); err != nil {
		return err
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO certificates (certificate_id, certifying_body_id, factory_id, standard_id, standard_version, valid_from, valid_to, start_block_num, end_block_num)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		cert.CertificateID, cert.CertifyingBodyID, cert.FactoryID, cert.StandardID,
		cert.StandardVersion, cert.ValidFrom, cert.ValidTo, cert.StartBlockNum, cert.EndBlockNum,
	)
	return errors.Wrapf(err, "failed to insert certificate %s", cert.CertificateID)
}

func (s *PostgresStore) insertRequest(ctx context.Context, tx pgx.Tx, req Request) error {
	if err := closeVersions(ctx, tx, "requests", "request_id", req.RequestID, req.StartBlockNum); err != nil {
		return err
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO requests (request_id, factory_id, standard_id, status, request_date, start_block_num, end_block_num)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		req.RequestID, req.FactoryID, req.StandardID, string(req.Status),
		req.RequestDate, req.StartBlockNum, req.EndBlockNum,
	)
	return errors.Wrapf(err, "failed to insert request %s", req.RequestID)
}

func (s *PostgresStore) insertStandard(ctx context.Context, tx pgx.Tx, std StandardRecord) error {
	if err := closeVersions(ctx, tx, "standards", "standard_id", std.Standard.StandardID, std.Standard.StartBlockNum); err != nil {
		return err
	}
	if err := closeVersions(ctx, tx, "standard_versions", "standard_id", std.Standard.StandardID, std.Standard.StartBlockNum); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO standards (standard_id, organization_id, name, start_block_num, end_block_num)
		VALUES ($1, $2, $3, $4, $5)`,
		std.Standard.StandardID, std.Standard.OrganizationID, std.Standard.Name,
		std.Standard.StartBlockNum, std.Standard.EndBlockNum,
	); err != nil {
		return errors.Wrapf(err, "failed to insert standard %s", std.Standard.StandardID)
	}
	for _, v := range std.Versions {
		if _, err := tx.Exec(ctx, `
			INSERT INTO standard_versions (standard_id, version, link, description, approval_date, start_block_num, end_block_num)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			v.StandardID, v.Version, v.Link, v.Description, v.ApprovalDate,
			v.StartBlockNum, v.EndBlockNum,
		); err != nil {
			return errors.Wrapf(err, "failed to insert standard version %s/%s", v.StandardID, v.Version)
		}
	}
	return nil
}
