// Package postgres implements the OfferRepository port with sqlx.
// Packages, metadata and funnel history are stored as JSONB.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"offerforge/internal/errors"
	"offerforge/models"
	"offerforge/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// OfferRepositoryImpl implements ports.OfferRepository for PostgreSQL
type OfferRepositoryImpl struct {
	db *sqlx.DB
}

// NewOfferRepository creates a new PostgreSQL offer repository
func NewOfferRepository(db *sqlx.DB) ports.OfferRepository {
	return &OfferRepositoryImpl{db: db}
}

func (r *OfferRepositoryImpl) Create(ctx context.Context, ownerID uuid.UUID, pkg models.OfferPackage, tags []string, metadata map[string]interface{}) (uuid.UUID, error) {
	id := uuid.New()

	pkgJSON, err := json.Marshal(pkg)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "serialize offer package")
	}
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "serialize offer metadata")
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO offers (id, owner_id, package, tags, metadata, performance_history, created_at)
		VALUES ($1, $2, $3, $4, $5, '[]'::jsonb, NOW())`,
		id, ownerID, pkgJSON, pq.Array(tags), metaJSON)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "insert offer")
	}
	return id, nil
}

func (r *OfferRepositoryImpl) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*ports.OfferRecord, error) {
	var (
		pkgJSON   []byte
		metaJSON  []byte
		tags      pq.StringArray
		createdAt time.Time
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT package, tags, metadata, created_at
		FROM offers
		WHERE id = $1 AND owner_id = $2`, id, ownerID).
		Scan(&pkgJSON, &tags, &metaJSON, &createdAt)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("offer")
	}
	if err != nil {
		return nil, errors.Wrap(err, "query offer")
	}

	record := &ports.OfferRecord{
		ID:        id,
		OwnerID:   ownerID,
		Tags:      []string(tags),
		CreatedAt: createdAt,
	}
	if err := json.Unmarshal(pkgJSON, &record.Package); err != nil {
		return nil, errors.Wrap(err, "deserialize offer package")
	}
	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &record.Metadata); err != nil {
			return nil, errors.Wrap(err, "deserialize offer metadata")
		}
	}
	return record, nil
}

func (r *OfferRepositoryImpl) UpdateMetadata(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return errors.Wrap(err, "serialize metadata patch")
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE offers SET metadata = metadata || $2::jsonb WHERE id = $1`, id, patchJSON)
	if err != nil {
		return errors.Wrap(err, "update offer metadata")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("offer")
	}
	return nil
}

func (r *OfferRepositoryImpl) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM offers WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, errors.Wrap(err, "delete offer")
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *OfferRepositoryImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, filters ports.OfferFilters) ([]ports.OfferRecord, error) {
	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT id, package, tags, metadata, created_at
		FROM offers
		WHERE owner_id = $1`
	args := []interface{}{ownerID}

	if filters.Tag != "" {
		query += ` AND $2 = ANY(tags)`
		args = append(args, filters.Tag)
	}
	query += ` ORDER BY created_at DESC LIMIT ` + strconv.Itoa(limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list offers")
	}
	defer rows.Close()

	var out []ports.OfferRecord
	for rows.Next() {
		var (
			record   ports.OfferRecord
			pkgJSON  []byte
			metaJSON []byte
			tags     pq.StringArray
		)
		if err := rows.Scan(&record.ID, &pkgJSON, &tags, &metaJSON, &record.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan offer row")
		}
		record.OwnerID = ownerID
		record.Tags = []string(tags)
		if err := json.Unmarshal(pkgJSON, &record.Package); err != nil {
			// Skip undecodable rows rather than failing the listing
			continue
		}
		if len(metaJSON) > 0 {
			_ = json.Unmarshal(metaJSON, &record.Metadata)
		}
		if filters.Source != "" && record.Package.Provenance.Source != filters.Source {
			continue
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func (r *OfferRepositoryImpl) History(ctx context.Context, offerID uuid.UUID) ([]models.PerformanceSnapshot, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT performance_history FROM offers WHERE id = $1`, offerID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("offer")
	}
	if err != nil {
		return nil, errors.Wrap(err, "query performance history")
	}

	var history []models.PerformanceSnapshot
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &history); err != nil {
			return nil, errors.Wrap(err, "deserialize performance history")
		}
	}
	return history, nil
}

func (r *OfferRepositoryImpl) SaveHistory(ctx context.Context, offerID uuid.UUID, history []models.PerformanceSnapshot) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return errors.Wrap(err, "serialize performance history")
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE offers SET performance_history = $2::jsonb WHERE id = $1`, offerID, raw)
	if err != nil {
		return errors.Wrap(err, "save performance history")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("offer")
	}
	return nil
}
