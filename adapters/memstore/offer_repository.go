// Package memstore is an in-process OfferRepository used by tests and
// local development without a database.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"offerforge/internal/errors"
	"offerforge/models"
	"offerforge/ports"

	"github.com/google/uuid"
)

type record struct {
	ports.OfferRecord
	history []models.PerformanceSnapshot
}

// OfferRepository implements ports.OfferRepository in memory
type OfferRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*record
}

// NewOfferRepository builds an empty in-memory repository
func NewOfferRepository() *OfferRepository {
	return &OfferRepository{records: make(map[uuid.UUID]*record)}
}

func (r *OfferRepository) Create(ctx context.Context, ownerID uuid.UUID, pkg models.OfferPackage, tags []string, metadata map[string]interface{}) (uuid.UUID, error) {
	id := uuid.New()
	r.mu.Lock()
	r.records[id] = &record{OfferRecord: ports.OfferRecord{
		ID:        id,
		OwnerID:   ownerID,
		Package:   pkg,
		Tags:      append([]string{}, tags...),
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}}
	r.mu.Unlock()
	return id, nil
}

func (r *OfferRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*ports.OfferRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok || rec.OwnerID != ownerID {
		return nil, errors.NotFound("offer")
	}
	out := rec.OfferRecord
	return &out, nil
}

func (r *OfferRepository) UpdateMetadata(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return errors.NotFound("offer")
	}
	if rec.Metadata == nil {
		rec.Metadata = map[string]interface{}{}
	}
	for k, v := range patch {
		rec.Metadata[k] = v
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok || rec.OwnerID != ownerID {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

func (r *OfferRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filters ports.OfferFilters) ([]ports.OfferRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []ports.OfferRecord
	for _, rec := range r.records {
		if rec.OwnerID != ownerID {
			continue
		}
		if filters.Source != "" && rec.Package.Provenance.Source != filters.Source {
			continue
		}
		if filters.Tag != "" && !contains(rec.Tags, filters.Tag) {
			continue
		}
		out = append(out, rec.OfferRecord)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[:filters.Limit]
	}
	return out, nil
}

func (r *OfferRepository) History(ctx context.Context, offerID uuid.UUID) ([]models.PerformanceSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[offerID]
	if !ok {
		return nil, errors.NotFound("offer")
	}
	return append([]models.PerformanceSnapshot{}, rec.history...), nil
}

func (r *OfferRepository) SaveHistory(ctx context.Context, offerID uuid.UUID, history []models.PerformanceSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[offerID]
	if !ok {
		return errors.NotFound("offer")
	}
	rec.history = append([]models.PerformanceSnapshot{}, history...)
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
