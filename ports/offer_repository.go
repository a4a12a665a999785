package ports

import (
	"context"
	"time"

	"offerforge/models"

	"github.com/google/uuid"
)

// OfferRecord is a persisted offer package with ownership and metadata
type OfferRecord struct {
	ID        uuid.UUID              `json:"id"`
	OwnerID   uuid.UUID              `json:"owner_id"`
	Package   models.OfferPackage    `json:"package"`
	Tags      []string               `json:"tags"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
}

// OfferFilters narrows ListByOwner results
type OfferFilters struct {
	Tag    string
	Source models.PackageSource
	Limit  int
}

// OfferRepository is the durable store for offer packages and their
// funnel history. FindByID scopes by owner: an id that exists under a
// different owner is reported as not found.
type OfferRepository interface {
	Create(ctx context.Context, ownerID uuid.UUID, pkg models.OfferPackage, tags []string, metadata map[string]interface{}) (uuid.UUID, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*OfferRecord, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, patch map[string]interface{}) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filters OfferFilters) ([]OfferRecord, error)

	// History is read-modify-write without optimistic concurrency;
	// concurrent writers to the same offer can lose an update.
	History(ctx context.Context, offerID uuid.UUID) ([]models.PerformanceSnapshot, error)
	SaveHistory(ctx context.Context, offerID uuid.UUID, history []models.PerformanceSnapshot) error
}
