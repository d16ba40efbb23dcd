package history

import (
	"context"

	"github.com/dmitrijs2005/spycats/internal/client/models"
)

// Repository stores and reads back API call records.
type Repository interface {
	// Add appends rec to the journal and sets rec.ID.
	Add(ctx context.Context, rec *models.CallRecord) error

	// Recent returns at most n records, newest first.
	Recent(ctx context.Context, n int) ([]models.CallRecord, error)
}
