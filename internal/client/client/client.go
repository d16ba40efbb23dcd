package client

import (
	"context"

	"github.com/dmitrijs2005/spycats/internal/client/models"
)

// Client is the roster API contract. Each method issues exactly one request.
type Client interface {
	ListCats(ctx context.Context) (models.CatList, error)
	GetCat(ctx context.Context, id int64) (models.Cat, error)
	CreateCat(ctx context.Context, cat models.CatCreate) (models.Cat, error)
	UpdateCat(ctx context.Context, id int64, upd models.CatUpdate) (models.Cat, error)
	DeleteCat(ctx context.Context, id int64) error
}

// Recorder receives a record for every completed call.
type Recorder interface {
	Add(ctx context.Context, rec *models.CallRecord) error
}
