package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodyai/backend/internal/models"
)

// Malformed hex ids are resolved before the collection is touched, so these
// paths run without a live store.

func TestFindByIDMalformedID(t *testing.T) {
	repo := newRepository[models.Weight](nil, nil)

	for _, id := range []string{"", "nope", "zzzzzzzzzzzzzzzzzzzzzzzz", "123"} {
		got, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err, "id %q", id)
		assert.Nil(t, got, "id %q resolves to absence, not an error", id)
	}
}

func TestUpdateMalformedID(t *testing.T) {
	repo := newRepository[models.Routine](nil, nil)

	_, err := repo.Update(context.Background(), "not-a-hex-id", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMalformedID(t *testing.T) {
	repo := newRepository[models.Recipe](nil, nil)

	err := repo.Delete(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
