package queries_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingOrdersQuery_Valid(t *testing.T) {
	cutoff := time.Now().UTC().Add(-30 * time.Minute)

	query, err := queries.NewGetPendingOrdersQuery(cutoff)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, cutoff.Equal(query.CreatedBefore()))
}

func TestNewGetPendingOrdersQuery_ZeroCutoff(t *testing.T) {
	_, err := queries.NewGetPendingOrdersQuery(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetPendingOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingOrdersQueryIsNotConstructed)
}
