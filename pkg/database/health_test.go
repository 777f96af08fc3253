package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/pkg/database"
	testdb "github.com/radarpautas/radar/test/database"
)

func TestClientHealth(t *testing.T) {
	client := testdb.NewTestClient(t)

	h, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, database.PoolUp, h.Status)
	assert.GreaterOrEqual(t, h.PingMs, int64(0))
	assert.GreaterOrEqual(t, h.PoolIdle, 0)
}

func TestClientHealthClosedPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	require.NoError(t, client.DB().Close())

	h, err := client.Health(context.Background())
	require.Error(t, err)
	assert.Equal(t, database.PoolDown, h.Status)
}
