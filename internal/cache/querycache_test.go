package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewQueryCache(t *testing.T) {
	logger := zap.NewNop()

	qc, err := NewQueryCache(8, 60*time.Second, logger)

	require.NoError(t, err)
	require.NotNil(t, qc)
	assert.NotNil(t, qc.cache)
	assert.NoError(t, qc.Close())
}

func TestQueryCache_Set_And_Get(t *testing.T) {
	qc, err := NewQueryCache(8, 60*time.Second, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = qc.Close() }()

	payload := []byte(`["GB00BYZW3G56","GB00B24FF097"]`)
	qc.Set("list:GB::500", payload)

	result, found := qc.Get("list:GB::500")

	assert.True(t, found)
	assert.Equal(t, payload, result)
}

func TestQueryCache_Get_NotFound(t *testing.T) {
	qc, err := NewQueryCache(8, 60*time.Second, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = qc.Close() }()

	result, found := qc.Get("list:DE::500")

	assert.False(t, found)
	assert.Nil(t, result)
}

func TestQueryCache_Set_Overwrites(t *testing.T) {
	qc, err := NewQueryCache(8, 60*time.Second, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = qc.Close() }()

	qc.Set("count:GB", []byte(`10`))
	qc.Set("count:GB", []byte(`11`))

	result, found := qc.Get("count:GB")

	assert.True(t, found)
	assert.Equal(t, []byte(`11`), result)
}

func TestNoOpQueryCache(t *testing.T) {
	qc := NewNoOpQueryCache()

	qc.Set("list:GB::500", []byte(`["GB00BYZW3G56"]`))
	result, found := qc.Get("list:GB::500")

	assert.False(t, found)
	assert.Nil(t, result)
	assert.NoError(t, qc.Close())
}
