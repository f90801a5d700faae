package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Step int    `json:"step"`
	Name string `json:"name"`
}

func TestJSONBRoundTrip(t *testing.T) {
	in := JSONB[sample]{Data: sample{Step: 3, Name: "Launch"}}
	v, err := in.Value()
	require.NoError(t, err)

	var out JSONB[sample]
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in.Data, out.Data)
}

func TestJSONBScanAcceptsStringAndNil(t *testing.T) {
	var out JSONB[sample]
	require.NoError(t, out.Scan(`{"step":2}`))
	assert.Equal(t, 2, out.Data.Step)

	require.NoError(t, out.Scan(nil))
	assert.Error(t, out.Scan(42))
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
