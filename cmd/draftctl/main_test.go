package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "error")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDraftShowWithoutDraft(t *testing.T) {
	out, err := runCLI(t, "draft", "show", "--brand", "brand-1")
	require.NoError(t, err)
	assert.Contains(t, out, "no draft for brand-1")
}

func TestDraftClearWithoutDraft(t *testing.T) {
	_, err := runCLI(t, "draft", "clear", "--brand", "brand-1")
	assert.EqualError(t, err, "no draft to clear")
}

func TestDraftShowRequiresBrand(t *testing.T) {
	_, err := runCLI(t, "draft", "show")
	assert.Error(t, err)
}

func TestMigrateRequiresPostgres(t *testing.T) {
	_, err := runCLI(t, "migrate")
	assert.EqualError(t, err, "migrate requires DB_DRIVER=postgres")
}

func TestCampaignStatusUnknownCampaign(t *testing.T) {
	_, err := runCLI(t, "campaign", "status", "--brand", "brand-1", "--id", "7", "--status", "active")
	assert.EqualError(t, err, "campaign with ID 7 not found")
}
