package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-listings/config"
)

func useTestConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	loadConfig = func() (*config.Config, error) {
		return &config.Config{
			Logger:  config.LoggerConfig{Mode: "development"},
			JWT:     config.JWTConfig{Secret: "test-secret", Expiration: time.Hour},
			Storage: config.StorageConfig{Driver: config.StorageMemory, SnapshotDir: dir},
			Listing: config.ListingConfig{QueryCacheSize: 16, FeaturedCount: 3},
			Seed:    config.SeedConfig{Path: "../../config/seed.yaml"},
		}, nil
	}
	t.Cleanup(func() {
		loadConfig = config.Load
		seedFlags.file, seedFlags.force = "", false
		searchFlags = struct {
			text     string
			status   string
			minPrice string
			maxPrice string
			sort     string
			limit    int
			offset   int
			json     bool
		}{}
	})
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestSeedThenSearch(t *testing.T) {
	useTestConfig(t)

	cmd, out := testCmd()
	require.NoError(t, runSeed(cmd, nil))
	assert.Equal(t, "seeded 2 users and 4 listings\n", out.String())

	cmd, out = testCmd()
	require.NoError(t, runSeed(cmd, nil))
	assert.Contains(t, out.String(), "nothing seeded")

	searchFlags.status = "available"
	searchFlags.sort = "priceAscending"
	searchFlags.json = true

	cmd, out = testCmd()
	require.NoError(t, runSearch(cmd, nil))

	var res struct {
		Items []struct {
			Title string  `json:"title"`
			Price float64 `json:"price"`
		} `json:"items"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, 3, res.Total)
	var titles []string
	for _, it := range res.Items {
		titles = append(titles, it.Title)
	}
	assert.Equal(t, []string{"Garden apartment", "Cottage", "Penthouse with sea view"}, titles)
}

func TestSearchTable(t *testing.T) {
	useTestConfig(t)

	cmd, _ := testCmd()
	require.NoError(t, runSeed(cmd, nil))

	searchFlags.text = "Haifa"
	cmd, out := testCmd()
	require.NoError(t, runSearch(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Garden apartment")
	assert.Equal(t, "1 of 1 listings", lines[2])
}

func TestSeedWithoutFile(t *testing.T) {
	useTestConfig(t)
	loadConfig = func() (*config.Config, error) {
		return &config.Config{
			JWT:     config.JWTConfig{Secret: "test-secret", Expiration: time.Hour},
			Storage: config.StorageConfig{Driver: config.StorageMemory},
		}, nil
	}

	cmd, _ := testCmd()
	assert.Error(t, runSeed(cmd, nil))
}
