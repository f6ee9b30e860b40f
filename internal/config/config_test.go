package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "logs/service.log", cfg.Logs.File)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, domain.DefaultBookingsFile, cfg.Storage.BookingsFile)
	assert.Equal(t, domain.DefaultFloorMapsDir, cfg.Storage.FloorMapsDir)
	assert.Equal(t, domain.DefaultHorizonDays, cfg.Booking.HorizonDays)
	assert.Empty(t, cfg.Rooms)
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9090

[logs]
level = "debug"

[metrics]
enabled = true

[storage]
bookings_file = "data/bookings.csv"

[booking]
horizon_days = 14
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "data/bookings.csv", cfg.Storage.BookingsFile)
	assert.Equal(t, 14, cfg.Booking.HorizonDays)

	// Незатронутые секции сохраняют значения по умолчанию
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.toml"))
	require.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "port out of range",
			content: `
[server]
http_port = 70000
`,
		},
		{
			name: "negative horizon",
			content: `
[booking]
horizon_days = -1
`,
		},
		{
			name: "horizon too large",
			content: `
[booking]
horizon_days = 1000
`,
		},
		{
			name: "empty bookings file",
			content: `
[storage]
bookings_file = ""
`,
		},
		{
			name: "room without code",
			content: `
[[rooms]]
desk_count = 4
`,
		},
		{
			name: "room without desks",
			content: `
[[rooms]]
code = "601"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestCatalogDefaultsWithoutRooms(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"601", "602", "604", "605"}, catalog.Codes())
}

func TestCatalogFromDeskCount(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[[rooms]]
code = "601"
desk_count = 3

[[rooms]]
code = "700"
desks = ["Window", "Corner"]
`))
	require.NoError(t, err)

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"601", "700"}, catalog.Codes())

	desks, ok := catalog.Desks("601")
	require.True(t, ok)
	assert.Equal(t, []string{"Desk 1", "Desk 2", "Desk 3"}, desks)

	desks, ok = catalog.Desks("700")
	require.True(t, ok)
	assert.Equal(t, []string{"Window", "Corner"}, desks)
}

func TestCatalogRejectsDuplicateRooms(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[[rooms]]
code = "601"
desk_count = 3

[[rooms]]
code = "601"
desk_count = 5
`))
	require.NoError(t, err)

	_, err = cfg.Catalog()
	require.Error(t, err)
}
