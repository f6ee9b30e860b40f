package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomCatalog(t *testing.T) {
	catalog, err := NewRoomCatalog([]Room{
		{Code: "601", Desks: []string{"Desk 1", "Desk 2"}},
		{Code: "700", Desks: []string{"Window"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"601", "700"}, catalog.Codes())
	assert.True(t, catalog.HasRoom("601"))
	assert.False(t, catalog.HasRoom("999"))
	assert.True(t, catalog.HasDesk("601", "Desk 2"))
	assert.False(t, catalog.HasDesk("601", "Window"))
	assert.False(t, catalog.HasDesk("999", "Desk 1"))

	desks, ok := catalog.Desks("700")
	require.True(t, ok)
	assert.Equal(t, []string{"Window"}, desks)

	_, ok = catalog.Desks("999")
	assert.False(t, ok)
}

func TestNewRoomCatalogValidation(t *testing.T) {
	tests := []struct {
		name  string
		rooms []Room
	}{
		{name: "empty catalog", rooms: nil},
		{name: "empty room code", rooms: []Room{{Code: "", Desks: []string{"Desk 1"}}}},
		{name: "duplicate room code", rooms: []Room{
			{Code: "601", Desks: []string{"Desk 1"}},
			{Code: "601", Desks: []string{"Desk 2"}},
		}},
		{name: "room without desks", rooms: []Room{{Code: "601"}}},
		{name: "empty desk label", rooms: []Room{{Code: "601", Desks: []string{""}}}},
		{name: "duplicate desk label", rooms: []Room{{Code: "601", Desks: []string{"Desk 1", "Desk 1"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoomCatalog(tt.rooms)
			require.Error(t, err)
		})
	}
}

func TestDefaultRoomCatalog(t *testing.T) {
	catalog := DefaultRoomCatalog()

	assert.Equal(t, []string{"601", "602", "604", "605"}, catalog.Codes())

	counts := map[string]int{"601": 8, "602": 8, "604": 12, "605": 9}
	for code, want := range counts {
		desks, ok := catalog.Desks(code)
		require.True(t, ok, "room %s", code)
		assert.Len(t, desks, want, "room %s", code)
		assert.Equal(t, "Desk 1", desks[0])
	}
}
