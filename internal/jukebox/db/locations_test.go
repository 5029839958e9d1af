package db

import (
	"context"
	"testing"

	"github.com/gartstein/jukebox/internal/jukebox/models"
	"github.com/gartstein/jukebox/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLocations(t *testing.T, repo *Repository, locations ...models.Location) {
	t.Helper()
	for i := range locations {
		require.NoError(t, repo.CreateLocation(context.Background(), &locations[i]))
	}
}

func testLocations() []models.Location {
	return []models.Location{
		{
			Name: "Downtown Coffee Shop", Address: "123 Main St", City: "New York", State: "NY", ZipCode: "10001",
			BusinessType: "coffee_shop", IsActive: true, Latitude: utils.Ptr(40.7128), Longitude: utils.Ptr(-74.0060),
			Email: utils.Ptr("info@downtown.com"),
		},
		{
			Name: "Brooklyn Bakery", Address: "456 Oak Ave", City: "Brooklyn", State: "NY", ZipCode: "11201",
			BusinessType: "bakery", IsActive: true, Latitude: utils.Ptr(40.6892), Longitude: utils.Ptr(-73.9442),
		},
		{
			Name: "LA Restaurant", Address: "789 Sunset Blvd", City: "Los Angeles", State: "CA", ZipCode: "90028",
			BusinessType: "restaurant", IsActive: true,
		},
		{
			Name: "Closed Shop", Address: "999 Old St", City: "New York", State: "NY", ZipCode: "10001",
			BusinessType: "coffee_shop", IsActive: false,
		},
	}
}

func names(locations []models.Location) []string {
	out := make([]string, 0, len(locations))
	for _, l := range locations {
		out = append(out, l.Name)
	}
	return out
}

func TestLocationPredicates(t *testing.T) {
	preds := locationPredicates(models.LocationFilter{Limit: 50})
	require.Len(t, preds, 1)
	assert.Equal(t, predicate{column: "is_active", value: true}, preds[0])

	preds = locationPredicates(models.LocationFilter{City: "Springfield", BusinessType: "bar", Limit: 5})
	assert.Equal(t, []predicate{
		{column: "is_active", value: true},
		{column: "city", value: "Springfield"},
		{column: "business_type", value: "bar"},
	}, preds)
}

func TestSearchLocations(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	seedLocations(t, repo, testLocations()...)

	tests := []struct {
		name   string
		filter models.LocationFilter
		want   []string
	}{
		{
			name:   "no filters returns every active location",
			filter: models.LocationFilter{Limit: 50},
			want:   []string{"Downtown Coffee Shop", "Brooklyn Bakery", "LA Restaurant"},
		},
		{
			name:   "city",
			filter: models.LocationFilter{City: "New York", Limit: 50},
			want:   []string{"Downtown Coffee Shop"},
		},
		{
			name:   "state",
			filter: models.LocationFilter{State: "NY", Limit: 50},
			want:   []string{"Downtown Coffee Shop", "Brooklyn Bakery"},
		},
		{
			name:   "zip code",
			filter: models.LocationFilter{ZipCode: "10001", Limit: 50},
			want:   []string{"Downtown Coffee Shop"},
		},
		{
			name:   "business type",
			filter: models.LocationFilter{BusinessType: "bakery", Limit: 50},
			want:   []string{"Brooklyn Bakery"},
		},
		{
			name:   "filters are combined",
			filter: models.LocationFilter{State: "NY", BusinessType: "bakery", Limit: 50},
			want:   []string{"Brooklyn Bakery"},
		},
		{
			name:   "matching is exact, not prefix",
			filter: models.LocationFilter{City: "New", Limit: 50},
			want:   []string{},
		},
		{
			name:   "matching is case-sensitive",
			filter: models.LocationFilter{State: "ny", Limit: 50},
			want:   []string{},
		},
		{
			name:   "limit caps the result",
			filter: models.LocationFilter{Limit: 2},
			want:   []string{"Downtown Coffee Shop", "Brooklyn Bakery"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.SearchLocations(ctx, tt.filter)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, names(found))
			for _, l := range found {
				assert.True(t, l.IsActive, "inactive location %q returned", l.Name)
			}
		})
	}
}

func TestSearchLocationsCoordinates(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	seedLocations(t, repo, testLocations()...)

	found, err := repo.SearchLocations(ctx, models.LocationFilter{City: "New York", Limit: 50})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.NotNil(t, found[0].Latitude)
	assert.InDelta(t, 40.7128, *found[0].Latitude, 1e-9)
	assert.InDelta(t, -74.0060, *found[0].Longitude, 1e-9)

	found, err = repo.SearchLocations(ctx, models.LocationFilter{City: "Los Angeles", Limit: 50})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Nil(t, found[0].Latitude)
	assert.Nil(t, found[0].Longitude)
}

func TestSearchLocationsSpringfield(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	seedLocations(t, repo,
		models.Location{Name: "Moe's", Address: "1 Evergreen", City: "Springfield", State: "IL", ZipCode: "62701", BusinessType: "bar", IsActive: true},
		models.Location{Name: "Billy Goat", Address: "430 N Michigan", City: "Chicago", State: "IL", ZipCode: "60611", BusinessType: "bar", IsActive: true},
	)

	found, err := repo.SearchLocations(ctx, models.LocationFilter{City: "Springfield", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, []string{"Moe's"}, names(found))

	found, err = repo.SearchLocations(ctx, models.LocationFilter{State: "IL", Limit: 50})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Moe's", "Billy Goat"}, names(found))
}

func TestListLocationsIncludesInactive(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	locations, err := repo.ListLocations(ctx)
	require.NoError(t, err)
	assert.Empty(t, locations)

	seedLocations(t, repo, testLocations()...)
	locations, err = repo.ListLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, locations, 4)
}
