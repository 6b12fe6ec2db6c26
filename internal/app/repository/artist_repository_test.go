package repository

import (
	"testing"

	"github.com/showbill/showbill-backend/internal/app/model"
	"github.com/showbill/showbill-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupArtistTest(t *testing.T) (*gorm.DB, ArtistRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	repo := NewArtistRepository(testDB)
	return testDB, repo
}

func TestArtistRepository_Create(t *testing.T) {
	_, repo := setupArtistTest(t)

	artist := &model.Artist{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		SeekingVenue: true,
	}

	err := repo.Create(artist, []string{"Rock n Roll"})
	assert.NoError(t, err)
	assert.NotZero(t, artist.ID)

	found, err := repo.FindByID(artist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", found.Name)
	assert.True(t, found.SeekingVenue)
	assert.Equal(t, []string{"Rock n Roll"}, found.GenreNames())
}

func TestArtistRepository_SearchByName(t *testing.T) {
	_, repo := setupArtistTest(t)

	for _, name := range []string{"Pink", "The Wild Sax Band"} {
		artist := &model.Artist{Name: name, City: "San Francisco", State: "CA"}
		require.NoError(t, repo.Create(artist, nil))
	}

	found, err := repo.SearchByName("ink")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Pink", found[0].Name)
}

func TestArtistRepository_Update_ReplacesGenres(t *testing.T) {
	_, repo := setupArtistTest(t)

	artist := &model.Artist{Name: "The Wild Sax Band", City: "San Francisco", State: "CA"}
	require.NoError(t, repo.Create(artist, []string{"Jazz", "Classical"}))

	artist.City = "Oakland"
	require.NoError(t, repo.Update(artist, []string{"Blues"}))

	found, err := repo.FindByID(artist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oakland", found.City)
	assert.Equal(t, []string{"Blues"}, found.GenreNames())
}

func TestArtistRepository_Delete(t *testing.T) {
	testDB, repo := setupArtistTest(t)

	artist := &model.Artist{Name: "Matt Quevedo", City: "New York", State: "NY"}
	require.NoError(t, repo.Create(artist, []string{"Jazz"}))

	require.NoError(t, repo.Delete(artist.ID))

	_, err := repo.FindByID(artist.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var genreCount int64
	require.NoError(t, testDB.Model(&model.ArtistGenre{}).Where("artist_id = ?", artist.ID).Count(&genreCount).Error)
	assert.Zero(t, genreCount)
}
