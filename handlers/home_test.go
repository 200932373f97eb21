package handlers_test

import (
	"net/http"
	"testing"

	"gameblob/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeListsCatalog(t *testing.T) {
	app := newTestApp(t)
	app.seedGame("Blob Quest")
	app.seedGame("Second Title")

	resp, body := app.get("/home")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, containsAll(body, "Blob Quest", "Second Title"))
}

func TestHomeSurfacesCatalogFailure(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.db.Migrator().DropTable(&models.Game{}))

	resp, body := app.get("/home")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "Something Went Wrong Internally")
}
