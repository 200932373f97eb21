package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"gameblob/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameDetailShowsCommentsForThatGameOnly(t *testing.T) {
	app := newTestApp(t)
	user := app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	other := app.seedGame("Other Game")

	for _, body := range []string{"first!", "second!"} {
		require.NoError(t, app.db.Create(&models.Comment{Body: body, UserID: user.ID, GameID: game.ID}).Error)
	}
	require.NoError(t, app.db.Create(&models.Comment{Body: "elsewhere", UserID: user.ID, GameID: other.ID}).Error)

	resp, body := app.get(fmt.Sprintf("/game/%d", game.ID))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, containsAll(body, "Blob Quest", "first!", "second!", "Comments (2)"))
	assert.NotContains(t, body, "elsewhere")
}

func TestGameDetailUnknownIDReturns404(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.get("/game/999999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page not found")
}

func TestGameDetailNotFoundAsJSONForAPIClients(t *testing.T) {
	app := newTestApp(t)

	req, err := http.NewRequest(http.MethodGet, app.srv.URL+"/game/999999", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/json")

	resp, err := app.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Page not found", payload.Error)
}

func TestGameDetailMalformedIDReturns404(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.get("/game/not-a-number")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page not found")
}

func TestUnmatchedRouteReturns404View(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.get("/definitely/not/a/page")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page Not Found")
}

func TestReturnPathPersistsAcrossRequests(t *testing.T) {
	app := newTestApp(t)
	app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	app.login("alice")

	gamePath := fmt.Sprintf("/game/%d", game.ID)
	resp, body := app.get(gamePath)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := extractGameToken(t, body)

	// an untracked page must not overwrite the return target
	resp, _ = app.get("/home")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.postForm("/comments", formValues("comment", "still remembered", "game_token", token))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, gamePath, resp.Header.Get("Location"))
}
