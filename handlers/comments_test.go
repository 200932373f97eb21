package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"gameblob/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRequiresLogin(t *testing.T) {
	app := newTestApp(t)
	app.seedGame("Blob Quest")

	resp, _ := app.postForm("/comments", formValues("comment", "drive-by"))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Zero(t, countRows(t, app.db, &models.Comment{}))
}

func TestCommentAfterGameVisit(t *testing.T) {
	app := newTestApp(t)
	user := app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	app.login("alice")

	gamePath := fmt.Sprintf("/game/%d", game.ID)
	resp, body := app.get(gamePath)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := extractGameToken(t, body)

	resp, _ = app.postForm("/comments", formValues("comment", "what a game", "game_token", token))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, gamePath, resp.Header.Get("Location"))

	var comment models.Comment
	require.NoError(t, app.db.First(&comment).Error)
	assert.Equal(t, "what a game", comment.Body)
	assert.Equal(t, user.ID, comment.UserID)
	assert.Equal(t, game.ID, comment.GameID)
	assert.Equal(t, int64(1), countRows(t, app.db, &models.Comment{}))
}

func TestCommentFallsBackToSessionGameID(t *testing.T) {
	app := newTestApp(t)
	app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	app.login("alice")

	resp, _ := app.get(fmt.Sprintf("/game/%d", game.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// no token in the form; the session stash from the visit carries it
	resp, _ = app.postForm("/comments", formValues("comment", "tokenless"))
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var comment models.Comment
	require.NoError(t, app.db.First(&comment).Error)
	assert.Equal(t, game.ID, comment.GameID)
}

func TestCommentCountReflectsNewCommentOnReturn(t *testing.T) {
	app := newTestApp(t)
	app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	app.login("alice")

	gamePath := fmt.Sprintf("/game/%d", game.ID)
	resp, body := app.get(gamePath)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Comments (0)")
	token := extractGameToken(t, body)

	resp, _ = app.postForm("/comments", formValues("comment", "counted right away", "game_token", token))
	require.Equal(t, http.StatusFound, resp.StatusCode)

	// the redirect target must already see the fresh count
	resp, body = app.get(gamePath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Comments (1)")
}

func TestCommentWithoutGameContextCreatesNothing(t *testing.T) {
	app := newTestApp(t)
	app.seedUser("alice", "user")
	app.login("alice")

	resp, body := app.postForm("/comments", formValues("comment", "floating comment"))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "422")
	assert.Zero(t, countRows(t, app.db, &models.Comment{}))
}

func TestEmptyCommentRedirectsWithoutCreating(t *testing.T) {
	app := newTestApp(t)
	app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	app.login("alice")

	resp, body := app.get(fmt.Sprintf("/game/%d", game.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := extractGameToken(t, body)

	resp, _ = app.postForm("/comments", formValues("comment", "", "game_token", token))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Zero(t, countRows(t, app.db, &models.Comment{}))
}
