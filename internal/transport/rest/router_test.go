package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memeclash/internal/catalog"
	"memeclash/internal/game"
	"memeclash/internal/model"
	"memeclash/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")

	authSvc := game.NewAuthService("test-secret")
	roomSvc := game.NewRoomService(store.NewMemory(), catalog.NewStatic(3), 1)
	soloSvc := game.NewSoloService(catalog.NewStatic(3), game.NewCaptionService())

	router := NewRouter(&Container{
		AuthService: authSvc,
		RoomService: roomSvc,
		SoloService: soloSvc,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body, out interface{}) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	} else {
		buf.WriteString("{}")
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func login(t *testing.T, srv *httptest.Server, name string) (string, model.Identity) {
	t.Helper()
	var resp model.GuestLoginResponse
	status := doJSON(t, "POST", srv.URL+"/v1/auth/guest", "", model.GuestLoginRequest{Name: name}, &resp)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.Identity
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoomEndpointsRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	status := doJSON(t, "POST", srv.URL+"/v1/rooms", "", map[string]string{"themeId": "starter"}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestFullGameOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	hostToken, hostID := login(t, srv, "Host")
	guestToken, guestID := login(t, srv, "Guest")

	// Host creates a room.
	var room model.Room
	status := doJSON(t, "POST", srv.URL+"/v1/rooms", hostToken, map[string]string{"themeId": "starter"}, &room)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, model.RoomStatusLobby, room.Status)
	require.Equal(t, hostID.ID, room.HostID)

	// Guest joins, with a lowercased code.
	var joined model.Room
	status = doJSON(t, "POST", srv.URL+"/v1/rooms/"+strings.ToLower(room.Code)+"/join", guestToken, nil, &joined)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, joined.Players, 2)

	// Guest cannot start.
	status = doJSON(t, "POST", srv.URL+"/v1/rooms/"+room.Code+"/start", guestToken, nil, nil)
	require.Equal(t, http.StatusForbidden, status)

	// Host starts.
	var started model.Room
	status = doJSON(t, "POST", srv.URL+"/v1/rooms/"+room.Code+"/start", hostToken, nil, &started)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, model.RoomStatusPlaying, started.Status)
	require.NotNil(t, started.CurrentImage)

	// Both submit.
	status = doJSON(t, "POST", srv.URL+"/v1/rooms/"+room.Code+"/submit", hostToken, map[string]string{"text": "host caption"}, nil)
	require.Equal(t, http.StatusOK, status)

	var voting model.Room
	status = doJSON(t, "POST", srv.URL+"/v1/rooms/"+room.Code+"/submit", guestToken, map[string]string{"text": "guest caption"}, &voting)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, model.RoomStatusVoting, voting.Status)
	require.Len(t, voting.RoundCaptions, 2)

	// Vote for the guest's card; single round, so the game finishes.
	winner := voting.FindPlayer(guestID.ID).CurrentCard
	var final model.Room
	status = doJSON(t, "POST", srv.URL+"/v1/rooms/"+room.Code+"/vote", hostToken, map[string]string{"cardId": winner.ID}, &final)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, model.RoomStatusLeaderboard, final.Status)
	assert.Equal(t, 1, final.FindPlayer(guestID.ID).Score)

	// Polling read still serves the finished room.
	var polled model.Room
	status = doJSON(t, "GET", srv.URL+"/v1/rooms/"+room.Code, guestToken, nil, &polled)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, final.Version, polled.Version)
}

func TestJoinMissingRoomThenCreateAtCode(t *testing.T) {
	srv := newTestServer(t)
	token, _ := login(t, srv, "Solo Host")

	status := doJSON(t, "POST", srv.URL+"/v1/rooms/ZZ99ZZ/join", token, nil, nil)
	require.Equal(t, http.StatusNotFound, status)

	// Recovery: create the room at that code.
	var room model.Room
	status = doJSON(t, "POST", srv.URL+"/v1/rooms/zz99zz", token, map[string]string{"themeId": "starter"}, &room)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "ZZ99ZZ", room.Code)

	token2, _ := login(t, srv, "Other")
	status = doJSON(t, "POST", srv.URL+"/v1/rooms/zz99zz", token2, map[string]string{"themeId": "starter"}, nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestSoloRound(t *testing.T) {
	srv := newTestServer(t)
	token, _ := login(t, srv, "Loner")

	var round model.SoloRound
	status := doJSON(t, "POST", srv.URL+"/v1/solo/rounds", token, map[string]string{"themeId": "animals"}, &round)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, round.Hand)
	assert.Equal(t, "animals", round.Image.ThemeID)

	var outcome model.SoloOutcome
	status = doJSON(t, "POST", srv.URL+"/v1/solo/judge", token, map[string]interface{}{
		"image":   round.Image,
		"caption": round.Hand[0].Text,
	}, &outcome)
	require.Equal(t, http.StatusOK, status)
	// Oracle is unconfigured in tests, so the canned tie verdict rules.
	assert.Equal(t, model.VerdictTie, outcome.Result.Winner)
	assert.True(t, outcome.AICard.IsAI)
}
