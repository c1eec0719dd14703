package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	utils "github.com/minaorangina/sweep/internal"
	"github.com/minaorangina/sweep/internal/logging"
	"github.com/minaorangina/sweep/store"
)

func newTestGameServer(t *testing.T, st store.GameStore, origins ...string) *GameServer {
	t.Helper()

	server, err := NewServer(st, ServerOpts{
		AllowedOrigins: origins,
		Logger:         logging.Discard(),
	})
	utils.AssertNoError(t, err)

	return server
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newPlayRequest(gameID string, data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/game/"+gameID, bytes.NewBuffer(data))
	return request
}

// mustCreateGame creates a game through the server and returns its details
func mustCreateGame(t *testing.T, server http.Handler, req NewGameReq) NewGameRes {
	t.Helper()

	response := httptest.NewRecorder()
	server.ServeHTTP(response, newCreateGameRequest(mustMakeJson(t, req)))
	assertStatus(t, response.Code, http.StatusCreated)

	var res NewGameRes
	utils.AssertNoError(t, json.Unmarshal(response.Body.Bytes(), &res))

	return res
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)

	if err != nil {
		if resp == nil {
			t.Fatalf("could not open a ws connection on %s: %v", url, err)
		}
		body, _ := ioutil.ReadAll(resp.Body)
		t.Fatalf("could not open a ws connection on %s, code %d: %s, %v", url, resp.StatusCode, body, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}

	return ws
}

func makeWSUrl(serverURL, gameID, playerID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") +
		"/ws?game_id=" + gameID + "&player_id=" + playerID
}
