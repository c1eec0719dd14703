package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/minaorangina/sweep/game"
	"github.com/sirupsen/logrus"
)

const gameIDLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// idGenerator hands out six-letter game IDs
type idGenerator struct {
	mu  sync.Mutex
	src game.Source
}

func newIDGenerator() (*idGenerator, error) {
	src, err := game.NewRandomSource()
	if err != nil {
		return nil, err
	}
	return &idGenerator{src: src}, nil
}

func (g *idGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	code := make([]byte, 6)
	for i := range code {
		code[i] = gameIDLetters[g.src.Intn(len(gameIDLetters))]
	}

	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

func unknownPlayerIDMsg(unknownID string) string {
	return fmt.Sprintf("player '%s' is not playing this game", unknownID)
}

func originAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range allowed {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

func writeJSON(log logrus.FieldLogger, w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Error("could not encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeParseError(log logrus.FieldLogger, err error, w http.ResponseWriter) {
	if err == io.EOF {
		writeText(w, http.StatusBadRequest, "Missing body")
		return
	}

	log.WithError(err).Debug("could not parse request body")
	writeText(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
}
