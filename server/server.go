package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/sweep/config"
	"github.com/minaorangina/sweep/engine"
	"github.com/minaorangina/sweep/game"
	"github.com/minaorangina/sweep/protocol"
	"github.com/minaorangina/sweep/store"
	"github.com/sirupsen/logrus"
)

const maxNewGameAttempts = 10

type NewGameReq struct {
	Preset string `json:"preset"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mines  int    `json:"mines"`
}

type NewGameRes struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Mines    int    `json:"mines"`
}

type ServerOpts struct {
	Presets        config.Presets
	DefaultPreset  string
	AllowedOrigins []string
	MaxCells       int
	Logger         *logrus.Logger
}

// GameServer is a game server
type GameServer struct {
	store         store.GameStore
	presets       config.Presets
	defaultPreset string
	origins       []string
	maxCells      int
	log           *logrus.Logger
	upgrader      websocket.Upgrader
	ids           *idGenerator
	http.Server
}

// NewServer creates a new GameServer
func NewServer(st store.GameStore, opts ServerOpts) (*GameServer, error) {
	s := &GameServer{
		store:         st,
		presets:       opts.Presets,
		defaultPreset: opts.DefaultPreset,
		origins:       opts.AllowedOrigins,
		maxCells:      opts.MaxCells,
		log:           opts.Logger,
	}

	if s.presets == nil {
		presets, err := config.LoadPresets("")
		if err != nil {
			return nil, err
		}
		s.presets = presets
	}
	if s.defaultPreset == "" {
		s.defaultPreset = config.DefaultPreset
	}
	if _, err := s.presets.Lookup(s.defaultPreset); err != nil {
		return nil, err
	}
	if s.maxCells <= 0 {
		s.maxCells = config.DefaultMaxCells
	}
	if len(s.origins) == 0 {
		s.origins = []string{"*"}
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}

	ids, err := newIDGenerator()
	if err != nil {
		return nil, err
	}
	s.ids = ids

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(s.origins, r.Header.Get("Origin"))
		},
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGame))
	router.Handle("/presets", http.HandlerFunc(s.HandlePresets))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	accessLog := s.log.WriterLevel(logrus.InfoLevel)
	s.RegisterOnShutdown(func() { accessLog.Close() })

	s.Handler = handlers.LoggingHandler(accessLog, cors(router))

	return s, nil
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(g.log, err, w)
		return
	}

	size, err := g.boardSize(data)
	if err != nil {
		writeText(w, http.StatusBadRequest, err.Error())
		return
	}

	playerID := engine.NewID()

	var ge engine.GameEngine
	for attempt := 0; ; attempt++ {
		ge, err = engine.NewGameEngine(engine.GameEngineOpts{
			GameID:    g.ids.Next(),
			CreatorID: playerID,
			Width:     size.Width,
			Height:    size.Height,
			Mines:     size.Mines,
			Logger:    g.log,
		})
		if errors.Is(err, game.ErrInvalidDimensions) || errors.Is(err, game.ErrInvalidMineCount) {
			writeText(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			g.log.WithError(err).Error("could not create game")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err = g.store.AddGame(ge)
		if err == nil {
			break
		}
		if !errors.Is(err, store.ErrDuplicateGameID) || attempt == maxNewGameAttempts {
			g.log.WithError(err).Error("could not store game")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	writeJSON(g.log, w, http.StatusCreated, NewGameRes{
		GameID:   ge.ID(),
		PlayerID: playerID,
		Width:    size.Width,
		Height:   size.Height,
		Mines:    size.Mines,
	})
}

func (g *GameServer) boardSize(data NewGameReq) (config.Preset, error) {
	var (
		size config.Preset
		err  error
	)

	switch {
	case data.Preset != "":
		size, err = g.presets.Lookup(data.Preset)
	case data.Width == 0 && data.Height == 0 && data.Mines == 0:
		size, err = g.presets.Lookup(g.defaultPreset)
	default:
		size = config.Preset{Width: data.Width, Height: data.Height, Mines: data.Mines}
	}
	if err != nil {
		return config.Preset{}, err
	}

	if err := size.CheckSize(g.maxCells); err != nil {
		return config.Preset{}, err
	}

	return size, nil
}

// HandleGame shows a game, plays a move on it or ends it
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		writeText(w, http.StatusBadRequest, "missing game ID")
		return
	}

	ge := g.store.FindGame(gameID)
	if ge == nil {
		writeText(w, http.StatusNotFound, unknownGameIDMsg(gameID))
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(g.log, w, http.StatusOK, ge.State())

	case http.MethodPost:
		var msg protocol.InboundMessage
		err := json.NewDecoder(r.Body).Decode(&msg)
		defer r.Body.Close()
		if err != nil {
			writeParseError(g.log, err, w)
			return
		}

		if msg.PlayerID != ge.CreatorID() {
			writeText(w, http.StatusForbidden, unknownPlayerIDMsg(msg.PlayerID))
			return
		}

		out := ge.Receive(msg)
		status := http.StatusOK
		if out.Command == protocol.Error {
			status = http.StatusBadRequest
		}
		writeJSON(g.log, w, status, out)

	case http.MethodDelete:
		if r.URL.Query().Get("player_id") != ge.CreatorID() {
			writeText(w, http.StatusForbidden, unknownPlayerIDMsg(r.URL.Query().Get("player_id")))
			return
		}

		if err := g.store.RemoveGame(gameID); err != nil {
			writeText(w, http.StatusNotFound, unknownGameIDMsg(gameID))
			return
		}
		g.log.WithField("game_id", gameID).Info("game removed")
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// HandlePresets lists the board sizes a new game can use
func (g *GameServer) HandlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(g.log, w, http.StatusOK, g.presets)
}

func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	gameID := query.Get("game_id")
	if gameID == "" {
		writeText(w, http.StatusBadRequest, "missing game ID")
		return
	}

	playerID := query.Get("player_id")
	if playerID == "" {
		writeText(w, http.StatusBadRequest, "missing player ID")
		return
	}

	ge := g.store.FindGame(gameID)
	if ge == nil {
		writeText(w, http.StatusNotFound, unknownGameIDMsg(gameID))
		return
	}

	if playerID != ge.CreatorID() {
		writeText(w, http.StatusForbidden, unknownPlayerIDMsg(playerID))
		return
	}

	// Upgrade replies to the client itself on failure
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).WithField("game_id", gameID).Warn("could not upgrade to websocket")
		return
	}

	engine.NewWSPlayer(playerID, conn, ge, g.log).Start()
}
