package engine

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/sweep/protocol"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	sendBufferSize = 16
)

var ErrSendBufferFull = errors.New("player is not keeping up with messages")

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player is whoever is playing a game: a terminal or a remote client
type Player interface {
	ID() string
	Send(msg protocol.OutboundMessage) error
}

var (
	_ Player = (*WSPlayer)(nil)
	_ Player = (*CLIPlayer)(nil)
)

// WSPlayer plays a game over a websocket connection
type WSPlayer struct {
	id   string
	conn *websocket.Conn
	ge   GameEngine
	send chan []byte
	log  logrus.FieldLogger
}

// NewWSPlayer constructs a player for an upgraded connection
func NewWSPlayer(id string, conn *websocket.Conn, ge GameEngine, log logrus.FieldLogger) *WSPlayer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &WSPlayer{
		id:   id,
		conn: conn,
		ge:   ge,
		send: make(chan []byte, sendBufferSize),
		log:  log.WithFields(logrus.Fields{"game_id": ge.ID(), "player_id": id}),
	}
}

func (p *WSPlayer) ID() string {
	return p.id
}

// Send queues a message for the connection
func (p *WSPlayer) Send(msg protocol.OutboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case p.send <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Start sends the current board and then serves commands until the
// connection closes
func (p *WSPlayer) Start() {
	go p.writePump()

	if err := p.Send(p.ge.State()); err != nil {
		p.log.WithError(err).Warn("could not send initial state")
	}

	go p.readPump()
}

func (p *WSPlayer) readPump() {
	defer close(p.send)

	p.conn.SetReadLimit(maxMessageSize)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				p.log.WithError(err).Warn("connection closed unexpectedly")
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			p.log.WithError(err).Debug("unreadable command")
			reply := protocol.OutboundMessage{
				GameID:  p.ge.ID(),
				Command: protocol.Error,
				Error:   "could not read command: " + err.Error(),
			}
			if err := p.Send(reply); err != nil {
				p.log.WithError(err).Warn("dropping reply")
			}
			continue
		}

		msg.PlayerID = p.id
		if err := p.Send(p.ge.Receive(msg)); err != nil {
			p.log.WithError(err).Warn("dropping reply")
		}
	}
}

func (p *WSPlayer) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The reader closed the channel.
				p.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
