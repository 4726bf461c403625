package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
	"github.com/darianrosebrook/figma-make-doom/internal/engine"
	"github.com/darianrosebrook/figma-make-doom/pkg/api"
	"github.com/darianrosebrook/figma-make-doom/pkg/logger"
	"github.com/darianrosebrook/figma-make-doom/pkg/utils"
)

// Настройки WebSocket.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и движком: команды ввода идут
// в InputState, снапшоты - из Broadcaster. Игровой логики здесь нет.
type Client struct {
	id      string
	service *engine.GameService
	conn    *websocket.Conn
	sub     chan api.ServerMessage
}

func NewClient(service *engine.GameService, conn *websocket.Conn) *Client {
	c := &Client{
		id:      utils.GenerateID(),
		service: service,
		conn:    conn,
		sub:     service.Hub.Subscribe(),
	}
	logger.Log.WithField("client_id", c.id).Info("Client connected")
	return c
}

// readPump читает команды клиента и складывает их в буфер ввода.
func (c *Client) readPump() {
	defer func() {
		c.service.Hub.Unsubscribe(c.sub)
		// Отжимаем все клавиши, иначе игрок продолжит бежать
		// после обрыва соединения.
		c.service.Input.SetMovement(false, false, false, false, false, false)
		if err := c.conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithField("client_id", c.id).Info("Client disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd api.ClientCommand
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).Warn("websocket read error")
			}
			return
		}
		if err := cmd.Validate(); err != nil {
			// Плохая команда не фатальна для симуляции - только warning.
			logger.Log.WithError(err).Warn("dropping invalid client command")
			continue
		}
		c.dispatch(cmd)
	}
}

// dispatch переводит команду в вызовы буфера ввода.
// Edge-triggered команды взводятся один раз, ядро само их потребит.
func (c *Client) dispatch(cmd api.ClientCommand) {
	input := c.service.Input

	switch cmd.Type {
	case api.CmdInput:
		input.SetMovement(cmd.Forward, cmd.Back, cmd.StrafeLeft, cmd.StrafeRight, cmd.TurnLeft, cmd.TurnRight)
		if cmd.MouseDelta != 0 {
			input.AddMouseDelta(cmd.MouseDelta)
		}
	case api.CmdFire:
		input.QueueFire()
	case api.CmdPause:
		input.QueuePauseToggle()
	case api.CmdWeapon:
		// Слоты 1..3 соответствуют порядку WeaponKind.
		input.QueueWeapon(domain.WeaponKind(cmd.Slot - 1))
	case api.CmdReset:
		input.QueueReset()
	}
}

// writePump шлет клиенту снапшоты и пинги.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	// Первое сообщение - полный снапшот с картой этажа.
	if err := c.writeJSON(c.service.FullMessage()); err != nil {
		return
	}

	for {
		select {
		case msg, ok := <-c.sub:
			if !ok {
				return
			}
			if err := c.writeJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) writeJSON(msg api.ServerMessage) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		// Неудача отправки кадра не фатальна для ядра: симуляция
		// продолжает тикать, клиент просто отваливается.
		logger.Log.WithError(err).Warn("failed to write snapshot")
		return err
	}
	return nil
}
