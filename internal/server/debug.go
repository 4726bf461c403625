package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/darianrosebrook/figma-make-doom/internal/engine"
	"github.com/darianrosebrook/figma-make-doom/pkg/logger"
)

// DebugHandler дает доступ к внутреннему состоянию симуляции.
// Только для разработки: полный дамп, включая скрытые поля AI.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты.
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/grid", h.handleGrid)
}

// /debug/state - дамп состояния: игрок, враги с AI-полями, предметы.
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	snapshot := h.Service.Snapshot()
	writeJSON(w, map[string]interface{}{
		"floor":        snapshot.Floor,
		"theme":        snapshot.Theme.String(),
		"bossFloor":    snapshot.BossFloor,
		"bossDefeated": snapshot.BossDefeated,
		"status":       snapshot.Status.String(),
		"time":         snapshot.Time,
		"player":       snapshot.Player,
		"enemies":      snapshot.Enemies,
		"pickups":      snapshot.Pickups,
	})
}

// /debug/grid - ASCII-карта текущего этажа: '#' стена, '.' пол,
// '@' игрок, 'e' враг.
func (h *DebugHandler) handleGrid(w http.ResponseWriter, r *http.Request) {
	snapshot := h.Service.Snapshot()
	grid := snapshot.Grid

	rows := make([][]byte, grid.Size)
	for y := 0; y < grid.Size; y++ {
		rows[y] = make([]byte, grid.Size)
		for x := 0; x < grid.Size; x++ {
			if grid.Blocked(x, y) {
				rows[y][x] = '#'
			} else {
				rows[y][x] = '.'
			}
		}
	}
	for i := range snapshot.Enemies {
		e := &snapshot.Enemies[i]
		if grid.InBounds(int(e.Pos.X), int(e.Pos.Y)) {
			rows[int(e.Pos.Y)][int(e.Pos.X)] = 'e'
		}
	}
	px, py := int(snapshot.Player.Pos.X), int(snapshot.Player.Pos.Y)
	if grid.InBounds(px, py) {
		rows[py][px] = '@'
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(sb.String())); err != nil {
		logger.Log.WithError(err).Warn("failed to write debug grid")
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Warn("failed to encode debug response")
	}
}
