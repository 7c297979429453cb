package main

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"hordebreak/server/internal/journal"
	"hordebreak/server/internal/sim"
	"hordebreak/server/internal/telemetry"
	"hordebreak/server/internal/world"
	"hordebreak/server/logging"
)

const (
	writeWait = 10 * time.Second
	// frameRate is the real-time pump feeding the fixed-step clock.
	frameRate = 60
)

type clientMessage struct {
	Type   string  `json:"type"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	AimX   float64 `json:"aimX,omitempty"`
	AimY   float64 `json:"aimY,omitempty"`
	Index  int     `json:"index"`
	SentAt int64   `json:"sentAt,omitempty"`
}

type stateMessage struct {
	Type       string          `json:"type"`
	Snapshot   world.Snapshot  `json:"snapshot"`
	Events     []journal.Event `json:"events,omitempty"`
	ServerTime int64           `json:"serverTime"`
}

type errorMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) send(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub owns the run's world, the fixed-step clock driving it, and the set of
// websocket subscribers watching it. All world access funnels through the
// hub mutex.
type Hub struct {
	mu          sync.Mutex
	world       *world.World
	clock       *sim.Clock
	subscribers map[string]*subscriber
	nextSub     atomic.Uint64

	logger  telemetry.Logger
	metrics telemetry.Metrics
}

func newHub(cfg runConfig, pub logging.Publisher, logger telemetry.Logger, metrics telemetry.Metrics) *Hub {
	if metrics == nil {
		metrics = telemetry.NopMetrics()
	}
	worldCfg := cfg.worldConfig()
	worldCfg.Publisher = pub
	worldCfg.Metrics = metrics
	return &Hub{
		world:       world.New(worldCfg),
		clock:       sim.NewClock(),
		subscribers: make(map[string]*subscriber),
		logger:      logger,
		metrics:     metrics,
	}
}

// Subscribe registers a websocket connection and returns its id. A joining
// subscriber immediately receives the current snapshot.
func (h *Hub) Subscribe(conn *websocket.Conn) (string, *subscriber) {
	id := fmt.Sprintf("sub-%d", h.nextSub.Add(1))
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	h.subscribers[id] = sub
	snapshot := h.world.Snapshot()
	h.mu.Unlock()
	h.metrics.Add("subscribers_joined", 1)

	if data, err := json.Marshal(stateMessage{Type: "state", Snapshot: snapshot, ServerTime: time.Now().UnixMilli()}); err == nil {
		if err := sub.send(data); err != nil {
			h.logger.Printf("initial state send failed for %s: %v", id, err)
		}
	}
	return id, sub
}

// Disconnect drops a subscriber and closes its connection.
func (h *Hub) Disconnect(id string) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
	}
	h.mu.Unlock()
	if ok {
		sub.conn.Close()
	}
}

// HandleMessage parses one client payload into a simulation command.
func (h *Hub) HandleMessage(subID string, payload []byte) {
	var msg clientMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		h.logger.Printf("discarding malformed message from %s: %v", subID, err)
		return
	}

	var cmd sim.Command
	switch msg.Type {
	case "input":
		cmd = sim.Command{Type: sim.CommandMove, Move: &sim.MoveCommand{DX: msg.DX, DY: msg.DY}}
	case "attack":
		cmd = sim.Command{Type: sim.CommandAttack, Attack: &sim.AttackCommand{AimX: msg.AimX, AimY: msg.AimY}}
	case "choose":
		cmd = sim.Command{Type: sim.CommandChooseUpgrade, Choose: &sim.ChooseUpgradeCommand{Index: msg.Index}}
	case "quit":
		cmd = sim.Command{Type: sim.CommandQuit}
	default:
		h.logger.Printf("unknown message type %q from %s", msg.Type, subID)
		return
	}
	cmd.ActorID = subID

	h.mu.Lock()
	cmd.OriginStep = h.world.Step64()
	err := h.world.Apply(cmd)
	h.mu.Unlock()
	if err != nil {
		h.logger.Printf("command %s from %s rejected: %v", cmd.Type, subID, err)
		h.sendError(subID, err.Error())
		return
	}
	h.metrics.Add("commands_applied", 1)
}

func (h *Hub) sendError(subID, reason string) {
	h.mu.Lock()
	sub, ok := h.subscribers[subID]
	h.mu.Unlock()
	if !ok {
		return
	}
	if data, err := json.Marshal(errorMessage{Type: "error", Reason: reason}); err == nil {
		sub.send(data)
	}
}

// Run pumps real time into the fixed-step clock until stop closes. While a
// draft is pending the clock pauses, so the arena freezes under the overlay
// without accumulating catch-up time.
func (h *Hub) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			elapsed := now.Sub(last).Seconds()
			last = now
			h.frame(elapsed)
		}
	}
}

// frame advances the world by whole fixed steps for the elapsed real time
// and broadcasts the resulting snapshot and events.
func (h *Hub) frame(elapsed float64) {
	h.mu.Lock()
	if h.world.DraftPending() {
		if !h.clock.Paused() {
			h.clock.Pause()
		}
	} else if h.clock.Paused() {
		h.clock.Resume()
	}

	steps := h.clock.Advance(elapsed)
	for i := 0; i < steps; i++ {
		h.world.Step()
		if h.world.DraftPending() {
			// Remaining steps are forfeit; the draft freezes the run.
			h.clock.Pause()
			break
		}
	}
	snapshot := h.world.Snapshot()
	events := h.world.DrainEvents()

	subs := make(map[string]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	if steps > 0 {
		h.metrics.Add("frames", 1)
	}

	data, err := json.Marshal(stateMessage{
		Type:       "state",
		Snapshot:   snapshot,
		Events:     events,
		ServerTime: time.Now().UnixMilli(),
	})
	if err != nil {
		h.logger.Printf("failed to marshal state message: %v", err)
		return
	}
	for id, sub := range subs {
		if err := sub.send(data); err != nil {
			h.logger.Printf("failed to send update to %s: %v", id, err)
			h.Disconnect(id)
		}
	}
}

// Snapshot exposes the current world state for diagnostics.
func (h *Hub) Snapshot() world.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.world.Snapshot()
}
