package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"

	"hordebreak/server/internal/telemetry"
	"hordebreak/server/logging"
	"hordebreak/server/logging/sinks"
)

func buildRouter(cfg runConfig) (*logging.Router, error) {
	routerCfg := cfg.loggingRouterConfig()
	named := make([]logging.NamedSink, 0, 2)
	if routerCfg.HasSink("console") {
		named = append(named, logging.NamedSink{
			Name: "console",
			Sink: sinks.NewConsoleSink(os.Stdout, routerCfg.Console),
		})
	}
	if routerCfg.HasSink("json") {
		sink, err := sinks.NewJSONSink(routerCfg.JSON)
		if err != nil {
			return nil, err
		}
		named = append(named, logging.NamedSink{Name: "json", Sink: sink})
	}
	return logging.NewRouter(nil, routerCfg, named), nil
}

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "world seed (overrides config)")
	flag.Parse()

	cfg, err := loadRunConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	router, err := buildRouter(cfg)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}

	logger := telemetry.WrapLogger(log.Default())
	metrics := telemetry.NewCounters()
	hub := newHub(cfg, router, logger, metrics)

	stop := make(chan struct{})
	go hub.Run(stop)

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/diagnostics", func(w http.ResponseWriter, r *http.Request) {
		events, dropped := router.Stats()
		payload := struct {
			Status     string            `json:"status"`
			ServerTime int64             `json:"serverTime"`
			Step       uint64            `json:"step"`
			Counters   map[string]uint64 `json:"counters"`
			Events     uint64            `json:"eventsRouted"`
			Dropped    uint64            `json:"eventsDropped"`
		}{
			Status:     "ok",
			ServerTime: time.Now().UnixMilli(),
			Step:       hub.Snapshot().Step,
			Counters:   metrics.Snapshot(),
			Events:     events,
			Dropped:    dropped,
		}
		data, err := json.Marshal(payload)
		if err != nil {
			http.Error(w, "failed to encode", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade failed: %v", err)
			return
		}
		id, _ := hub.Subscribe(conn)
		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				hub.Disconnect(id)
				return
			}
			hub.HandleMessage(id, payload)
		}
	})

	server := &http.Server{Addr: cfg.Addr, Handler: mux}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		close(stop)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := router.Close(ctx); err != nil {
			log.Printf("logging shutdown: %v", err)
		}
		server.Shutdown(ctx)
	}()

	log.Printf("server listening on %s (seed %d)", cfg.Addr, cfg.Seed)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
