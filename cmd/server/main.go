package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gobridgeflow/config"
	"gobridgeflow/idgen"
	"gobridgeflow/redis"
	"gobridgeflow/session"
	"gobridgeflow/workers"
	"gobridgeflow/workers/handlers"

	log "github.com/sirupsen/logrus"
)

func setupLogging() *os.File {
	level, err := log.ParseLevel(config.Config.Log.Level)
	if err != nil {
		log.Fatalf("invalid log level: %v", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := os.MkdirAll(config.Config.Log.Dir, 0o755); err != nil {
		log.Fatalf("error creating log directory: %v", err)
	}
	path := filepath.Join(config.Config.Log.Dir, fmt.Sprintf("log_%s.txt", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("error opening log file for writing: %v", err)
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return f
}

func main() {
	config.Init()

	f := setupLogging()
	defer f.Close()

	log.Print("Starting bridge flow service")

	catalog := config.Config.Catalog()

	// profiles are best-effort, the service runs fine without redis
	store := redis.New(config.Config.Server.RedisHost, config.Config.Server.RedisPort, config.Config.Server.ProfileTTL)
	defer store.Close()
	if err := store.Ping(); err != nil {
		log.Warnf("Redis not reachable, user profiles will not persist: %s", err)
	}

	registry := session.NewRegistry(catalog, idgen.Default())
	auth := session.NewAuthenticator(store)
	defer auth.Close()

	handlers.Init(handlers.Deps{
		Catalog: catalog,
		Flows:   registry,
		Auth:    auth,
		Store:   store,
	})

	// two workers:
	// * discard abandoned flows
	// * HTTP API (serves as main worker thread)
	go workers.Worker_pruneFlows(registry, time.Duration(config.Config.Flow.IdleTimeout)*time.Second, 30*time.Second)

	workers.Worker_HTTP()
}
