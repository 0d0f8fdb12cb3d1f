package workers

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gobridgeflow/config"
	"gobridgeflow/workers/handlers"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	log "github.com/sirupsen/logrus"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	r.Get("/state", handlers.State)

	r.Get("/chains", handlers.Chains)
	r.Get("/assets", handlers.Assets)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin", handlers.SignIn)
		r.Post("/signup", handlers.SignUp)
		r.Post("/github", handlers.SignInGitHub)
	})

	r.Route("/flows", func(r chi.Router) {
		r.Post("/", handlers.OpenFlow)
		r.Get("/{id}", handlers.GetFlow)
		r.Delete("/{id}", handlers.CloseFlow)
		r.Put("/{id}/deposit", handlers.ConfigureDeposit)
		r.Post("/{id}/advance", handlers.AdvanceFlow)
		r.Post("/{id}/reset", handlers.ResetFlow)
	})

	return r
}

func Worker_HTTP() {
	log.Printf("Starting HTTP service")

	var server *http.Server

	if config.Config.Server.UseSSL {
		cert, err := tls.LoadX509KeyPair(config.Config.Server.CertFile, config.Config.Server.KeyFile)
		if err != nil {
			log.Fatalf("error loading TLS key pair: %s", err)
		}
		server = &http.Server{
			Addr:    fmt.Sprintf(":%d", config.Config.Server.Port),
			Handler: NewRouter(),
			TLSConfig: &tls.Config{
				Certificates: []tls.Certificate{cert},
				MinVersion:   tls.VersionTLS12,
			},
			ReadHeaderTimeout: 10 * time.Second,
		}
	} else {
		server = &http.Server{
			Addr:              fmt.Sprintf(":%d", config.Config.Server.Port),
			Handler:           NewRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if config.Config.Server.UseSSL {
			if err := server.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
				log.Fatalf("error listening to: %s", err)
			}
		} else {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("error listening to: %s", err)
			}
		}
	}()
	log.WithField("addr", server.Addr).Print("HTTP service started")

	<-done
	log.Print("HTTP service stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP service shutdown error: %+v", err)
	}
	log.Print("HTTP service shutdown normal")

	// send signal to other threads/workers to exit
	WorkerShutdown.Store(true)
}

// CORS answers preflight requests for any path and lets the rest through
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Origin, X-Requested-With, "+handlers.UserHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
