package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// deps holds the heavy runtime collaborators, constructed in one batch so a
// broken configuration surfaces as a single aggregated error before
// anything is wired.
type deps struct {
	engine *gin.Engine
	store  *Store
	mail   *mailer
	cors   gin.HandlerFunc
}

func loadDependencies(cfg *Config, log *zap.Logger) (*deps, error) {
	var errs []error
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		errs = append(errs, fmt.Errorf("invalid PORT %q: must be a number", cfg.Port))
	}
	if len(cfg.CORSOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ORIGIN resolved to no origins"))
	}
	for _, o := range cfg.CORSOrigins {
		u, err := url.Parse(o)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("invalid CORS origin %q", o))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &deps{
		engine: gin.New(),
		store:  newStore(log),
		mail:   newMailer(cfg.SMTPAddr, log),
		cors:   corsMiddleware(cfg.CORSOrigins),
	}, nil
}

// App is the server lifecycle handle. It owns the listening socket; Start on
// an already-started App is a logged no-op.
type App struct {
	cfg    *Config
	log    *zap.Logger
	engine *gin.Engine
	store  *Store
	mail   *mailer
	routes []routeBinding

	mu      sync.Mutex
	started bool
	srv     *http.Server
	ln      net.Listener
}

// newApp wires the application in a fixed order: CORS, request middleware,
// docs endpoint, persistence connection (async, non-fatal), resource routes
// behind the auth gate, then the diagnostic endpoints.
func newApp(cfg *Config, log *zap.Logger, d *deps) *App {
	a := &App{
		cfg:    cfg,
		log:    log,
		engine: d.engine,
		store:  d.store,
		mail:   d.mail,
	}

	a.engine.Use(d.cors)
	a.engine.Use(requestLogger(log))
	a.engine.Use(gin.Recovery())

	a.registerDocs()

	// The server starts listening even when the database is down, so health
	// checks and static routes stay reachable.
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set; starting without persistence")
	} else {
		go func() {
			if err := a.store.Connect(cfg.DatabaseURL); err != nil {
				log.Error("database connection error", zap.Error(err))
				return
			}
			log.Info("connected to database")
		}()
	}

	a.registerRoutes()
	return a
}

// Start listens on the configured port and serves until Shutdown. A second
// call within the same process does not open a second socket.
func (a *App) Start() error {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		a.log.Info("listen skipped (already started)")
		return nil
	}
	ln, err := net.Listen("tcp", ":"+a.cfg.Port)
	if err != nil {
		a.mu.Unlock()
		return err
	}
	a.ln = ln
	a.srv = &http.Server{Handler: a.engine}
	a.started = true
	a.mu.Unlock()

	a.log.Info("server listening", zap.String("addr", ln.Addr().String()))
	go a.mail.verify()

	if err := a.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the bound listen address, or "" before Start.
func (a *App) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ln == nil {
		return ""
	}
	return a.ln.Addr().String()
}

// Shutdown stops accepting connections and closes the listener.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	srv := a.srv
	a.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
