// Package server wires configuration, storage, services and routes into a
// runnable HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"salesdesk/internal/auth"
	"salesdesk/internal/config"
	"salesdesk/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	mongo  *mongo.Client
	log    *slog.Logger
}

// New creates a new server instance
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	tokens, err := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	store := repository.NewStore(db)
	services := InitServices(store, tokens)
	handlers := InitHandlers(services)

	router := setupRouter(cfg, handlers, tokens, store)

	return &Server{
		cfg:    cfg,
		router: router,
		mongo:  mongoClient,
		log:    log,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Close disconnects the MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	s.log.Info("server listening", "addr", s.cfg.Server.Address())
	return s.router.Run(s.cfg.Server.Address())
}
