package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nutrichat/config"
	"nutrichat/internal/meal"
	"nutrichat/internal/profile"
	"nutrichat/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	serverCfg   config.HTTPServerConfig

	// Domains
	mealUC    meal.UseCase
	profileUC profile.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	ServerCfg   config.HTTPServerConfig

	MealUC    meal.UseCase
	ProfileUC profile.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		serverCfg:   cfg.ServerCfg,
		mealUC:      cfg.MealUC,
		profileUC:   cfg.ProfileUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.mealUC == nil {
		return errors.New("meal use case is required")
	}
	return nil
}
