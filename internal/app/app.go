package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mynkprtp/movieApi/domain"
	"github.com/mynkprtp/movieApi/internal/config"
	httpx "github.com/mynkprtp/movieApi/internal/http"
	"github.com/mynkprtp/movieApi/internal/http/handlers"
	"github.com/mynkprtp/movieApi/internal/http/middleware"
	"github.com/mynkprtp/movieApi/internal/infrastructure/auth"
	"github.com/mynkprtp/movieApi/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(c.DB, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	// Handlers
	authH := handlers.NewAuthHandlers(c.AuthSvc)
	fpH := handlers.NewForgotPasswordHandlers(c.ResetSvc)
	movieH := handlers.NewMovieHandlers(c.MovieSvc)
	fileH := handlers.NewFileHandlers(c.FileStore)
	polH := handlers.NewPolicyHandlers(services.NewPolicyService(cas.E))

	// Middleware
	jwtMW := middleware.NewAuthMW(c.TokenSvc)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, fpH, movieH, fileH, polH, jwtMW, casbinMW)

	if err := seedDefaultPolicies(cas.E); err != nil {
		return err
	}

	// Background sweep of expired refresh tokens and OTP challenges
	reaperCtx, stopReaper := context.WithCancel(context.Background())
	defer stopReaper()
	go c.Reaper.Run(reaperCtx)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedDefaultPolicies grants role_admin the movie mutation and admin routes
// on an empty rule set. A failed write aborts startup rather than leaving
// the admin surface unreachable.
func seedDefaultPolicies(e domain.CasbinEnforcer) error {
	policies, err := e.GetPolicy()
	if err != nil {
		return fmt.Errorf("failed to load policies: %w", err)
	}
	if len(policies) > 0 {
		return nil
	}

	defaults := [][3]string{
		{"role_admin", "/api/v1/movie/*", "(GET|POST|PUT|DELETE)"},
		{"role_admin", "/admin/*", "(GET|POST|DELETE)"},
	}
	for _, p := range defaults {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy %v: %w", p, err)
		}
	}
	if err := e.SavePolicy(); err != nil {
		return fmt.Errorf("failed to persist seeded policies: %w", err)
	}

	log.Println("casbin: seeded default policies")
	return nil
}
