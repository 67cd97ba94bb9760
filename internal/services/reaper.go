package services

import (
	"context"
	"log"
	"time"

	"github.com/mynkprtp/movieApi/domain"
)

// Reaper periodically removes expired refresh tokens and OTP challenges.
// Expiry is still enforced lazily on the request path; the sweep is storage
// hygiene only and never changes a verification outcome.
type Reaper struct {
	tokenRepo domain.RefreshTokenRepository
	otpRepo   domain.OTPChallengeRepository
	interval  time.Duration
}

// NewReaper creates a new reaper
func NewReaper(tokenRepo domain.RefreshTokenRepository, otpRepo domain.OTPChallengeRepository, interval time.Duration) *Reaper {
	return &Reaper{
		tokenRepo: tokenRepo,
		otpRepo:   otpRepo,
		interval:  interval,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reaper) sweep(ctx context.Context) {
	if err := r.tokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("REAPER_TOKENS_FAILED: error=%v", err)
	}
	if err := r.otpRepo.DeleteExpired(ctx); err != nil {
		log.Printf("REAPER_OTP_FAILED: error=%v", err)
	}
}
