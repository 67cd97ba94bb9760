package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/mynkprtp/movieApi/domain"
)

// PasswordResetServiceImpl implements domain.PasswordResetService.
// The flow is Requested -> Verified -> Reset, scoped per (user, challenge).
type PasswordResetServiceImpl struct {
	userRepo    domain.UserRepository
	otpRepo     domain.OTPChallengeRepository
	ticketStore domain.ResetTicketStore
	passwordSvc domain.PasswordService
	mailSvc     domain.MailService
	otpTTL      time.Duration
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo domain.UserRepository,
	otpRepo domain.OTPChallengeRepository,
	ticketStore domain.ResetTicketStore,
	passwordSvc domain.PasswordService,
	mailSvc domain.MailService,
	otpTTL time.Duration,
) domain.PasswordResetService {
	return &PasswordResetServiceImpl{
		userRepo:    userRepo,
		otpRepo:     otpRepo,
		ticketStore: ticketStore,
		passwordSvc: passwordSvc,
		mailSvc:     mailSvc,
		otpTTL:      otpTTL,
	}
}

// RequestReset implements domain.PasswordResetService. The challenge is
// persisted before the mail goes out: a transport failure surfaces to the
// caller but never rolls the challenge back.
func (s *PasswordResetServiceImpl) RequestReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUnknownAccount
	}

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp code: %w", err)
	}

	challenge := &domain.OTPChallenge{
		Code:      code,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.otpTTL),
	}
	if err := s.otpRepo.Create(ctx, challenge); err != nil {
		return fmt.Errorf("failed to store otp challenge: %w", err)
	}

	body := fmt.Sprintf("This is the OTP for your forgot password request %d", code)
	if err := s.mailSvc.Send(email, "OTP for Forgot Password request", body); err != nil {
		return fmt.Errorf("failed to send otp mail: %w", err)
	}

	log.Printf("OTP_REQUESTED: user_id=%d email=%s expires_at=%s", user.ID, email, challenge.ExpiresAt.UTC().Format(time.RFC3339))
	return nil
}

// VerifyOTP implements domain.PasswordResetService. An expired challenge is
// deleted at verification time, so replaying the same code afterwards finds
// nothing. A valid challenge is left in place until it expires; the returned
// ticket is what authorizes the password change.
func (s *PasswordResetServiceImpl) VerifyOTP(ctx context.Context, email string, code int) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.ErrUnknownAccount
	}

	challenge, err := s.otpRepo.FindByCodeAndUser(ctx, code, user.ID)
	if err != nil {
		return "", err
	}

	if challenge.ExpiresAt.Before(time.Now()) {
		if err := s.otpRepo.Delete(ctx, challenge.ID); err != nil {
			return "", fmt.Errorf("failed to delete expired otp challenge: %w", err)
		}
		return "", domain.ErrChallengeExpired
	}

	ticket, err := s.ticketStore.Issue(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to issue reset ticket: %w", err)
	}

	log.Printf("OTP_VERIFIED: user_id=%d email=%s", user.ID, email)
	return ticket, nil
}

// ChangePassword implements domain.PasswordResetService. The ticket issued
// by VerifyOTP is required and consumed here.
func (s *PasswordResetServiceImpl) ChangePassword(ctx context.Context, email, ticket, password, repeat string) error {
	if password != repeat {
		return domain.ErrPasswordMismatch
	}

	if err := s.ticketStore.Consume(ctx, email, ticket); err != nil {
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, email, hashedPassword); err != nil {
		return err
	}

	log.Printf("PASSWORD_RESET: email=%s", email)
	return nil
}

// generateOTPCode draws a code uniformly from [100000, 999999)
func generateOTPCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(899999))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 100000, nil
}
