package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mynkprtp/movieApi/domain"
)

// OTPChallengeRepositoryImpl implements domain.OTPChallengeRepository using GORM
type OTPChallengeRepositoryImpl struct {
	db *gorm.DB
}

// DBOTPChallenge represents the database model for OTPChallenge. A user may
// have several outstanding challenges; a new request never invalidates
// earlier ones.
type DBOTPChallenge struct {
	ID        uint      `gorm:"primaryKey"`
	Code      int       `gorm:"index"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBOTPChallenge) TableName() string {
	return "otp_challenges"
}

// NewOTPChallengeRepository creates a new OTP challenge repository
func NewOTPChallengeRepository(db *gorm.DB) domain.OTPChallengeRepository {
	return &OTPChallengeRepositoryImpl{db: db}
}

// Create implements domain.OTPChallengeRepository
func (r *OTPChallengeRepositoryImpl) Create(ctx context.Context, challenge *domain.OTPChallenge) error {
	dbChallenge := &DBOTPChallenge{
		Code:      challenge.Code,
		UserID:    challenge.UserID,
		ExpiresAt: challenge.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(dbChallenge).Error; err != nil {
		return err
	}
	challenge.ID = dbChallenge.ID
	return nil
}

// FindByCodeAndUser implements domain.OTPChallengeRepository. Lookup is by
// exact (code, user) equality only.
func (r *OTPChallengeRepositoryImpl) FindByCodeAndUser(ctx context.Context, code int, userID uint) (*domain.OTPChallenge, error) {
	var dbChallenge DBOTPChallenge
	err := r.db.WithContext(ctx).Where("code = ? AND user_id = ?", code, userID).First(&dbChallenge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownChallenge
		}
		return nil, err
	}
	return &domain.OTPChallenge{
		ID:        dbChallenge.ID,
		Code:      dbChallenge.Code,
		UserID:    dbChallenge.UserID,
		ExpiresAt: dbChallenge.ExpiresAt,
	}, nil
}

// Delete implements domain.OTPChallengeRepository
func (r *OTPChallengeRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBOTPChallenge{}, id).Error
}

// DeleteExpired implements domain.OTPChallengeRepository
func (r *OTPChallengeRepositoryImpl) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&DBOTPChallenge{}).Error
}
