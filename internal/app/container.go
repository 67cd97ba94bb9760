package app

import (
	"gorm.io/gorm"

	"github.com/mynkprtp/movieApi/domain"
	"github.com/mynkprtp/movieApi/internal/config"
	"github.com/mynkprtp/movieApi/internal/infrastructure/auth"
	"github.com/mynkprtp/movieApi/internal/infrastructure/database"
	"github.com/mynkprtp/movieApi/internal/infrastructure/notifications"
	"github.com/mynkprtp/movieApi/internal/infrastructure/repositories"
	"github.com/mynkprtp/movieApi/internal/infrastructure/storage"
	"github.com/mynkprtp/movieApi/internal/services"
)

// Container holds all dependencies. Everything is constructed once here and
// passed by reference; no package-level singletons.
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *database.RedisClient

	// Repositories
	UserRepo    domain.UserRepository
	TokenRepo   domain.RefreshTokenRepository
	OTPRepo     domain.OTPChallengeRepository
	TicketStore domain.ResetTicketStore
	MovieRepo   domain.MovieRepository

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	MailSvc     domain.MailService
	FileStore   domain.FileStore
	AuthSvc     domain.AuthService
	ResetSvc    domain.PasswordResetService
	MovieSvc    domain.MovieService
	Reaper      *services.Reaper
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()

	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.TokenRepo = repositories.NewRefreshTokenRepository(c.DB)
	c.OTPRepo = repositories.NewOTPChallengeRepository(c.DB)
	c.TicketStore = repositories.NewResetTicketStore(c.RedisClient.Client, c.Config.ResetTicketTTL)
	c.MovieRepo = repositories.NewMovieRepository(c.DB)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AccessTTL)
	c.MailSvc = notifications.NewSMTPService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)

	files, err := storage.NewLocalFileStore(c.Config.PosterDir)
	if err != nil {
		return err
	}
	c.FileStore = files

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.TokenRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.ResetSvc = services.NewPasswordResetService(
		c.UserRepo,
		c.OTPRepo,
		c.TicketStore,
		c.PasswordSvc,
		c.MailSvc,
		c.Config.OTPTTL,
	)
	c.MovieSvc = services.NewMovieService(c.MovieRepo, c.FileStore, c.Config.BaseURL)
	c.Reaper = services.NewReaper(c.TokenRepo, c.OTPRepo, c.Config.ReaperInterval)

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
