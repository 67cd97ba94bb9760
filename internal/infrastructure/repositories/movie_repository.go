package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mynkprtp/movieApi/domain"
)

// MovieRepositoryImpl implements domain.MovieRepository using GORM
type MovieRepositoryImpl struct {
	db *gorm.DB
}

// DBMovie represents the database model for Movie
type DBMovie struct {
	ID          uint     `gorm:"primaryKey"`
	Title       string   `gorm:"size:200;not null"`
	Director    string   `gorm:"not null"`
	Studio      string   `gorm:"not null"`
	Cast        []string `gorm:"serializer:json"`
	ReleaseYear int      `gorm:"not null"`
	Poster      string   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBMovie) TableName() string {
	return "movies"
}

// sortColumns whitelists the columns a client may sort by. Anything else
// falls back to the primary key.
var sortColumns = map[string]string{
	"movieId":     "id",
	"title":       "title",
	"director":    "director",
	"studio":      "studio",
	"releaseYear": "release_year",
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) domain.MovieRepository {
	return &MovieRepositoryImpl{db: db}
}

// Create implements domain.MovieRepository
func (r *MovieRepositoryImpl) Create(ctx context.Context, movie *domain.Movie) error {
	dbMovie := r.domainToDB(movie)
	if err := r.db.WithContext(ctx).Create(dbMovie).Error; err != nil {
		return err
	}
	movie.ID = dbMovie.ID
	return nil
}

// FindByID implements domain.MovieRepository
func (r *MovieRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Movie, error) {
	var dbMovie DBMovie
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbMovie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbMovie), nil
}

// FindAll implements domain.MovieRepository
func (r *MovieRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Movie, error) {
	var dbMovies []DBMovie
	if err := r.db.WithContext(ctx).Find(&dbMovies).Error; err != nil {
		return nil, err
	}
	movies := make([]*domain.Movie, 0, len(dbMovies))
	for i := range dbMovies {
		movies = append(movies, r.dbToDomain(&dbMovies[i]))
	}
	return movies, nil
}

// FindPage implements domain.MovieRepository. Returns one page of movies
// plus the total row count.
func (r *MovieRepositoryImpl) FindPage(ctx context.Context, offset, limit int, sortBy, dir string) ([]*domain.Movie, int64, error) {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "id"
	}
	order := "asc"
	if dir == "desc" {
		order = "desc"
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&DBMovie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbMovies []DBMovie
	err := r.db.WithContext(ctx).
		Order(fmt.Sprintf("%s %s", column, order)).
		Offset(offset).
		Limit(limit).
		Find(&dbMovies).Error
	if err != nil {
		return nil, 0, err
	}

	movies := make([]*domain.Movie, 0, len(dbMovies))
	for i := range dbMovies {
		movies = append(movies, r.dbToDomain(&dbMovies[i]))
	}
	return movies, total, nil
}

// Update implements domain.MovieRepository
func (r *MovieRepositoryImpl) Update(ctx context.Context, movie *domain.Movie) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(movie)).Error
}

// Delete implements domain.MovieRepository
func (r *MovieRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBMovie{}, id).Error
}

// domainToDB converts domain movie to database movie
func (r *MovieRepositoryImpl) domainToDB(movie *domain.Movie) *DBMovie {
	return &DBMovie{
		ID:          movie.ID,
		Title:       movie.Title,
		Director:    movie.Director,
		Studio:      movie.Studio,
		Cast:        movie.Cast,
		ReleaseYear: movie.ReleaseYear,
		Poster:      movie.Poster,
	}
}

// dbToDomain converts database movie to domain movie
func (r *MovieRepositoryImpl) dbToDomain(dbMovie *DBMovie) *domain.Movie {
	return &domain.Movie{
		ID:          dbMovie.ID,
		Title:       dbMovie.Title,
		Director:    dbMovie.Director,
		Studio:      dbMovie.Studio,
		Cast:        dbMovie.Cast,
		ReleaseYear: dbMovie.ReleaseYear,
		Poster:      dbMovie.Poster,
	}
}
