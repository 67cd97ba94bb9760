package services

import (
	"context"
	"fmt"
	"io"

	"github.com/mynkprtp/movieApi/domain"
)

// defaultPageSize is the fallback when a caller asks for a non-positive page
const defaultPageSize = 10

// MovieServiceImpl implements domain.MovieService
type MovieServiceImpl struct {
	movieRepo domain.MovieRepository
	files     domain.FileStore
	baseURL   string
}

// NewMovieService creates a new movie service
func NewMovieService(movieRepo domain.MovieRepository, files domain.FileStore, baseURL string) domain.MovieService {
	return &MovieServiceImpl{
		movieRepo: movieRepo,
		files:     files,
		baseURL:   baseURL,
	}
}

// Add implements domain.MovieService. The poster file name must be unique in
// the store; a clash is rejected rather than overwritten.
func (s *MovieServiceImpl) Add(ctx context.Context, movie *domain.Movie, fileName string, data io.Reader) (*domain.MovieDetails, error) {
	if s.files.Exists(fileName) {
		return nil, domain.ErrFileExists
	}

	stored, err := s.files.Save(fileName, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store poster: %w", err)
	}
	movie.Poster = stored

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	return s.details(movie), nil
}

// Get implements domain.MovieService
func (s *MovieServiceImpl) Get(ctx context.Context, id uint) (*domain.MovieDetails, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.details(movie), nil
}

// List implements domain.MovieService
func (s *MovieServiceImpl) List(ctx context.Context) ([]domain.MovieDetails, error) {
	movies, err := s.movieRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.detailsList(movies), nil
}

// Update implements domain.MovieService. When a replacement file is supplied
// the old poster is removed first; with no file the existing poster stays.
func (s *MovieServiceImpl) Update(ctx context.Context, id uint, movie *domain.Movie, fileName string, data io.Reader) (*domain.MovieDetails, error) {
	existing, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	poster := existing.Poster
	if data != nil && fileName != "" {
		if err := s.files.Remove(poster); err != nil {
			return nil, fmt.Errorf("failed to remove old poster: %w", err)
		}
		poster, err = s.files.Save(fileName, data)
		if err != nil {
			return nil, fmt.Errorf("failed to store poster: %w", err)
		}
	}

	movie.ID = existing.ID
	movie.Poster = poster
	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	return s.details(movie), nil
}

// Delete implements domain.MovieService. The poster file goes first; a
// missing file does not block deleting the record.
func (s *MovieServiceImpl) Delete(ctx context.Context, id uint) error {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.files.Remove(movie.Poster); err != nil {
		return fmt.Errorf("failed to remove poster: %w", err)
	}

	return s.movieRepo.Delete(ctx, id)
}

// ListPage implements domain.MovieService
func (s *MovieServiceImpl) ListPage(ctx context.Context, page, size int) (*domain.MoviePage, error) {
	return s.ListPageSorted(ctx, page, size, "movieId", "asc")
}

// ListPageSorted implements domain.MovieService. A non-positive size would
// divide the page math by zero, so it falls back to the default.
func (s *MovieServiceImpl) ListPageSorted(ctx context.Context, page, size int, sortBy, dir string) (*domain.MoviePage, error) {
	if size <= 0 {
		size = defaultPageSize
	}
	if page < 0 {
		page = 0
	}

	movies, total, err := s.movieRepo.FindPage(ctx, page*size, size, sortBy, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return &domain.MoviePage{
		Movies:        s.detailsList(movies),
		PageNumber:    page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          page >= totalPages-1,
	}, nil
}

// details resolves the public poster URL for a movie
func (s *MovieServiceImpl) details(movie *domain.Movie) *domain.MovieDetails {
	return &domain.MovieDetails{
		Movie:     *movie,
		PosterURL: s.baseURL + "/file/" + movie.Poster,
	}
}

func (s *MovieServiceImpl) detailsList(movies []*domain.Movie) []domain.MovieDetails {
	list := make([]domain.MovieDetails, 0, len(movies))
	for _, m := range movies {
		list = append(list, *s.details(m))
	}
	return list
}
