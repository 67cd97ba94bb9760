package mocks

import (
	"context"
	"io"

	"github.com/mynkprtp/movieApi/domain"
)

// MockMovieService implements domain.MovieService for testing
type MockMovieService struct {
	AddFunc            func(ctx context.Context, movie *domain.Movie, fileName string, data io.Reader) (*domain.MovieDetails, error)
	GetFunc            func(ctx context.Context, id uint) (*domain.MovieDetails, error)
	ListFunc           func(ctx context.Context) ([]domain.MovieDetails, error)
	UpdateFunc         func(ctx context.Context, id uint, movie *domain.Movie, fileName string, data io.Reader) (*domain.MovieDetails, error)
	DeleteFunc         func(ctx context.Context, id uint) error
	ListPageFunc       func(ctx context.Context, page, size int) (*domain.MoviePage, error)
	ListPageSortedFunc func(ctx context.Context, page, size int, sortBy, dir string) (*domain.MoviePage, error)
}

// NewMockMovieService creates a new MockMovieService with default behaviors
func NewMockMovieService() *MockMovieService {
	return &MockMovieService{}
}

// Add stores a new movie with its poster
func (m *MockMovieService) Add(ctx context.Context, movie *domain.Movie, fileName string, data io.Reader) (*domain.MovieDetails, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, movie, fileName, data)
	}
	// Default behavior: echo the movie back
	movie.Poster = fileName
	return &domain.MovieDetails{Movie: *movie, PosterURL: "http://localhost:8080/file/" + fileName}, nil
}

// Get fetches one movie
func (m *MockMovieService) Get(ctx context.Context, id uint) (*domain.MovieDetails, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrMovieNotFound
}

// List returns the whole catalog
func (m *MockMovieService) List(ctx context.Context) ([]domain.MovieDetails, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty catalog
	return nil, nil
}

// Update replaces a movie and optionally its poster
func (m *MockMovieService) Update(ctx context.Context, id uint, movie *domain.Movie, fileName string, data io.Reader) (*domain.MovieDetails, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, movie, fileName, data)
	}
	// Default behavior: echo the movie back
	movie.ID = id
	return &domain.MovieDetails{Movie: *movie}, nil
}

// Delete removes a movie and its poster
func (m *MockMovieService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// ListPage returns one page in default order
func (m *MockMovieService) ListPage(ctx context.Context, page, size int) (*domain.MoviePage, error) {
	if m.ListPageFunc != nil {
		return m.ListPageFunc(ctx, page, size)
	}
	// Default behavior: empty page
	return &domain.MoviePage{PageNumber: page, PageSize: size, Last: true}, nil
}

// ListPageSorted returns one page in the requested order
func (m *MockMovieService) ListPageSorted(ctx context.Context, page, size int, sortBy, dir string) (*domain.MoviePage, error) {
	if m.ListPageSortedFunc != nil {
		return m.ListPageSortedFunc(ctx, page, size, sortBy, dir)
	}
	// Default behavior: empty page
	return &domain.MoviePage{PageNumber: page, PageSize: size, Last: true}, nil
}
