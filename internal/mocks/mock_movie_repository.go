package mocks

import (
	"context"

	"github.com/mynkprtp/movieApi/domain"
)

// MockMovieRepository implements domain.MovieRepository for testing
type MockMovieRepository struct {
	CreateFunc   func(ctx context.Context, movie *domain.Movie) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Movie, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Movie, error)
	FindPageFunc func(ctx context.Context, offset, limit int, sortBy, dir string) ([]*domain.Movie, int64, error)
	UpdateFunc   func(ctx context.Context, movie *domain.Movie) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

// NewMockMovieRepository creates a new MockMovieRepository with default behaviors
func NewMockMovieRepository() *MockMovieRepository {
	return &MockMovieRepository{}
}

// Create stores a movie
func (m *MockMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, movie)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a movie by ID
func (m *MockMovieRepository) FindByID(ctx context.Context, id uint) (*domain.Movie, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrMovieNotFound
}

// FindAll lists all movies
func (m *MockMovieRepository) FindAll(ctx context.Context) ([]*domain.Movie, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	// Default behavior: empty catalog
	return nil, nil
}

// FindPage lists one page of movies
func (m *MockMovieRepository) FindPage(ctx context.Context, offset, limit int, sortBy, dir string) ([]*domain.Movie, int64, error) {
	if m.FindPageFunc != nil {
		return m.FindPageFunc(ctx, offset, limit, sortBy, dir)
	}
	// Default behavior: empty catalog
	return nil, 0, nil
}

// Update replaces a movie record
func (m *MockMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, movie)
	}
	// Default behavior: success
	return nil
}

// Delete removes a movie record
func (m *MockMovieRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}
