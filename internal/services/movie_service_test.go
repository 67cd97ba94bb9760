package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mynkprtp/movieApi/domain"
	"github.com/mynkprtp/movieApi/internal/mocks"
)

const testBaseURL = "http://localhost:8080"

func TestMovieServiceImpl_Add(t *testing.T) {
	t.Run("successful add stores the poster and resolves its URL", func(t *testing.T) {
		movieRepo := mocks.NewMockMovieRepository()
		files := mocks.NewMockFileStore()

		var created *domain.Movie
		movieRepo.CreateFunc = func(ctx context.Context, movie *domain.Movie) error {
			movie.ID = 1
			created = movie
			return nil
		}

		svc := NewMovieService(movieRepo, files, testBaseURL)
		movie := &domain.Movie{Title: "Inception", Director: "Nolan", Studio: "WB", Cast: []string{"DiCaprio"}, ReleaseYear: 2010}
		details, err := svc.Add(context.Background(), movie, "inception.png", strings.NewReader("png-bytes"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created == nil || created.Poster != "inception.png" {
			t.Errorf("expected the stored movie to carry the poster name, got %+v", created)
		}
		if !files.Exists("inception.png") {
			t.Error("expected the poster bytes to be saved")
		}
		if details.PosterURL != testBaseURL+"/file/inception.png" {
			t.Errorf("unexpected poster URL %s", details.PosterURL)
		}
	})

	t.Run("duplicate poster file name is rejected", func(t *testing.T) {
		movieRepo := mocks.NewMockMovieRepository()
		files := mocks.NewMockFileStore()
		files.Files["inception.png"] = []byte("old")

		var created bool
		movieRepo.CreateFunc = func(ctx context.Context, movie *domain.Movie) error {
			created = true
			return nil
		}

		svc := NewMovieService(movieRepo, files, testBaseURL)
		_, err := svc.Add(context.Background(), &domain.Movie{Title: "Inception"}, "inception.png", strings.NewReader("new"))
		if !errors.Is(err, domain.ErrFileExists) {
			t.Fatalf("expected ErrFileExists, got %v", err)
		}
		if created {
			t.Error("expected no movie row on a poster clash")
		}
		if string(files.Files["inception.png"]) != "old" {
			t.Error("expected the existing poster to stay untouched")
		}
	})
}

func TestMovieServiceImpl_Get(t *testing.T) {
	movieRepo := mocks.NewMockMovieRepository()
	movieRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Movie, error) {
		if id != 5 {
			return nil, domain.ErrMovieNotFound
		}
		return &domain.Movie{ID: 5, Title: "Dune", Poster: "dune.jpg"}, nil
	}

	svc := NewMovieService(movieRepo, mocks.NewMockFileStore(), testBaseURL)

	details, err := svc.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Title != "Dune" || details.PosterURL != testBaseURL+"/file/dune.jpg" {
		t.Errorf("unexpected details %+v", details)
	}

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieServiceImpl_Update(t *testing.T) {
	t.Run("with a new file the old poster is replaced", func(t *testing.T) {
		movieRepo := mocks.NewMockMovieRepository()
		files := mocks.NewMockFileStore()
		files.Files["old.png"] = []byte("old")

		movieRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Movie, error) {
			return &domain.Movie{ID: id, Title: "Dune", Poster: "old.png"}, nil
		}
		var updated *domain.Movie
		movieRepo.UpdateFunc = func(ctx context.Context, movie *domain.Movie) error {
			updated = movie
			return nil
		}

		svc := NewMovieService(movieRepo, files, testBaseURL)
		details, err := svc.Update(context.Background(), 5, &domain.Movie{Title: "Dune Part Two"}, "new.png", strings.NewReader("new"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if files.Exists("old.png") {
			t.Error("expected the old poster to be removed")
		}
		if !files.Exists("new.png") {
			t.Error("expected the new poster to be saved")
		}
		if updated == nil || updated.ID != 5 || updated.Poster != "new.png" {
			t.Errorf("unexpected updated row %+v", updated)
		}
		if details.PosterURL != testBaseURL+"/file/new.png" {
			t.Errorf("unexpected poster URL %s", details.PosterURL)
		}
	})

	t.Run("without a file the existing poster stays", func(t *testing.T) {
		movieRepo := mocks.NewMockMovieRepository()
		files := mocks.NewMockFileStore()
		files.Files["old.png"] = []byte("old")

		movieRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Movie, error) {
			return &domain.Movie{ID: id, Title: "Dune", Poster: "old.png"}, nil
		}

		svc := NewMovieService(movieRepo, files, testBaseURL)
		details, err := svc.Update(context.Background(), 5, &domain.Movie{Title: "Dune Part Two"}, "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !files.Exists("old.png") {
			t.Error("expected the old poster to stay")
		}
		if details.Poster != "old.png" {
			t.Errorf("expected poster old.png, got %s", details.Poster)
		}
	})

	t.Run("unknown movie", func(t *testing.T) {
		svc := NewMovieService(mocks.NewMockMovieRepository(), mocks.NewMockFileStore(), testBaseURL)
		_, err := svc.Update(context.Background(), 99, &domain.Movie{Title: "X"}, "", nil)
		if !errors.Is(err, domain.ErrMovieNotFound) {
			t.Errorf("expected ErrMovieNotFound, got %v", err)
		}
	})
}

func TestMovieServiceImpl_Delete(t *testing.T) {
	movieRepo := mocks.NewMockMovieRepository()
	files := mocks.NewMockFileStore()
	files.Files["dune.jpg"] = []byte("bytes")

	movieRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Movie, error) {
		return &domain.Movie{ID: id, Title: "Dune", Poster: "dune.jpg"}, nil
	}
	var deletedID uint
	movieRepo.DeleteFunc = func(ctx context.Context, id uint) error {
		deletedID = id
		return nil
	}

	svc := NewMovieService(movieRepo, files, testBaseURL)
	if err := svc.Delete(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files.Exists("dune.jpg") {
		t.Error("expected the poster to be removed")
	}
	if deletedID != 5 {
		t.Errorf("expected row 5 to be deleted, got %d", deletedID)
	}
}

func TestMovieServiceImpl_ListPageSorted(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		size          int
		total         int64
		returned      int
		expectedPages int
		expectedLast  bool
	}{
		{name: "first of three pages", page: 0, size: 10, total: 25, returned: 10, expectedPages: 3, expectedLast: false},
		{name: "middle page", page: 1, size: 10, total: 25, returned: 10, expectedPages: 3, expectedLast: false},
		{name: "last partial page", page: 2, size: 10, total: 25, returned: 5, expectedPages: 3, expectedLast: true},
		{name: "exact fit", page: 1, size: 10, total: 20, returned: 10, expectedPages: 2, expectedLast: true},
		{name: "empty catalog", page: 0, size: 10, total: 0, returned: 0, expectedPages: 0, expectedLast: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movieRepo := mocks.NewMockMovieRepository()
			movieRepo.FindPageFunc = func(ctx context.Context, offset, limit int, sortBy, dir string) ([]*domain.Movie, int64, error) {
				if offset != tt.page*tt.size {
					t.Errorf("expected offset %d, got %d", tt.page*tt.size, offset)
				}
				if limit != tt.size {
					t.Errorf("expected limit %d, got %d", tt.size, limit)
				}
				movies := make([]*domain.Movie, tt.returned)
				for i := range movies {
					movies[i] = &domain.Movie{ID: uint(offset + i + 1), Title: "Movie"}
				}
				return movies, tt.total, nil
			}

			svc := NewMovieService(movieRepo, mocks.NewMockFileStore(), testBaseURL)
			result, err := svc.ListPageSorted(context.Background(), tt.page, tt.size, "title", "desc")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(result.Movies) != tt.returned {
				t.Errorf("expected %d movies, got %d", tt.returned, len(result.Movies))
			}
			if result.TotalElements != tt.total {
				t.Errorf("expected total %d, got %d", tt.total, result.TotalElements)
			}
			if result.TotalPages != tt.expectedPages {
				t.Errorf("expected %d pages, got %d", tt.expectedPages, result.TotalPages)
			}
			if result.Last != tt.expectedLast {
				t.Errorf("expected last=%v, got %v", tt.expectedLast, result.Last)
			}
		})
	}
}

func TestMovieServiceImpl_ListPage_NonPositiveSize(t *testing.T) {
	movieRepo := mocks.NewMockMovieRepository()
	var gotOffset, gotLimit int
	movieRepo.FindPageFunc = func(ctx context.Context, offset, limit int, sortBy, dir string) ([]*domain.Movie, int64, error) {
		gotOffset, gotLimit = offset, limit
		return nil, 0, nil
	}

	svc := NewMovieService(movieRepo, mocks.NewMockFileStore(), testBaseURL)

	// size 0 must not blow up the page math
	page, err := svc.ListPage(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOffset != 0 || gotLimit != defaultPageSize {
		t.Errorf("expected offset 0 limit %d, got %d %d", defaultPageSize, gotOffset, gotLimit)
	}
	if page.PageSize != defaultPageSize {
		t.Errorf("expected page size %d, got %d", defaultPageSize, page.PageSize)
	}

	if _, err := svc.ListPageSorted(context.Background(), -1, -5, "title", "desc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOffset != 0 || gotLimit != defaultPageSize {
		t.Errorf("expected negative inputs clamped to offset 0 limit %d, got %d %d", defaultPageSize, gotOffset, gotLimit)
	}
}

func TestMovieServiceImpl_ListPage_Defaults(t *testing.T) {
	movieRepo := mocks.NewMockMovieRepository()
	var gotSortBy, gotDir string
	movieRepo.FindPageFunc = func(ctx context.Context, offset, limit int, sortBy, dir string) ([]*domain.Movie, int64, error) {
		gotSortBy, gotDir = sortBy, dir
		return nil, 0, nil
	}

	svc := NewMovieService(movieRepo, mocks.NewMockFileStore(), testBaseURL)
	if _, err := svc.ListPage(context.Background(), 0, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSortBy != "movieId" || gotDir != "asc" {
		t.Errorf("expected default sort movieId asc, got %s %s", gotSortBy, gotDir)
	}
}
