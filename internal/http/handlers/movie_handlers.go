package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mynkprtp/movieApi/domain"
)

// Pagination defaults
const (
	defaultPageNumber = 0
	defaultPageSize   = 10
	defaultSortBy     = "movieId"
	defaultSortDir    = "asc"
)

// MovieHandlers handles catalog HTTP requests
type MovieHandlers struct {
	movieSvc domain.MovieService
}

// NewMovieHandlers creates new movie handlers
func NewMovieHandlers(movieSvc domain.MovieService) *MovieHandlers {
	return &MovieHandlers{movieSvc: movieSvc}
}

// MovieRequest is the JSON part of the multipart add/update payload
type MovieRequest struct {
	Title       string   `json:"title" binding:"required"`
	Director    string   `json:"director" binding:"required"`
	Studio      string   `json:"studio" binding:"required"`
	MovieCast   []string `json:"movieCast"`
	ReleaseYear int      `json:"releaseYear" binding:"required"`
}

// MovieResponse mirrors the stored record plus the resolved poster URL
type MovieResponse struct {
	MovieID     uint     `json:"movieId"`
	Title       string   `json:"title"`
	Director    string   `json:"director"`
	Studio      string   `json:"studio"`
	MovieCast   []string `json:"movieCast"`
	ReleaseYear int      `json:"releaseYear"`
	Poster      string   `json:"poster"`
	PosterURL   string   `json:"posterUrl"`
}

// MoviePageResponse is one page of the catalog listing
type MoviePageResponse struct {
	Movies        []MovieResponse `json:"movies"`
	PageNumber    int             `json:"pageNumber"`
	PageSize      int             `json:"pageSize"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	Last          bool            `json:"isLast"`
}

// Add handles POST /api/v1/movie/add-movie (multipart: file + movieDto)
func (h *MovieHandlers) Add(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Poster file is required"})
		return
	}
	if file.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is empty!! Please send another file"})
		return
	}

	movie, ok := h.bindMoviePart(c)
	if !ok {
		return
	}

	data, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer data.Close()

	details, err := h.movieSvc.Add(c.Request.Context(), movie, file.Filename, data)
	if err != nil {
		if err == domain.ErrFileExists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File already exists!! Please enter unique filename"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add movie"})
		return
	}

	c.JSON(http.StatusCreated, toMovieResponse(details))
}

// Get handles GET /api/v1/movie/:movieId
func (h *MovieHandlers) Get(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	details, err := h.movieSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.movieError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, toMovieResponse(details))
}

// List handles GET /api/v1/movie/all
func (h *MovieHandlers) List(c *gin.Context) {
	list, err := h.movieSvc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movies"})
		return
	}

	responses := make([]MovieResponse, 0, len(list))
	for i := range list {
		responses = append(responses, toMovieResponse(&list[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// Update handles PUT /api/v1/movie/update/:movieId. The file part is
// optional; without it the existing poster is kept.
func (h *MovieHandlers) Update(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	movie, ok := h.bindMoviePart(c)
	if !ok {
		return
	}

	var (
		fileName string
		data     io.Reader
	)
	if file, err := c.FormFile("file"); err == nil && file.Size > 0 {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		defer f.Close()
		fileName, data = file.Filename, f
	}

	details, err := h.movieSvc.Update(c.Request.Context(), id, movie, fileName, data)
	if err != nil {
		h.movieError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, toMovieResponse(details))
}

// Delete handles DELETE /api/v1/movie/delete/:movieId
func (h *MovieHandlers) Delete(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	if err := h.movieSvc.Delete(c.Request.Context(), id); err != nil {
		h.movieError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Movie with movieId %d deleted", id)})
}

// ListPage handles GET /api/v1/movie/allMoviesPage
func (h *MovieHandlers) ListPage(c *gin.Context) {
	page := intQuery(c, "pageNumber", defaultPageNumber)
	size := intQuery(c, "pageSize", defaultPageSize)

	result, err := h.movieSvc.ListPage(c.Request.Context(), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movies"})
		return
	}

	c.JSON(http.StatusOK, toMoviePageResponse(result))
}

// ListPageSorted handles GET /api/v1/movie/allMoviesPageSort
func (h *MovieHandlers) ListPageSorted(c *gin.Context) {
	page := intQuery(c, "pageNumber", defaultPageNumber)
	size := intQuery(c, "pageSize", defaultPageSize)
	sortBy := c.DefaultQuery("sortBy", defaultSortBy)
	dir := c.DefaultQuery("dir", defaultSortDir)

	result, err := h.movieSvc.ListPageSorted(c.Request.Context(), page, size, sortBy, dir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movies"})
		return
	}

	c.JSON(http.StatusOK, toMoviePageResponse(result))
}

// bindMoviePart decodes the movieDto form field
func (h *MovieHandlers) bindMoviePart(c *gin.Context) (*domain.Movie, bool) {
	raw := c.PostForm("movieDto")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "movieDto part is required"})
		return nil, false
	}

	var req MovieRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movieDto JSON"})
		return nil, false
	}
	if req.Title == "" || req.Director == "" || req.Studio == "" || req.ReleaseYear == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, director, studio and releaseYear are required"})
		return nil, false
	}

	return &domain.Movie{
		Title:       req.Title,
		Director:    req.Director,
		Studio:      req.Studio,
		Cast:        req.MovieCast,
		ReleaseYear: req.ReleaseYear,
	}, true
}

func (h *MovieHandlers) movieID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("movieId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *MovieHandlers) movieError(c *gin.Context, id uint, err error) {
	if err == domain.ErrMovieNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Movie not found with id %d", id)})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Movie operation failed"})
}

func toMovieResponse(d *domain.MovieDetails) MovieResponse {
	return MovieResponse{
		MovieID:     d.ID,
		Title:       d.Title,
		Director:    d.Director,
		Studio:      d.Studio,
		MovieCast:   d.Cast,
		ReleaseYear: d.ReleaseYear,
		Poster:      d.Poster,
		PosterURL:   d.PosterURL,
	}
}

func toMoviePageResponse(p *domain.MoviePage) MoviePageResponse {
	movies := make([]MovieResponse, 0, len(p.Movies))
	for i := range p.Movies {
		movies = append(movies, toMovieResponse(&p.Movies[i]))
	}
	return MoviePageResponse{
		Movies:        movies,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Last:          p.Last,
	}
}

func intQuery(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil || v < 0 {
		return def
	}
	return v
}
