package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/mynkprtp/movieApi/internal/http/handlers"
	"github.com/mynkprtp/movieApi/internal/http/middleware"
)

// BuildRouter wires the HTTP surface. Catalog reads and the whole auth /
// forgot-password flow are public; catalog mutations and policy management
// require a JWT plus a casbin-approved role.
func BuildRouter(
	ah *handlers.AuthHandlers,
	fh *handlers.ForgotPasswordHandlers,
	mh *handlers.MovieHandlers,
	flh *handlers.FileHandlers,
	ph *handlers.PolicyHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/v1/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/refresh", ah.Refresh)

	fp := r.Group("/forgotPassword")
	fp.POST("/verifyMail/:email", fh.VerifyMail)
	fp.POST("/verifyOtp/:otp/:email", fh.VerifyOtp)
	fp.POST("/changePassword/:email", fh.ChangePassword)

	movie := r.Group("/api/v1/movie")
	movie.GET("/all", mh.List)
	movie.GET("/allMoviesPage", mh.ListPage)
	movie.GET("/allMoviesPageSort", mh.ListPageSorted)
	movie.GET("/:movieId", mh.Get)

	guarded := r.Group("/api/v1/movie").Use(jwtmw.WithJWT(), cb.Enforce())
	guarded.POST("/add-movie", mh.Add)
	guarded.PUT("/update/:movieId", mh.Update)
	guarded.DELETE("/delete/:movieId", mh.Delete)

	r.GET("/file/:fileName", flh.Get)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
