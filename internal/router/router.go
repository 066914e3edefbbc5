package router

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/config"
	"github.com/Inphy521/Home-Economics/internal/handlers"
	"github.com/Inphy521/Home-Economics/internal/models"
	"github.com/Inphy521/Home-Economics/internal/repository"
	"github.com/Inphy521/Home-Economics/internal/services"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitExceeded(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "上傳太頻繁，請稍後再試。"})
}

// Setup wires the middleware stack and the questionnaire API routes.
func Setup(log *zap.Logger, store *repository.Store, uploader *services.Uploader, points []models.PressurePoint) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	cookieStore := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 30, // The follow-up comes two weeks later.
	})
	router.Use(sessions.Sessions("skinsession", cookieStore))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.Conf.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(CSRFProtection())
	router.Use(SessionLoader(store))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		c.Next()
	})

	router.Static("/assets", "./assets")

	// Handlers
	sessionHandler := handlers.NewSessionHandler(log, store)
	wizardHandler := handlers.NewWizardHandler(log, points)
	quizHandler := handlers.NewQuizHandler(log)
	submitHandler := handlers.NewSubmitHandler(log, uploader)
	exportHandler := handlers.NewExportHandler(log)

	// The spreadsheet backend is slow and shared; keep re-clicks in check.
	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitExceeded,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")
	{
		api.GET("/session", sessionHandler.State)
		api.DELETE("/session", sessionHandler.Reset)
		api.GET("/session/previous-report", sessionHandler.PreviousReport)

		api.POST("/wizard/next", wizardHandler.Next)
		api.POST("/wizard/prev", wizardHandler.Prev)
		api.GET("/results", wizardHandler.Results)
		api.GET("/results/chart", wizardHandler.ResultsChart)
		api.GET("/pressure-points", wizardHandler.PressurePoints)

		api.GET("/quiz", quizHandler.Board)
		api.POST("/quiz/select", quizHandler.Select)

		api.POST("/submit/initial", limiter, submitHandler.Initial)
		api.POST("/submit/final", limiter, submitHandler.Final)
		api.GET("/submit/status", submitHandler.Status)

		api.GET("/export/json", exportHandler.JSON)
		api.GET("/export/report", exportHandler.Report)
		api.POST("/import", exportHandler.Import)
	}

	return router
}
