package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/metrics"
	"github.com/mamadbah2/dairyfarm/internal/server/handlers"
)

const requestIDHeader = "X-Request-ID"

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Users         *handlers.UserHandler
	Cattle        *handlers.CattleHandler
	Milk          *handlers.MilkHandler
	Expenses      *handlers.ExpenseHandler
	Notifications *handlers.NotificationHandler
}

// New wires the Gin engine with required routes and middlewares. m may be nil,
// in which case /metrics is not mounted.
func New(h Handlers, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(metricsMiddleware(m))

	r.POST("/signup", h.Users.Signup)
	r.POST("/login", h.Users.Login)

	r.GET("/cattles", h.Cattle.List)
	r.POST("/cattle", h.Cattle.Register)

	r.GET("/timeOfDayOptions", h.Milk.TimeOfDayOptions)
	r.GET("/usageOptions", h.Milk.UsageOptions)
	r.POST("/recordMilkProduction", h.Milk.RecordProduction)
	r.POST("/recordMilkUsage", h.Milk.RecordUsage)
	r.GET("/generateMilkStatements", h.Milk.GenerateStatements)

	r.POST("/expenses", h.Expenses.Create)
	r.GET("/expenses", h.Expenses.List)

	r.GET("/notifications", h.Notifications.List)
	r.POST("/notifications", h.Notifications.Create)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	logger.Info("router initialized")
	return r
}

// WithCORS wraps the engine so browser clients from origins may call the API.
// A "*" entry allows every origin.
func WithCORS(next http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(next)
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
