package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mud-ali/DIHacks2025/prayer"
	"github.com/mud-ali/DIHacks2025/store"
)

// Server is the HTTP surface of the masjid directory.
type Server struct {
	server *http.Server
	router *gin.Engine

	mongoStore    store.MongoStore
	prayerFetcher *prayer.Fetcher

	jwtSecret []byte
	traceMode bool
}

func NewServer(mongoStore store.MongoStore, prayerFetcher *prayer.Fetcher, jwtSecret string, traceMode bool) *Server {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	s := &Server{
		router:        r,
		mongoStore:    mongoStore,
		prayerFetcher: prayerFetcher,
		jwtSecret:     []byte(jwtSecret),
		traceMode:     traceMode,
	}

	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	r := s.router
	r.Use(s.DumpRequest)

	r.GET("/", s.healthCheck)
	r.GET("/calculationmethods", s.listCalculationMethods)
	r.GET("/services", s.listServices)

	r.POST("/masjid", s.authTokenRequired(), s.createMasjid)
	r.GET("/masjid", s.listMasjid)
	r.GET("/masjid/:masjidID", s.getMasjid)
	r.PUT("/masjid/:masjidID", s.authTokenRequired(), s.updateMasjid)
	r.POST("/masjid/distances", s.rankMasjidDistances)

	r.POST("/auth/signup", s.signup)
	r.POST("/auth/login", s.login)
	r.GET("/auth/verify", s.authTokenRequired(), s.verify)

	r.POST("/event", s.authTokenRequired(), s.createEvent)
	r.GET("/event", s.listEvents)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "Status: up")
}

// Run blocks serving HTTP until the server is shut down.
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
