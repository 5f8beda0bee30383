package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/resq-net/resq-api/external/mediastore"
	"github.com/resq-net/resq-api/logmodule"
	"github.com/resq-net/resq-api/store"
	"github.com/resq-net/resq-api/web"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore

	// External services
	mediaStore mediastore.MediaStore
}

// NewServer new instance of server
func NewServer(mongoClient *mongo.Client, mediaStore mediastore.MediaStore) *Server {
	return &Server{
		mongoStore: store.NewMongoStore(mongoClient, viper.GetString("mongo.database")),
		mediaStore: mediaStore,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	// phone numbers arrive as path params and may carry the escaped "N/A"
	// placeholder
	r.UseRawPath = true
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	corsConf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origin := viper.GetString("server.cors.origin"); origin != "" && origin != "*" {
		corsConf.AllowOrigins = []string{origin}
	} else {
		corsConf.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConf))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(errorNormalization())

	userRoute := apiRoute.Group("/users")
	{
		userRoute.POST("/createuser", s.createReport)
		userRoute.GET("/phone/:phoneNumber", s.reportsByPhone)
		userRoute.GET("/", s.getReport)
		userRoute.GET("/status", s.firstOpenReport)
		userRoute.GET("/all", s.allReports)
		userRoute.PUT("/updateStatus", s.updateReportStatus)
		userRoute.PUT("/update", s.updateReport)
	}

	adminRoute := apiRoute.Group("/admin")
	{
		adminRoute.GET("/all", s.allReports)
		adminRoute.PUT("/updateStatus", s.updateReportStatus)
		adminRoute.GET("/units", s.unitStatus)
		adminRoute.GET("/analytics", s.analytics)
		adminRoute.DELETE("/report/:id", s.deleteReport)
	}

	r.GET("/healthz", s.healthz)

	// The frontend is a single-page bundle; /admin serves the same page
	// and the client mounts the matching view.
	r.GET("/", s.frontendIndex)
	r.GET("/admin", s.frontendIndex)
	r.GET("/style.css", s.frontendAsset)
	r.GET("/app.js", s.frontendAsset)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	if err := s.mongoStore.Ping(); err != nil {
		log.Error(err)
		c.JSON(http.StatusInternalServerError, Response{
			Success:    false,
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal Server Error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) frontendIndex(c *gin.Context) {
	// http.FileServer redirects bare index.html requests, so the page is
	// written out directly
	page, err := web.Assets.ReadFile("index.html")
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) frontendAsset(c *gin.Context) {
	c.FileFromFS(c.Request.URL.Path, http.FS(web.Assets))
}
