package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/codewave/webhost/docs"
	"github.com/codewave/webhost/internal/config"
	"github.com/codewave/webhost/internal/middleware"
	"github.com/codewave/webhost/internal/modules/handler"
	"github.com/codewave/webhost/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config         *config.Config
	Log            *zap.Logger
	UploadHandler  *handler.UploadHandler
	ProjectHandler *handler.ProjectHandler
	FileHandler    *handler.FileHandler
	SiteHandler    *handler.SiteHandler
	VerifyHandler  *handler.VerifyHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(d.Log))
	// multipart parts beyond this spill to temp files
	r.MaxMultipartMemory = 32 << 20
	r.SetHTMLTemplate(handler.Pages())

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.OK("ok")) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/upload", d.UploadHandler.Upload)
	r.POST("/verify-recaptcha", d.VerifyHandler.VerifyCaptcha)

	api := r.Group("/api")
	{
		api.POST("/upload", d.UploadHandler.UploadJSON)

		projects := api.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", d.ProjectHandler.UpsertProject)
			projects.DELETE("/:name", d.ProjectHandler.DeleteProject)
		}

		project := api.Group("/project/:name")
		{
			project.GET("/files", d.ProjectHandler.ListFiles)
			project.GET("/file/:filename", d.FileHandler.GetFile)
			project.PUT("/file/:filename", d.FileHandler.PutFile)
		}

		fork := api.Group("/fork")
		{
			fork.GET("", d.VerifyHandler.CheckFork)
			fork.POST("", d.VerifyHandler.CreateFork)
		}
	}

	// everything else is a hosted site
	r.GET("/", d.SiteHandler.Landing)
	r.NoRoute(d.SiteHandler.Serve)

	return r
}
