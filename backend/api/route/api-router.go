package route

import (
	"songbox/backend/api/handler"
	"songbox/backend/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetApiRouter(route *gin.Engine) {
	apiRouter := route.Group("/api")
	{
		apiRouter.GET("/status", handler.GetStatus)

		songRoute := apiRouter.Group("/songs")
		{
			songRoute.GET("", middleware.Accepts(gin.MIMEJSON), handler.GetAllSongs)
			songRoute.POST("", middleware.Accepts(gin.MIMEJSON), middleware.RequireContentType(gin.MIMEJSON), handler.CreateSong)
			songRoute.PUT("/:id", middleware.Accepts(gin.MIMEJSON), middleware.RequireContentType(gin.MIMEJSON), handler.UpdateSong)
			songRoute.DELETE("/:id", middleware.Accepts(gin.MIMEJSON), handler.DeleteSong)
		}

		apiRouter.POST("/files",
			middleware.Accepts(gin.MIMEJSON),
			middleware.RequireContentType("multipart/form-data"),
			handler.UploadFile)
	}
}
