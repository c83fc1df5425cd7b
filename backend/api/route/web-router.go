package route

import (
	"embed"
	"net/http"
	"strings"

	"songbox/backend/api/handler"
	"songbox/backend/common"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

func setWebRouter(route *gin.Engine, buildFS embed.FS, indexPage []byte) {
	route.GET("/uploads/:filename", handler.ServeUpload)
	route.Use(static.Serve("/", common.EmbedFolder(buildFS, "web")))
	route.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/uploads/") {
			common.RespMessage(c, http.StatusNotFound, "Route not found")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
	})
}
