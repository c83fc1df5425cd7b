package main

import (
	"embed"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"songbox/backend/api/handler"
	"songbox/backend/api/middleware"
	"songbox/backend/api/route"
	"songbox/backend/common"
	"songbox/backend/model"

	"github.com/gin-gonic/gin"
)

//go:embed web
var buildFS embed.FS

//go:embed web/index.html
var indexPage []byte

func main() {
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelpFlag {
		common.PrintHelp()
		os.Exit(0)
	}
	common.SetupGinLog()
	common.SysLog(common.SystemName + " " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := common.LoadConfigFile(); err != nil {
		common.FatalLog(err)
	}
	// Initialize Redis
	if err := common.InitRedisClient(); err != nil {
		common.FatalLog(err)
	}
	// Initialize SQL Database
	if err := model.InitDB(); err != nil {
		common.FatalLog(err)
	}
	defer func() {
		if err := model.CloseDB(); err != nil {
			common.FatalLog(err)
		}
	}()
	// Initialize the upload directory
	if err := handler.InitUploadStore(); err != nil {
		common.FatalLog(err)
	}

	// Initialize HTTP server
	server := gin.Default()
	server.Use(middleware.CORS())
	server.Use(middleware.RequestID())

	route.SetRouter(server, buildFS, indexPage)

	port := strconv.Itoa(*common.Port)
	common.SysLog("Server listening on port: " + port)

	// Setup graceful shutdown
	setupGracefulShutdown()

	if err := server.Run(":" + port); err != nil {
		log.Fatal("failed to start server: " + err.Error())
	}
}

// setupGracefulShutdown registers signal handlers to ensure clean shutdown
func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		common.SysLog("Shutting down...")
		if err := model.CloseDB(); err != nil {
			common.SysError("Error closing database: " + err.Error())
		}
		os.Exit(0)
	}()
}
