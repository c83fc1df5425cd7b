package common

import (
	"flag"
	"fmt"
	"os"
	"time"
)

var Version = "v0.1.0"
var SystemName = "Songbox"
var StartTime = time.Now().Unix()

var (
	Port          = flag.Int("port", 3000, "the listening port")
	PrintVersion  = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag = flag.Bool("help", false, "print help and exit")
	LogDir        = flag.String("log-dir", "", "specify the log directory")
)

// SQLitePath is the path of the sqlite database file.
var SQLitePath = "songbox.db"

// UploadPath is the directory uploaded blobs are written to and served from.
var UploadPath = "uploads"

func init() {
	if os.Getenv("SQLITE_PATH") != "" {
		SQLitePath = os.Getenv("SQLITE_PATH")
	}
	if os.Getenv("UPLOAD_PATH") != "" {
		UploadPath = os.Getenv("UPLOAD_PATH")
	}
}

func PrintHelp() {
	fmt.Println(SystemName + " " + Version)
	fmt.Println("Usage: songbox [--port <port>] [--log-dir <log directory>] [--version] [--help]")
	flag.PrintDefaults()
}
