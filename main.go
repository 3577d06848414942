package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"runtime"
	"strconv"

	"github.com/appbaseio/search-api/config"
	"github.com/appbaseio/search-api/middleware/logger"
	"github.com/appbaseio/search-api/middleware/panic"
	cleaner "github.com/appbaseio/search-api/middleware/path"
	"github.com/appbaseio/search-api/middleware/ratelimiter"
	"github.com/appbaseio/search-api/model/tracktime"
	"github.com/appbaseio/search-api/plugins"
	"github.com/appbaseio/search-api/plugins/admin"
	"github.com/appbaseio/search-api/plugins/auth"
	"github.com/appbaseio/search-api/plugins/meta"
	"github.com/appbaseio/search-api/plugins/search"
	"github.com/appbaseio/search-api/plugins/update"
	"github.com/appbaseio/search-api/util"
	"github.com/gorilla/mux"
	"github.com/pkg/profile"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logTag = "[cmd]"

var (
	envFile     string
	logMode     string
	logFile     string
	listPlugins bool
	address     string
	port        int
	https       bool
	cpuprofile  bool
)

func init() {
	flag.StringVar(&envFile, "env", ".env", "Path to file with environment variables to load in KEY=VALUE format")
	flag.StringVar(&logMode, "log", "", "Define to change the default log mode(error), other options are: debug(most verbose) and info")
	flag.StringVar(&logFile, "log-file", "", "Path to a file the logs are written to, rotated when it grows large")
	flag.BoolVar(&listPlugins, "plugins", false, "List currently registered plugins")
	flag.StringVar(&address, "addr", "0.0.0.0", "Address to serve on")
	// env port for deployments like heroku where port is dynamically assigned
	defaultPort := 8000
	if envPort := os.Getenv("PORT"); envPort != "" {
		if portValue, err := strconv.Atoi(envPort); err == nil {
			defaultPort = portValue
		}
	}
	flag.IntVar(&port, "port", defaultPort, "Port number")
	flag.BoolVar(&https, "https", false, "Starts a https server instead of a http server if true")
	flag.BoolVar(&cpuprofile, "cpuprofile", false, "write cpu profile to `file`")

	// the order of registration is the order in which routes are matched
	plugins.RegisterPlugin(auth.Instance())
	plugins.RegisterPlugin(meta.Instance())
	plugins.RegisterPlugin(search.Instance())
	plugins.RegisterPlugin(update.Instance())
	plugins.RegisterPlugin(admin.Instance())
}

func main() {
	flag.Parse()
	log.SetReportCaller(true)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:          true,
		TimestampFormat:        "2006/01/02 15:04:05",
		DisableLevelTruncation: true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			filename := path.Base(f.File)
			return "", fmt.Sprintf(" %s:%d", filename, f.Line)
		},
	})
	if logFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     30, //days
		})
	}

	switch logMode {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.ErrorLevel)
	}

	if listPlugins {
		fmt.Print(plugins.ListPluginsStr())
		return
	}

	// add cpu profilling
	if cpuprofile {
		defer profile.Start().Stop()
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatal(logTag, ": invalid configuration: ", err)
	}
	if err := util.NewClient(cfg); err != nil {
		log.Fatal(logTag, ": ", err)
	}
	ratelimiter.Instance().SetLimit(cfg.RateLimit)

	router := mux.NewRouter()
	if err := plugins.LoadPlugins(router); err != nil {
		log.Fatal(logTag, ": error loading plugins: ", err)
	}

	// CORS policy
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"HEAD", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"*"},
	})
	handler := c.Handler(router)
	handler = panic.Recovery(handler)
	// Add logger middleware
	handler = logger.Log(handler)
	// Add time tracker middleware
	handler = tracktime.Track(handler)
	handler = cleaner.Clean(handler)

	server := &plugins.Server{
		Addr:    fmt.Sprintf("%s:%d", address, port),
		Handler: handler,
	}
	if https {
		server.CertFile, server.KeyFile = cfg.HTTPSCert, cfg.HTTPSKey
		if server.CertFile == "" || server.KeyFile == "" {
			log.Fatal(logTag, ": HTTPS_CERT and HTTPS_KEY must be set to serve https")
		}
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(logTag, ": ", err)
	}
}
