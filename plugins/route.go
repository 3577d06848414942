package plugins

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

// Route is a type that contains information about a route.
type Route struct {
	// Name is the name of the route. In order to avoid conflicts in
	// the router, the name preferably should be a combination of both
	// http method type and the path. For example: "Get foobar" would
	// be an appropriate name for [GET foobar] endpoint.
	Name string

	// Methods represents an array of HTTP method type. It is preferable
	// to use values defined in net/http package to avoid typos.
	Methods []string

	// Path is the path that it expects to serve the requests on.
	// If the path contains any variables, then they must be declared
	// in accordance to the format defined by gorilla/mux.
	Path string

	// HandlerFunc is the handler function that is responsible for
	// responding the request made to this route.
	HandlerFunc http.HandlerFunc

	// Description about this route.
	Description string
}

// shutdownTimeout bounds the time in-flight requests get to finish.
const shutdownTimeout = 30 * time.Second

// Server serves the handler until the process receives an interrupt or
// terminate signal, then shuts down gracefully.
type Server struct {
	Addr     string
	Handler  http.Handler
	CertFile string
	KeyFile  string
}

// ListenAndServe starts the server, over TLS when both the cert and key
// files are set.
func (s *Server) ListenAndServe() error {
	server := &http.Server{
		Addr:    s.Addr,
		Handler: s.Handler,
	}

	idleConnectionsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Println(logTag, ": going to shutdown the server now")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Errorln(logTag, ": HTTP server Shutdown:", err)
		}
		close(idleConnectionsClosed)
	}()

	log.Println(logTag, ": listening on", s.Addr)
	var err error
	if s.CertFile != "" && s.KeyFile != "" {
		err = server.ListenAndServeTLS(s.CertFile, s.KeyFile)
	} else {
		err = server.ListenAndServe()
	}
	if err != http.ErrServerClosed {
		return err
	}

	<-idleConnectionsClosed
	log.Println(logTag, ": successfully closed server")
	return nil
}
