package server

import (
	"errors"
	"io"
	"log"
	"net"
	"runtime/debug"
)

// Server serves files beneath a single root directory, one connection at a time
type Server struct {
	config   Config
	resolver *Resolver
}

// NewServer canonicalizes the configured root and returns a server bound to it.
// The config is copied, later changes to cfg have no effect.
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	root, err := cfg.canonicalRoot()
	if err != nil {
		return nil, err
	}
	config := *cfg
	config.Root = root
	return &Server{
		config:   config,
		resolver: NewResolver(root),
	}, nil
}

// Root returns the canonical root directory
func (s *Server) Root() string {
	return s.config.Root
}

// Serve accepts connections and handles each one to completion before
// accepting the next. It returns nil once ln is closed.
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Println("Error accepting connection:", err)
			continue
		}
		s.RunConnection(conn)
	}
}

// RunConnection handles a single request on conn and closes it
func (s *Server) RunConnection(conn net.Conn) {
	defer conn.Close()

	defer func() {
		if err := recover(); err != nil {
			log.Printf("PANIC recovered: %v\n%s", err, debug.Stack())
			errorResponse, _ := ErrorResponse(ServerError("Internal Server Error"))
			conn.Write(errorResponse)
		}
	}()

	// A single read; requests larger than the buffer are truncated.
	buffer := make([]byte, s.config.ReadBufferSize)
	n, err := conn.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		logFailure("Error reading: %v", err)
		return
	}

	responseBytes := s.processRequest(buffer[:n])

	if _, err := conn.Write(responseBytes); err != nil {
		logFailure("Error writing response: %v", err)
	}
}

// processRequest turns raw request bytes into the full response
func (s *Server) processRequest(requestData []byte) []byte {
	req, httpErr := ParseRequest(requestData)
	if httpErr != nil {
		responseBytes, status := ErrorResponse(httpErr)
		s.logRequest("-", "-", status)
		return responseBytes
	}

	responseBytes, status := s.serveTarget(s.resolver.Resolve(req.Path))
	s.logRequest(req.Method, req.Path, status)
	return responseBytes
}

// serveTarget reads a file target and frames the response for any target
func (s *Server) serveTarget(target Target) ([]byte, string) {
	if !target.IsFile() {
		return ErrorResponse(target.Err)
	}
	content, httpErr := s.resolver.readFile(target.Path)
	if httpErr != nil {
		return ErrorResponse(httpErr)
	}
	return FileResponse(target.Path, content)
}

func (s *Server) logRequest(method, path, status string) {
	if s.config.EnableLogging {
		logRequest(method, path, status)
	}
}
