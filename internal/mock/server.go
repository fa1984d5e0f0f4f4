// Package mock serves canned career backend responses for local use and tests.
package mock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const maxLogs = 1000

// Server is the fixture backend
type Server struct {
	config     *Config
	httpServer *http.Server
	listener   net.Listener
	logs       []RequestLog
	logsMutex  sync.RWMutex
	workdir    string
}

// NewServer creates a fixture server. Relative bodyFile paths resolve against workdir.
func NewServer(config *Config, workdir string) *Server {
	if config.Port == 0 {
		config.Port = 5000
	}
	if config.Host == "" {
		config.Host = "127.0.0.1"
	}

	return &Server{
		config:  config,
		logs:    make([]RequestLog, 0),
		workdir: workdir,
	}
}

// Handler returns the route handler without binding a port
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.handleRequest)
}

// Start binds the configured address and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf("%s:%d", s.config.Host, s.config.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = ln
	s.httpServer = &http.Server{Handler: s.Handler()}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Mock server error: %v", err)
		}
	}()

	return nil
}

// Stop shuts the server down, waiting up to five seconds for in-flight requests
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// Address returns the base URL clients should use
func (s *Server) Address() string {
	if s.listener != nil {
		return "http://" + s.listener.Addr().String()
	}
	return fmt.Sprintf("http://%s:%d", s.config.Host, s.config.Port)
}

func (s *Server) handleRequest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	bodyBytes, _ := io.ReadAll(r.Body)
	r.Body.Close()
	requestBody := string(bodyBytes)

	route := s.findMatchingRoute(r.Method, r.URL.Path, requestBody)

	var status int
	var responseBody string
	var matchedRule string

	if route == nil {
		status = http.StatusNotFound
		responseBody = fmt.Sprintf(`{"status":"error","message":"no route configured for %s %s"}`, r.Method, r.URL.Path)
		matchedRule = "none"
		w.Header().Set("Content-Type", "application/json")
	} else {
		if route.Delay > 0 {
			select {
			case <-time.After(time.Duration(route.Delay) * time.Millisecond):
			case <-r.Context().Done():
				return
			}
		}

		status = route.Status
		if status == 0 {
			status = http.StatusOK
		}

		w.Header().Set("Content-Type", "application/json")
		for key, value := range route.Headers {
			w.Header().Set(key, value)
		}

		if route.BodyFile != "" {
			filePath := route.BodyFile
			if !filepath.IsAbs(filePath) {
				filePath = filepath.Join(s.workdir, filePath)
			}
			data, err := os.ReadFile(filePath)
			if err != nil {
				status = http.StatusInternalServerError
				responseBody = fmt.Sprintf(`{"status":"error","message":"failed to read body file %s"}`, route.BodyFile)
			} else {
				responseBody = string(data)
			}
		} else {
			responseBody = route.Body
		}

		matchedRule = route.Name
		if matchedRule == "" {
			matchedRule = fmt.Sprintf("%s %s", route.Method, route.Path)
		}
	}

	w.WriteHeader(status)
	w.Write([]byte(responseBody))

	entry := RequestLog{
		Timestamp:   start,
		Method:      r.Method,
		Path:        r.URL.Path,
		Body:        requestBody,
		MatchedRule: matchedRule,
		Status:      status,
		Duration:    time.Since(start),
	}
	s.logRequest(entry)
	if s.config.Logging {
		log.Printf("mock %s %s -> %d (%s) in %s", entry.Method, entry.Path, entry.Status, entry.MatchedRule, entry.Duration)
	}
}

// findMatchingRoute returns the first route matching method, path and body
func (s *Server) findMatchingRoute(method, path, body string) *Route {
	lowerBody := strings.ToLower(body)

	for i := range s.config.Routes {
		route := &s.config.Routes[i]
		if !strings.EqualFold(route.Method, method) {
			continue
		}

		matched := false
		switch route.PathType {
		case "", PathExact:
			matched = route.Path == path
		case PathPrefix:
			matched = strings.HasPrefix(path, route.Path)
		case PathRegex:
			matched = route.pathRe != nil && route.pathRe.MatchString(path)
		}
		if !matched {
			continue
		}

		if route.BodyContains != "" && !strings.Contains(lowerBody, strings.ToLower(route.BodyContains)) {
			continue
		}
		return route
	}

	return nil
}

func (s *Server) logRequest(entry RequestLog) {
	s.logsMutex.Lock()
	defer s.logsMutex.Unlock()

	s.logs = append(s.logs, entry)
	if len(s.logs) > maxLogs {
		s.logs = s.logs[len(s.logs)-maxLogs:]
	}
}

// Logs returns a copy of the served requests, oldest first
func (s *Server) Logs() []RequestLog {
	s.logsMutex.RLock()
	defer s.logsMutex.RUnlock()

	logs := make([]RequestLog, len(s.logs))
	copy(logs, s.logs)
	return logs
}

// ClearLogs forgets every served request
func (s *Server) ClearLogs() {
	s.logsMutex.Lock()
	defer s.logsMutex.Unlock()

	s.logs = make([]RequestLog, 0)
}
