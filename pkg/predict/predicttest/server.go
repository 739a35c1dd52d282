// Package predicttest provides a scripted stand-in for the remote prediction
// service backed by httptest.
package predicttest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Response is one scripted reply.
type Response struct {
	Status int
	Body   string
	// Hold blocks the handler until the channel is closed or the request is
	// cancelled.
	Hold <-chan struct{}
}

// Request captures what the service received.
type Request struct {
	Method      string
	Path        string
	ContentType string
	RequestID   string
	Payload     map[string]string
	RawBody     string
}

// Server is a fake prediction service. Responses are served in order; once the
// script is exhausted the last response repeats.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	script    []Response
	requests  []Request
	arrivals  chan Request
	callCount int
}

// NewServer starts a fake service answering with the scripted responses.
func NewServer(responses ...Response) *Server {
	s := &Server{
		script:   append([]Response(nil), responses...),
		arrivals: make(chan Request, 64),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// JSON is a convenience for building a Response with a JSON body.
func JSON(status int, body any) Response {
	encoded, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return Response{Status: status, Body: string(encoded)}
}

// Success answers 200 with the given classification.
func Success(prediction int, probability float64) Response {
	return JSON(http.StatusOK, map[string]any{
		"prediction":  prediction,
		"probability": probability,
	})
}

// Failure answers status with {"error": message}.
func Failure(status int, message string) Response {
	return JSON(status, map[string]string{"error": message})
}

// Raw answers status with an arbitrary body.
func Raw(status int, body string) Response {
	return Response{Status: status, Body: body}
}

// Hanging answers with resp only after release is closed.
func Hanging(resp Response, release <-chan struct{}) Response {
	resp.Hold = release
	return resp
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Arrivals yields each request as soon as the handler has read it, before any
// scripted hold is honoured.
func (s *Server) Arrivals() <-chan Request {
	return s.arrivals
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	captured := Request{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		RequestID:   r.Header.Get("X-Request-ID"),
		RawBody:     string(raw),
	}
	var payload map[string]string
	if err := json.Unmarshal(raw, &payload); err == nil {
		captured.Payload = payload
	}

	s.mu.Lock()
	s.requests = append(s.requests, captured)
	resp := Response{Status: http.StatusOK, Body: `{"prediction":0,"probability":0}`}
	if len(s.script) > 0 {
		idx := s.callCount
		if idx >= len(s.script) {
			idx = len(s.script) - 1
		}
		resp = s.script[idx]
	}
	s.callCount++
	s.mu.Unlock()

	select {
	case s.arrivals <- captured:
	default:
	}

	if resp.Hold != nil {
		select {
		case <-resp.Hold:
		case <-r.Context().Done():
			return
		}
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp.Body)
}
