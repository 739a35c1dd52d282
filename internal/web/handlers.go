package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-heartform/pkg/formstate"
	"github.com/goliatone/go-heartform/pkg/orchestrator"
	"github.com/goliatone/go-heartform/pkg/render"
	"github.com/goliatone/go-heartform/pkg/submission"
)

// submitEvent records whether the submission took over the browser's default
// form navigation. Without that the POST falls back to a redirect to the page.
type submitEvent struct {
	prevented bool
}

func (e *submitEvent) PreventDefault() {
	e.prevented = true
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, render.RenderOptions{})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	form, err := s.orch.Form(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	values := make(map[string]string, len(form.Fields))
	for _, name := range form.FieldNames() {
		values[name] = r.PostForm.Get(name)
	}
	state := formstate.FromValues(form.FieldNames(), values)

	if missing := state.Missing(); len(missing) > 0 {
		s.renderPage(w, r, http.StatusUnprocessableEntity, render.RenderOptions{
			Values: state.Values(),
			Errors: render.MissingErrors(form, missing),
		})
		return
	}

	logger := s.logger.With("request_id", middleware.GetReqID(r.Context()))
	controller := submission.NewController(s.predictor,
		submission.WithLogger(logger),
		submission.WithState(state),
	)

	// The outbound call carries no cancellation of its own, including a
	// client that hangs up.
	var event submitEvent
	outcome := controller.Submit(context.WithoutCancel(r.Context()), &event, state)
	if !event.prevented {
		http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
		return
	}

	s.renderPage(w, r, http.StatusOK, render.RenderOptions{
		Values: state.Values(),
		View:   outcome.View,
	})
}

func (s *Server) handleThemeStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(render.Stylesheet(s.orch.Theme())))
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, opts render.RenderOptions) {
	renderer, err := s.orch.Renderer("")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	output, err := s.orch.Generate(r.Context(), orchestrator.Request{
		Renderer:      renderer.Name(),
		RenderOptions: opts,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	w.Write(output)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
