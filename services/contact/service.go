package contact

import (
	"fmt"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"soluciones-site/api/pkg/i18n"
	"soluciones-site/api/pkg/middleware"
)

// Service handles HTTP requests for contact form submissions. It owns
// nothing beyond the workflow and the translator; all submission
// semantics live in Workflow.
type Service struct {
	workflow    *Workflow
	tr          *i18n.Translator
	submissions *prometheus.CounterVec
}

// NewService creates the contact Service. The submissions counter is
// optional; pass nil to skip outcome metrics.
func NewService(wf *Workflow, tr *i18n.Translator, submissions *prometheus.CounterVec) (*Service, error) {
	if wf == nil {
		return nil, fmt.Errorf("service: workflow cannot be nil")
	}
	if tr == nil {
		return nil, fmt.Errorf("service: translator cannot be nil")
	}
	return &Service{workflow: wf, tr: tr, submissions: submissions}, nil
}

func (s *Service) LoadRoutes(parentRouter *mux.Router) {
	router := parentRouter.PathPrefix("/contact").Subrouter()
	router.StrictSlash(false)
	router.Use(middleware.JSON)

	router.HandleFunc("", s.HandleSubmit).Methods("POST")
}
