package content

import (
	"fmt"

	"github.com/gorilla/mux"

	"soluciones-site/api/pkg/middleware"
)

// Service handles HTTP requests for landing-page content. It depends on
// the Storage interface rather than a concrete implementation, keeping
// the HTTP layer decoupled from persistence.
type Service struct {
	storage Storage
}

// NewService creates a content Service with the given storage backend.
func NewService(store Storage) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("service: store cannot be nil")
	}
	return &Service{storage: store}, nil
}

func (s *Service) LoadRoutes(parentRouter *mux.Router) {
	router := parentRouter.PathPrefix("/content").Subrouter()
	router.StrictSlash(false)
	router.Use(middleware.JSON)

	router.HandleFunc("/{lang}", s.HandleGetLandingPage).Methods("GET")
}
