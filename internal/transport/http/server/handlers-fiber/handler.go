// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/Jav1ex/football-team-management-personnel-service/internal/usecase"

	"go.uber.org/zap"
)

// Handler implements the HTTP surface using usecase layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}
