package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/service"
	apperrors "github.com/Akashajay-dot/Velocity-pro-audio/pkg/errors"
	httputil "github.com/Akashajay-dot/Velocity-pro-audio/pkg/http"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/logger"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/model"
)

const APIName = "Velocity Pro Audio API"

type RootResponse struct {
	Message string `json:"message"`
}

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Root(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, RootResponse{Message: APIName}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Root", "error", err)
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.BookingCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			// Wrong type on a known field is a validation failure, not a
			// malformed body.
			if writeErr := httputil.WriteError(w, apperrors.Validation("Booking validation failed", map[string]any{
				typeErr.Field: fmt.Sprintf("%s must be a string", typeErr.Field),
			})); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
			}
			return
		}
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	booking, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, booking); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, bookings); err != nil {
		h.log.Error("failed to write JSON response", "handler", "List", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api", h.Root)
	router.POST("/api/bookings", h.Create)
	router.GET("/api/bookings", h.List)
}
