package create_booking

import (
	"errors"
	"net/http"

	"github.com/waypartner/booking-service/internal/api/handlers"
	createBooking "github.com/waypartner/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid service date or start time, expected YYYY-MM-DD and HH:MM"
	msgSlotNotAvailable   = "selected time slot is already booked"
	msgInsufficientCoins  = "insufficient coin balance to redeem"
	msgVehicleNotFound    = "vehicle is not registered"
	msgInvalidDate        = "invalid booking date"
	msgInvalidTimeSlot    = "start time is not in the daily slot grid"
	msgInvalidInput       = "vehicle registration, customer name, phone and service type are required"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: vehicle=%s, date=%s, time=%s",
				req.VehicleRegistration, req.ServiceDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInsufficientCoins):
			h.logger.Warn("POST /bookings - Insufficient coins: vehicle=%s, coins=%d",
				req.VehicleRegistration, req.CoinsToRedeem)
			handlers.RespondConflict(w, msgInsufficientCoins)

		case errors.Is(err, createBooking.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle=%s", req.VehicleRegistration)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: vehicle=%s, date=%s",
				req.VehicleRegistration, req.ServiceDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: vehicle=%s, time=%s",
				req.VehicleRegistration, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: vehicle=%s, error=%v",
				req.VehicleRegistration, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: vehicle=%s, error=%v",
				req.VehicleRegistration, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, vehicle=%s, date=%s, time=%s",
		result.ID, result.VehicleRegistration, req.ServiceDate, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
