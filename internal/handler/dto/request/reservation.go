package request

import (
	"hotel-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type ServiceSelectionRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity"`
}

type BookReservationRequest struct {
	GuestID  uuid.UUID                 `json:"guest_id" binding:"required"`
	RoomID   uuid.UUID                 `json:"room_id" binding:"required"`
	CheckIn  string                    `json:"check_in" binding:"required"`
	CheckOut string                    `json:"check_out" binding:"required"`
	Services []ServiceSelectionRequest `json:"services,omitempty"`
}

func (r BookReservationRequest) ToInput() commands.BookReservationInput {
	services := make([]commands.ServiceSelection, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, commands.ServiceSelection{
			Name:     s.Name,
			Quantity: s.Quantity,
		})
	}
	return commands.BookReservationInput{
		GuestID:  r.GuestID,
		RoomID:   r.RoomID,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Services: services,
	}
}
