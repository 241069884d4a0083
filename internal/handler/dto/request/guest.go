package request

import (
	"hotel-booking-api/internal/usecase/commands"
)

type RegisterGuestRequest struct {
	Document string  `json:"document" binding:"required"`
	FullName string  `json:"full_name" binding:"required"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Country  string  `json:"country"`
}

func (r RegisterGuestRequest) ToInput() commands.RegisterGuestInput {
	return commands.RegisterGuestInput{
		Document: r.Document,
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Country:  r.Country,
	}
}

type RedeemPointsRequest struct {
	Points int `json:"points" binding:"required,gt=0"`
}
