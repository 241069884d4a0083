package response

import (
	"time"

	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	ID           uuid.UUID `json:"id"`
	Document     string    `json:"document"`
	FullName     string    `json:"fullName"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Country      string    `json:"country"`
	RegisteredAt time.Time `json:"registeredAt"`
	Points       int       `json:"points"`
}

type AccrualResponse struct {
	GuestID uuid.UUID `json:"guestId"`
	Earned  int       `json:"earned"`
	Balance int       `json:"balance"`
}

type RedeemResponse struct {
	GuestID  uuid.UUID `json:"guestId"`
	Redeemed int       `json:"redeemed"`
	Balance  int       `json:"balance"`
}

func FromGuestView(rm *queries.GuestView) *GuestResponse {
	var resp GuestResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromAccrualResult(r *commands.AccrualResult) *AccrualResponse {
	return &AccrualResponse{GuestID: r.GuestID, Earned: r.Earned, Balance: r.Balance}
}

func FromRedeemResult(r *commands.RedeemResult) *RedeemResponse {
	return &RedeemResponse{GuestID: r.GuestID, Redeemed: r.Redeemed, Balance: r.Balance}
}
