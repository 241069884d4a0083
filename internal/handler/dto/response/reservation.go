package response

import (
	"time"

	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceLineResponse struct {
	ServiceID uuid.UUID `json:"serviceId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	Subtotal  float64   `json:"subtotal"`
}

type ReservationResponse struct {
	ID         uuid.UUID             `json:"id"`
	Code       string                `json:"code"`
	GuestID    uuid.UUID             `json:"guestId"`
	GuestName  string                `json:"guestName"`
	RoomID     uuid.UUID             `json:"roomId"`
	RoomNumber int                   `json:"roomNumber"`
	RoomType   string                `json:"roomType"`
	HotelID    uuid.UUID             `json:"hotelId"`
	HotelName  string                `json:"hotelName"`
	CheckIn    time.Time             `json:"checkIn"`
	CheckOut   time.Time             `json:"checkOut"`
	Nights     int                   `json:"nights"`
	Status     string                `json:"status"`
	BookedAt   time.Time             `json:"bookedAt"`
	CheckInAt  *time.Time            `json:"checkInAt,omitempty"`
	CheckOutAt *time.Time            `json:"checkOutAt,omitempty"`
	AccessCode *string               `json:"accessCode,omitempty"`
	RoomTotal  float64               `json:"roomTotal"`
	Discount   *float64              `json:"discount,omitempty"`
	Services   []ServiceLineResponse `json:"services"`

	InvoiceTotal  *float64 `json:"invoiceTotal,omitempty"`
	PaymentStatus *string  `json:"paymentStatus,omitempty"`
}

type ReservationListResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	HotelName  string    `json:"hotelName"`
	RoomNumber int       `json:"roomNumber"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Status     string    `json:"status"`
	RoomTotal  float64   `json:"roomTotal"`
}

type CheckOutResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Surcharge   float64              `json:"surcharge"`
	Total       float64              `json:"total"`
}

type CancelResponse struct {
	Reservation   *ReservationResponse `json:"reservation"`
	RefundPercent float64              `json:"refundPercent"`
	RefundAmount  float64              `json:"refundAmount"`
	Total         float64              `json:"total"`
}

type NightLineResponse struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

type BreakdownResponse struct {
	ReservationID uuid.UUID             `json:"reservationId"`
	Nights        []NightLineResponse   `json:"nights"`
	RoomTotal     float64               `json:"roomTotal"`
	ServicesTotal float64               `json:"servicesTotal"`
	Services      []ServiceLineResponse `json:"services"`
	GrandTotal    float64               `json:"grandTotal"`
}

type PendingCheckInResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	GuestName  string    `json:"guestName"`
	GuestEmail *string   `json:"guestEmail,omitempty"`
	HotelName  string    `json:"hotelName"`
	RoomNumber int       `json:"roomNumber"`
	CheckIn    time.Time `json:"checkIn"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	if resp.Services == nil {
		resp.Services = []ServiceLineResponse{}
	}
	return &resp
}

func FromReservationListItem(rm queries.ReservationListItem) ReservationListResponse {
	var resp ReservationListResponse
	_ = copier.Copy(&resp, &rm)
	return resp
}

func FromCheckOutResult(r *commands.CheckOutResult) *CheckOutResponse {
	return &CheckOutResponse{
		Reservation: FromReservationView(r.Reservation),
		Surcharge:   r.Surcharge,
		Total:       r.Total,
	}
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		Reservation:   FromReservationView(r.Reservation),
		RefundPercent: r.RefundPercent,
		RefundAmount:  r.RefundAmount,
		Total:         r.Total,
	}
}

func FromBreakdownView(rm *queries.BreakdownView) *BreakdownResponse {
	var resp BreakdownResponse
	_ = copier.Copy(&resp, rm)
	if resp.Services == nil {
		resp.Services = []ServiceLineResponse{}
	}
	return &resp
}

func FromPendingCheckInView(rm queries.PendingCheckInView) PendingCheckInResponse {
	var resp PendingCheckInResponse
	_ = copier.Copy(&resp, &rm)
	return resp
}
