package models

import (
	"time"

	"wanderlust-backend/internal/domain"
)

// Booking is one reservation of one room in one hotel by one user.
// userId and hotelId never change after creation; totalPrice is computed
// once at creation and never recomputed.
type Booking struct {
	ID              int64
	UserID          int64
	HotelID         int64
	CheckInDate     time.Time
	CheckOutDate    time.Time
	GuestCount      int
	SpecialRequests string
	TotalPrice      float64
	Status          domain.BookingStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookingConfirmation is returned from creation, joined with the hotel name.
type BookingConfirmation struct {
	ID           int64                `json:"id"`
	HotelName    string               `json:"hotelName"`
	CheckInDate  string               `json:"checkInDate"`
	CheckOutDate string               `json:"checkOutDate"`
	GuestCount   int                  `json:"guestCount"`
	TotalPrice   float64              `json:"totalPrice"`
	Status       domain.BookingStatus `json:"status"`
}

// BookingView is one row of a user's booking list.
type BookingView struct {
	ID              int64                `json:"id"`
	HotelName       string               `json:"hotelName"`
	HotelAddress    string               `json:"hotelAddress"`
	CheckInDate     string               `json:"checkInDate"`
	CheckOutDate    string               `json:"checkOutDate"`
	GuestCount      int                  `json:"guestCount"`
	TotalPrice      float64              `json:"totalPrice"`
	Status          domain.BookingStatus `json:"status"`
	SpecialRequests string               `json:"specialRequests,omitempty"`
	CreatedAt       string               `json:"createdAt"`
}

// OperatorBookingView adds the requesting guest's email for operators.
type OperatorBookingView struct {
	BookingView
	UserEmail string `json:"userEmail"`
}

// BookingDetail is the single-booking view, including the hotel description.
type BookingDetail struct {
	BookingView
	HotelDescription string `json:"hotelDescription,omitempty"`
}
