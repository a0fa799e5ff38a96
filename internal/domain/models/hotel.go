package models

import "time"

// Hotel is a listing owned by an operator. AvailableRooms is the scarce
// resource the booking lifecycle protects: it must never go negative and
// must equal provisioned rooms minus active (pending/confirmed) bookings.
type Hotel struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `json:"price"`
	AvailableRooms int       `json:"availableRooms"`
	OperatorID     int64     `json:"operatorId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// HotelUpdate supports PATCH-style updates via key presence.
type HotelUpdate struct {
	Name           *string  `json:"name"`
	Address        *string  `json:"address"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price"`
	AvailableRooms *int     `json:"availableRooms"`
}
