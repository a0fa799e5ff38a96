package models

// FavoriteHotel is a favorited hotel joined with its current listing data.
type FavoriteHotel struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Price          float64 `json:"price"`
	AvailableRooms int     `json:"availableRooms"`
}
