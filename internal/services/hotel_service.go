package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/domain/models"
	"wanderlust-backend/internal/repositories"
)

// HotelService manages hotel listings. Mutations are gated on the owning
// operator; reads are public.
type HotelService struct {
	DB     *sql.DB
	Hotels repositories.HotelRepository
}

type CreateHotelInput struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	AvailableRooms int     `json:"availableRooms"`
}

func (s HotelService) List(ctx context.Context, nameFilter string) ([]models.Hotel, error) {
	hotels, err := s.Hotels.List(ctx, s.DB, nameFilter)
	if err != nil {
		return nil, wrapInternal(err)
	}
	return hotels, nil
}

func (s HotelService) Get(ctx context.Context, id int64) (models.Hotel, error) {
	hotel, err := s.Hotels.FindByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Hotel{}, domain.NotFoundError{Resource: "hotel", Err: err}
		}
		return models.Hotel{}, wrapInternal(err)
	}
	return hotel, nil
}

func (s HotelService) Create(ctx context.Context, operatorID int64, in CreateHotelInput) (models.Hotel, error) {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return models.Hotel{}, domain.ValidationError{Field: "name", Msg: "is required"}
	case strings.TrimSpace(in.Address) == "":
		return models.Hotel{}, domain.ValidationError{Field: "address", Msg: "is required"}
	case in.Price <= 0:
		return models.Hotel{}, domain.ValidationError{Field: "price", Msg: "must be positive"}
	case in.AvailableRooms <= 0:
		return models.Hotel{}, domain.ValidationError{Field: "availableRooms", Msg: "must be positive"}
	}

	hotel := models.Hotel{
		Name:           strings.TrimSpace(in.Name),
		Address:        strings.TrimSpace(in.Address),
		Description:    strings.TrimSpace(in.Description),
		Price:          in.Price,
		AvailableRooms: in.AvailableRooms,
		OperatorID:     operatorID,
	}
	id, err := s.Hotels.Insert(ctx, s.DB, hotel)
	if err != nil {
		return models.Hotel{}, wrapInternal(err)
	}
	return s.Get(ctx, id)
}

func (s HotelService) Update(ctx context.Context, operatorID, id int64, upd models.HotelUpdate) (models.Hotel, error) {
	hotel, err := s.Get(ctx, id)
	if err != nil {
		return models.Hotel{}, err
	}
	if hotel.OperatorID != operatorID {
		return models.Hotel{}, domain.ForbiddenError{Msg: "no permission to manage this hotel"}
	}

	if upd.Price != nil && *upd.Price <= 0 {
		return models.Hotel{}, domain.ValidationError{Field: "price", Msg: "must be positive"}
	}
	if upd.AvailableRooms != nil && *upd.AvailableRooms < 0 {
		return models.Hotel{}, domain.ValidationError{Field: "availableRooms", Msg: "must not be negative"}
	}

	if err := s.Hotels.Update(ctx, s.DB, id, upd); err != nil {
		return models.Hotel{}, wrapInternal(err)
	}
	return s.Get(ctx, id)
}

func (s HotelService) Delete(ctx context.Context, operatorID, id int64) error {
	hotel, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if hotel.OperatorID != operatorID {
		return domain.ForbiddenError{Msg: "no permission to manage this hotel"}
	}
	return wrapInternal(s.Hotels.Delete(ctx, s.DB, id))
}
