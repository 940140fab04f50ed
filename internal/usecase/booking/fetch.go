package booking

import (
	"context"

	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	domain "github.com/BruksfildServices01/rental-marketplace/internal/domain/rental"
	"github.com/BruksfildServices01/rental-marketplace/internal/dto"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/models"
)

type Queries struct {
	repo domain.BookingRepository
	gate *authz.Gate
}

func NewQueries(repo domain.BookingRepository, gate *authz.Gate) *Queries {
	return &Queries{repo: repo, gate: gate}
}

// FetchBookings lists the caller's own stays, newest check-in first.
func (q *Queries) FetchBookings(ctx context.Context, ident *identity.Identity) ([]dto.BookingListDTO, error) {
	me, err := q.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return nil, err
	}

	bookings, err := q.repo.ListGuestBookings(ctx, me.ClerkID)
	if err != nil {
		return nil, httperr.Persistence(err)
	}
	return toListDTO(bookings, false), nil
}

// FetchReservations lists bookings other people made on the caller's
// properties.
func (q *Queries) FetchReservations(ctx context.Context, ident *identity.Identity) ([]dto.BookingListDTO, error) {
	me, err := q.gate.ResolveActingProfile(ctx, ident)
	if err != nil {
		return nil, err
	}

	bookings, err := q.repo.ListReservations(ctx, me.ClerkID)
	if err != nil {
		return nil, httperr.Persistence(err)
	}
	return toListDTO(bookings, true), nil
}

func toListDTO(bookings []models.Booking, withPrice bool) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))

	for _, b := range bookings {
		item := dto.BookingListDTO{
			ID:            b.ID,
			CheckIn:       b.CheckIn,
			CheckOut:      b.CheckOut,
			TotalNights:   b.TotalNights,
			OrderTotal:    b.OrderTotal,
			PaymentStatus: b.PaymentStatus,
			CreatedAt:     b.CreatedAt,
		}

		if b.Property != nil {
			item.Property = dto.BookingPropertyDTO{
				ID:      b.Property.ID,
				Name:    b.Property.Name,
				Country: b.Property.Country,
			}
			if withPrice {
				item.Property.Price = b.Property.Price
			}
		}

		out = append(out, item)
	}

	return out
}
