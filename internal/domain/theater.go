package domain

import (
	"context"
	"time"
)

type TheaterStatus string

const (
	TheaterPending  TheaterStatus = "pending"
	TheaterApproved TheaterStatus = "approved"
	TheaterRejected TheaterStatus = "rejected"
)

// CanTransitionTo reports whether a status change is allowed. Only pending
// theaters can move, to either approved or rejected; both are terminal.
func (s TheaterStatus) CanTransitionTo(next TheaterStatus) bool {
	if s != TheaterPending {
		return false
	}

	return next == TheaterApproved || next == TheaterRejected
}

type Theater struct {
	ID        int
	Name      string
	Location  string
	Capacity  int
	OwnerID   int
	Status    TheaterStatus
	CreatedAt time.Time
}

type TheaterRepository interface {
	GetAll(ctx context.Context) ([]Theater, error)
	GetById(ctx context.Context, id int) (*Theater, error)
	GetAllByOwnerId(ctx context.Context, ownerID int) ([]Theater, error)
	Create(ctx context.Context, theater *Theater) error
	UpdateStatus(ctx context.Context, id int, status TheaterStatus) (*Theater, error)
}
