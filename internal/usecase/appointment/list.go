package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/timezone"
)

// Query: Year/Month en cero = sin rango (calendario del admin por mes).
type Query struct {
	RequestID uint
	ProfileID uint
	PetID     uint
	Statuses  []string
	Year      int
	Month     int
}

func (q Query) monthRange(loc *time.Location) (*time.Time, *time.Time, error) {
	if q.Year == 0 && q.Month == 0 {
		return nil, nil, nil
	}
	if q.Year < 2000 || q.Month < 1 || q.Month > 12 {
		return nil, nil, httperr.Validation("invalid_month")
	}
	from, to := timezone.MonthRange(q.Year, time.Month(q.Month), loc)
	return &from, &to, nil
}

func validStatuses(ss []string) error {
	for _, s := range ss {
		switch domain.Status(s) {
		case domain.StatusPending, domain.StatusApproved, domain.StatusCancelled:
		default:
			return httperr.Validation("invalid_status")
		}
	}
	return nil
}

type ListVisits struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListVisits(repo domain.Repository, loc *time.Location) *ListVisits {
	return &ListVisits{repo: repo, loc: loc}
}

func (uc *ListVisits) Execute(ctx context.Context, actor auth.Actor, q Query) ([]models.VisitAppointment, error) {
	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}
	if !actor.IsAdmin() {
		q.ProfileID = actor.ProfileID
	}
	if err := validStatuses(q.Statuses); err != nil {
		return nil, err
	}
	from, to, err := q.monthRange(uc.loc)
	if err != nil {
		return nil, err
	}

	out, err := uc.repo.ListVisits(ctx, domain.VisitFilter{
		RequestID: q.RequestID,
		ProfileID: q.ProfileID,
		Statuses:  q.Statuses,
		From:      from,
		To:        to,
	})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	return out, nil
}

type ListVet struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListVet(repo domain.Repository, loc *time.Location) *ListVet {
	return &ListVet{repo: repo, loc: loc}
}

func (uc *ListVet) Execute(ctx context.Context, actor auth.Actor, q Query) ([]models.VetAppointment, error) {
	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}
	if !actor.IsAdmin() {
		q.ProfileID = actor.ProfileID
	}
	if err := validStatuses(q.Statuses); err != nil {
		return nil, err
	}
	from, to, err := q.monthRange(uc.loc)
	if err != nil {
		return nil, err
	}

	out, err := uc.repo.ListVetAppointments(ctx, domain.VetFilter{
		ProfileID: q.ProfileID,
		PetID:     q.PetID,
		Statuses:  q.Statuses,
		From:      from,
		To:        to,
	})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	return out, nil
}
