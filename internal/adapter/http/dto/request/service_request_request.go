package request

import (
	"errors"
	"time"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase"
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

const dateLayout = "2006-01-02"

// CreateServiceRequestRequest is the payload for opening a service request.
// preferred_date travels as YYYY-MM-DD.
type CreateServiceRequestRequest struct {
	ServiceAddress string  `json:"service_address" binding:"required"`
	CleaningType   string  `json:"cleaning_type" binding:"required"`
	NumRooms       int     `json:"num_rooms" binding:"required"`
	PreferredDate  string  `json:"preferred_date" binding:"required"`
	PreferredTime  string  `json:"preferred_time" binding:"required"`
	ProposedBudget float64 `json:"proposed_budget"`
	Notes          string  `json:"notes"`
}

func (r CreateServiceRequestRequest) ToInput() (usecase.CreateServiceRequestInput, error) {
	date, err := time.Parse(dateLayout, r.PreferredDate)
	if err != nil {
		return usecase.CreateServiceRequestInput{}, ErrInvalidDate
	}
	return usecase.CreateServiceRequestInput{
		ServiceAddress: r.ServiceAddress,
		CleaningType:   entities.CleaningType(r.CleaningType),
		NumRooms:       r.NumRooms,
		PreferredDate:  date,
		PreferredTime:  r.PreferredTime,
		ProposedBudget: r.ProposedBudget,
		Notes:          r.Notes,
	}, nil
}
