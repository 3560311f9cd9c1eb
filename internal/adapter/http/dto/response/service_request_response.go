package response

import (
	"time"

	"homeclean/internal/domain/entities"
)

type RequestPhotoResponse struct {
	ID        int64  `json:"id"`
	PhotoPath string `json:"photo_path"`
}

type ServiceRequestResponse struct {
	ID             int64                  `json:"id"`
	ClientID       int64                  `json:"client_id"`
	ServiceAddress string                 `json:"service_address"`
	CleaningType   string                 `json:"cleaning_type"`
	NumRooms       int                    `json:"num_rooms"`
	PreferredDate  string                 `json:"preferred_date"`
	PreferredTime  string                 `json:"preferred_time"`
	ProposedBudget float64                `json:"proposed_budget"`
	Notes          string                 `json:"notes,omitempty"`
	Status         string                 `json:"status"`
	Photos         []RequestPhotoResponse `json:"photos"`
	CreatedAt      time.Time              `json:"created_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	photos := make([]RequestPhotoResponse, 0, len(r.Photos))
	for _, p := range r.Photos {
		photos = append(photos, RequestPhotoResponse{ID: p.ID, PhotoPath: p.PhotoPath})
	}
	return ServiceRequestResponse{
		ID:             r.ID,
		ClientID:       r.ClientID,
		ServiceAddress: r.ServiceAddress,
		CleaningType:   string(r.CleaningType),
		NumRooms:       r.NumRooms,
		PreferredDate:  r.PreferredDate.Format("2006-01-02"),
		PreferredTime:  r.PreferredTime,
		ProposedBudget: r.ProposedBudget,
		Notes:          r.Notes,
		Status:         string(r.Status),
		Photos:         photos,
		CreatedAt:      r.CreatedAt,
	}
}

func FromServiceRequests(rs []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromServiceRequest(r))
	}
	return out
}

type PhotoUploadResponse struct {
	Photos []string `json:"photos"`
}
