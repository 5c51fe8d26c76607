package handler

import (
	"time"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

type createBookingRequest struct {
	ExpertID    string    `json:"expert_id"    validate:"required"`
	Category    string    `json:"category"     validate:"required"`
	ServiceID   string    `json:"service_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       string    `json:"notes"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed cancelled"`
}

// partyResponse is the counterparty summary embedded in booking listings.
type partyResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type bookingResponse struct {
	ID          string         `json:"id"`
	Category    string         `json:"category"`
	ServiceID   string         `json:"service_id,omitempty"`
	Status      string         `json:"status"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	Expert      *partyResponse `json:"expert,omitempty"`
	Client      *partyResponse `json:"client,omitempty"`
}

func toBookingResponse(b *domain.Booking, expert, client *domain.Identity) bookingResponse {
	resp := bookingResponse{
		ID:          b.ID,
		Category:    b.Category,
		ServiceID:   b.ServiceID,
		Status:      string(b.Status),
		ScheduledAt: b.ScheduledAt,
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
	}
	if expert != nil {
		resp.Expert = &partyResponse{ID: expert.ID, FirstName: expert.FirstName, LastName: expert.LastName}
	}
	if client != nil {
		resp.Client = &partyResponse{ID: client.ID, FirstName: client.FirstName, LastName: client.LastName}
	}
	return resp
}
