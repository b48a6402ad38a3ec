package maintenance

import (
	"time"

	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/maintenance"
)

type maintenanceResponse struct {
	ID             uuid.UUID          `json:"id"`
	EquipmentID    *uuid.UUID         `json:"equipment_id,omitempty"`
	ProblemGroupID *uuid.UUID         `json:"problem_group_id,omitempty"`
	WorkshopID     *uuid.UUID         `json:"workshop_id,omitempty"`
	Trailer        string             `json:"trailer,omitempty"`
	Observation    string             `json:"observation,omitempty"`
	Status         maintenance.Status `json:"status"`
	ProblemDate    string             `json:"problem_date"`
	CreatedBy      *uuid.UUID         `json:"created_by,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(m *maintenance.Maintenance) maintenanceResponse {
	return maintenanceResponse{
		ID:             m.ID,
		EquipmentID:    m.EquipmentID,
		ProblemGroupID: m.ProblemGroupID,
		WorkshopID:     m.WorkshopID,
		Trailer:        m.Trailer,
		Observation:    m.Observation,
		Status:         m.Status,
		ProblemDate:    m.ProblemDate.Format(time.DateOnly),
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toResponseList(ms []*maintenance.Maintenance) []maintenanceResponse {
	resp := make([]maintenanceResponse, len(ms))
	for i, m := range ms {
		resp[i] = toResponse(m)
	}

	return resp
}
