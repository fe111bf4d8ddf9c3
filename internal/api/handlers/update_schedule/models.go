package update_schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	updateSchedule "github.com/barberhub/booking-service/internal/usecase/update_schedule"
	"github.com/barberhub/booking-service/pkg/types"
)

// ScheduleEntryRequest строка недельного расписания в HTTP запросе
type ScheduleEntryRequest struct {
	DayOfWeek  int     `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime  string  `json:"startTime"` // "10:00"
	EndTime    string  `json:"endTime"`   // "19:00"
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
	IsActive   bool    `json:"isActive"`
}

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Entries []ScheduleEntryRequest `json:"entries"`
}

// ScheduleEntryResponse строка недельного расписания в HTTP ответе
type ScheduleEntryResponse struct {
	DayOfWeek  int     `json:"dayOfWeek"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
	IsActive   bool    `json:"isActive"`
}

// UpdateScheduleResponse HTTP response model
type UpdateScheduleResponse struct {
	BarberID string                  `json:"barberId"`
	Entries  []ScheduleEntryResponse `json:"entries"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateScheduleRequest) ToUseCaseRequest(barberID uuid.UUID) (*updateSchedule.Request, error) {
	entries := make([]updateSchedule.EntryInput, 0, len(r.Entries))

	for _, in := range r.Entries {
		if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
			return nil, fmt.Errorf("dayOfWeek must be in range 0..6, got %d", in.DayOfWeek)
		}

		startTime, err := types.ParseTimeOfDay(in.StartTime)
		if err != nil {
			return nil, err
		}

		endTime, err := types.ParseTimeOfDay(in.EndTime)
		if err != nil {
			return nil, err
		}

		entry := updateSchedule.EntryInput{
			DayOfWeek: time.Weekday(in.DayOfWeek),
			StartTime: startTime,
			EndTime:   endTime,
			IsActive:  in.IsActive,
		}

		if in.BreakStart != nil {
			breakStart, err := types.ParseTimeOfDay(*in.BreakStart)
			if err != nil {
				return nil, err
			}
			entry.BreakStart = &breakStart
		}

		if in.BreakEnd != nil {
			breakEnd, err := types.ParseTimeOfDay(*in.BreakEnd)
			if err != nil {
				return nil, err
			}
			entry.BreakEnd = &breakEnd
		}

		entries = append(entries, entry)
	}

	return &updateSchedule.Request{
		BarberID: barberID,
		Entries:  entries,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSchedule.Response) *UpdateScheduleResponse {
	entries := make([]ScheduleEntryResponse, len(resp.Entries))
	for i, entry := range resp.Entries {
		row := ScheduleEntryResponse{
			DayOfWeek: int(entry.DayOfWeek),
			StartTime: entry.StartTime.String(),
			EndTime:   entry.EndTime.String(),
			IsActive:  entry.IsActive,
		}
		if entry.BreakStart != nil {
			breakStart := entry.BreakStart.String()
			row.BreakStart = &breakStart
		}
		if entry.BreakEnd != nil {
			breakEnd := entry.BreakEnd.String()
			row.BreakEnd = &breakEnd
		}
		entries[i] = row
	}

	return &UpdateScheduleResponse{
		BarberID: resp.BarberID.String(),
		Entries:  entries,
	}
}
