package get_day_schedule

import (
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	getDaySchedule "github.com/m04kA/PCM-SchedulingService/internal/usecase/get_day_schedule"
)

// CellResponse ячейка часовой сетки в HTTP ответе
type CellResponse struct {
	Hour          int                  `json:"hour"`
	Kind          string               `json:"kind"`
	IsStart       bool                 `json:"isStart"`
	DisplayStatus string               `json:"displayStatus,omitempty"`
	Booking       *BookingCardResponse `json:"booking,omitempty"`
	Class         *ClassCardResponse   `json:"class,omitempty"`
}

// BookingCardResponse карточка бронирования в стартовой ячейке
type BookingCardResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Status   string `json:"status"`
	Paid     bool   `json:"paid"`
}

// ClassCardResponse карточка занятия в стартовой ячейке
type ClassCardResponse struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	InstructorName string `json:"instructorName"`
	Start          string `json:"start"`
	End            string `json:"end"`
	MaxCapacity    int    `json:"maxCapacity"`
	EnrolledCount  int    `json:"enrolledCount"`
	Status         string `json:"status"`
}

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	CourtID int64          `json:"courtId"`
	Date    string         `json:"date"`
	Cells   []CellResponse `json:"cells"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	cells := make([]CellResponse, 0, len(resp.Cells))
	for _, cell := range resp.Cells {
		cellResp := CellResponse{
			Hour:          cell.Hour,
			Kind:          string(cell.Kind),
			IsStart:       cell.IsStart,
			DisplayStatus: cell.DisplayStatus,
		}
		if cell.Booking != nil {
			cellResp.Booking = &BookingCardResponse{
				ID:       cell.Booking.ID,
				UserID:   cell.Booking.UserID,
				UserName: cell.Booking.UserName,
				Start:    cell.Booking.Start.Format(time.RFC3339),
				End:      cell.Booking.End.Format(time.RFC3339),
				Status:   cell.Booking.Status,
				Paid:     cell.Booking.Paid,
			}
		}
		if cell.Class != nil {
			cellResp.Class = &ClassCardResponse{
				ID:             cell.Class.ID,
				Title:          cell.Class.Title,
				InstructorName: cell.Class.InstructorName,
				Start:          cell.Class.Start.Format(time.RFC3339),
				End:            cell.Class.End.Format(time.RFC3339),
				MaxCapacity:    cell.Class.MaxCapacity,
				EnrolledCount:  cell.Class.EnrolledCount,
				Status:         cell.Class.Status,
			}
		}
		cells = append(cells, cellResp)
	}

	return &DayScheduleResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Cells:   cells,
	}
}
