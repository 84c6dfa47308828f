package get_day_schedule

import (
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
)

// findCoveringBooking возвращает активное бронирование, покрывающее час сетки
func findCoveringBooking(bookings []*domain.Booking, hour int) *domain.Booking {
	for _, booking := range bookings {
		if booking.IsActive() && booking.CoversHour(hour) {
			return booking
		}
	}
	return nil
}

// findCoveringClass возвращает активное занятие, покрывающее час сетки
func findCoveringClass(classes []*domain.ClassSession, hour int) *domain.ClassSession {
	for _, session := range classes {
		if session.IsActive() && session.CoversHour(hour) {
			return session
		}
	}
	return nil
}

// bookingDisplayStatus вычисляет производную подпись статуса бронирования
// Чистая функция от сохранённого статуса, статуса оплаты и текущего времени
func bookingDisplayStatus(booking *domain.Booking, now time.Time) string {
	switch {
	case booking.Status == domain.BookingStatusCancelled:
		return domain.LabelCancelada
	case booking.Status == domain.BookingStatusCompleted || booking.EndTime.Before(now):
		return domain.LabelCompletada
	case booking.PaymentStatus == domain.PaymentStatusPaid:
		return domain.LabelPagada
	case booking.Status == domain.BookingStatusPending:
		return domain.LabelPendiente
	default:
		return domain.LabelConfirmada
	}
}

// classDisplayStatus вычисляет производную подпись статуса занятия
func classDisplayStatus(session *domain.ClassSession, now time.Time) string {
	switch {
	case session.Status == domain.ClassStatusCancelled:
		return domain.LabelCancelada
	case session.Status == domain.ClassStatusCompleted || session.EndTime.Before(now):
		return domain.LabelFinalizada
	case !session.StartTime.After(now) && session.EndTime.After(now):
		return domain.LabelEnCurso
	case session.Status == domain.ClassStatusFull:
		return domain.LabelCompleta
	case session.Status == domain.ClassStatusOpen:
		return domain.LabelAbierta
	default:
		return domain.LabelProgramada
	}
}

// buildCells собирает часовую сетку дня из занятости корта
//
// Правило выбора: для каждого часа среди активной занятости может быть
// не более одного бронирования и одного занятия. Если совпали оба,
// данные нарушают инвариант непересечения - бронирование детерминированно
// выигрывает, а час попадает в список breachHours для алертинга
func buildCells(bookings []*domain.Booking, classes []*domain.ClassSession, now time.Time) (cells []Cell, breachHours []int) {
	cells = make([]Cell, 0, domain.SlotsPerDay)

	for _, hour := range domain.GridHours() {
		booking := findCoveringBooking(bookings, hour)
		session := findCoveringClass(classes, hour)

		if booking != nil && session != nil {
			breachHours = append(breachHours, hour)
		}

		switch {
		case booking != nil:
			cell := Cell{
				Hour:          hour,
				Kind:          CellBooking,
				IsStart:       domain.IsStartHour(booking.StartTime, hour),
				DisplayStatus: bookingDisplayStatus(booking, now),
			}
			if cell.IsStart {
				cell.Booking = &BookingCard{
					ID:       booking.ID,
					UserID:   booking.UserID,
					UserName: booking.UserName,
					Start:    booking.StartTime,
					End:      booking.EndTime,
					Status:   string(booking.Status),
					Paid:     booking.PaymentStatus == domain.PaymentStatusPaid,
				}
			}
			cells = append(cells, cell)

		case session != nil:
			cell := Cell{
				Hour:          hour,
				Kind:          CellClass,
				IsStart:       domain.IsStartHour(session.StartTime, hour),
				DisplayStatus: classDisplayStatus(session, now),
			}
			if cell.IsStart {
				cell.Class = &ClassCard{
					ID:             session.ID,
					Title:          session.Title,
					InstructorName: session.InstructorName,
					Start:          session.StartTime,
					End:            session.EndTime,
					MaxCapacity:    session.MaxCapacity,
					EnrolledCount:  session.EnrolledCount,
					Status:         string(session.Status),
				}
			}
			cells = append(cells, cell)

		default:
			// Свободная ячейка: доступна для бронирования
			cells = append(cells, Cell{Hour: hour, Kind: CellFree})
		}
	}

	return cells, breachHours
}
