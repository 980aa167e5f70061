package engine

import (
	"math"
	"time"

	"github.com/balkashynov/wrkday/internal/clock"
	"github.com/balkashynov/wrkday/internal/models"
)

// MonthSummary aggregates the closed attendance records of one month.
type MonthSummary struct {
	Month      time.Month
	Year       int
	Days       int     // closed records counted
	TotalHours float64
	AvgHours   float64 // per closed record, 0 when Days == 0
}

// CheckIn opens today's attendance record. Only one opening per day: it
// fails with AlreadyCheckedIn whether today's record is still open or
// already closed.
func (e *Engine) CheckIn() (*models.AttendanceRecord, error) {
	now := e.clock.Now()
	today := clock.DayOf(now)

	if rec := e.recordOn(today); rec != nil {
		if rec.Open() {
			return nil, errAlreadyCheckedIn("already checked in today")
		}
		return nil, errAlreadyCheckedIn("already checked out today, only one session per day")
	}

	e.state.Records = append(e.state.Records, models.AttendanceRecord{
		ID:                nextID(e.state.Records, func(r models.AttendanceRecord) uint { return r.ID }),
		Date:              today,
		CheckInTime:       now,
		BreakMinutesTotal: 0,
		Status:            models.AttendancePresent,
	})
	rec := &e.state.Records[len(e.state.Records)-1]

	e.persist()
	return rec, nil
}

// TakeBreak adds minutes to today's break total. Break time is a
// cumulative accounting event, not a second session: the employee stays
// checked in.
func (e *Engine) TakeBreak(minutes int) (*models.AttendanceRecord, error) {
	if minutes <= 0 {
		return nil, errDuration("break minutes must be positive, got %d", minutes)
	}

	rec := e.openRecord()
	if rec == nil {
		return nil, errNotCheckedIn("not checked in, nothing to add a break to")
	}

	rec.BreakMinutesTotal += minutes
	e.persist()
	return rec, nil
}

// CheckOut closes today's record and freezes its derived total hours.
// The record is immutable afterwards.
func (e *Engine) CheckOut() (*models.AttendanceRecord, error) {
	rec := e.openRecord()
	if rec == nil {
		return nil, errNotCheckedIn("not checked in")
	}

	now := e.clock.Now()
	rec.CheckOutTime = &now
	rec.TotalHours = totalHours(rec.CheckInTime, now, rec.BreakMinutesTotal)

	e.persist()
	return rec, nil
}

// CurrentStatus derives the employee's attendance state for today from
// whether today's record exists and is open.
func (e *Engine) CurrentStatus() models.SessionState {
	if rec := e.recordOn(clock.Today(e.clock)); rec != nil && rec.Open() {
		return models.SessionIn
	}
	return models.SessionOut
}

// TodayRecord returns today's attendance record, or nil before the
// first check-in of the day.
func (e *Engine) TodayRecord() *models.AttendanceRecord {
	return e.recordOn(clock.Today(e.clock))
}

// History returns all attendance records in the given month, in stored
// order.
func (e *Engine) History(month time.Month, year int) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, rec := range e.state.Records {
		if clock.SameMonth(rec.Date, month, year) {
			out = append(out, rec)
		}
	}
	return out
}

// MonthlySummary totals hours over the month's closed records.
func (e *Engine) MonthlySummary(month time.Month, year int) MonthSummary {
	sum := MonthSummary{Month: month, Year: year}
	for _, rec := range e.state.Records {
		if !clock.SameMonth(rec.Date, month, year) || rec.Open() {
			continue
		}
		sum.Days++
		sum.TotalHours += rec.TotalHours
	}
	if sum.Days > 0 {
		sum.AvgHours = sum.TotalHours / float64(sum.Days)
	}
	return sum
}

// recordOn finds the record for a given day, nil if absent.
func (e *Engine) recordOn(day time.Time) *models.AttendanceRecord {
	for i := range e.state.Records {
		if clock.DayOf(e.state.Records[i].Date).Equal(clock.DayOf(day)) {
			return &e.state.Records[i]
		}
	}
	return nil
}

// openRecord finds today's record if it exists and is still open.
func (e *Engine) openRecord() *models.AttendanceRecord {
	rec := e.recordOn(clock.Today(e.clock))
	if rec == nil || !rec.Open() {
		return nil
	}
	return rec
}

// totalHours computes worked hours net of breaks, clamped at 0 for the
// case where logged breaks exceed the elapsed interval.
func totalHours(in, out time.Time, breakMinutes int) float64 {
	hours := out.Sub(in).Hours() - float64(breakMinutes)/60.0
	if hours < 0 {
		return 0
	}
	// Two decimal places is all the ledger ever renders.
	return math.Round(hours*100) / 100
}
