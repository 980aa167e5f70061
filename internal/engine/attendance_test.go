package engine

import (
	"testing"
	"time"

	"github.com/balkashynov/wrkday/internal/models"
)

func TestCheckIn_OpensTodayRecord(t *testing.T) {
	e, c := newTestEngine()
	c.set(9, 0)

	rec, err := e.CheckIn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.CheckInTime.Equal(c.t) {
		t.Errorf("check-in time = %v, want %v", rec.CheckInTime, c.t)
	}
	if rec.BreakMinutesTotal != 0 {
		t.Errorf("expected zero break minutes, got %d", rec.BreakMinutesTotal)
	}
	if rec.Status != models.AttendancePresent {
		t.Errorf("status = %s, want present", rec.Status)
	}
	if !rec.Open() {
		t.Error("new record should be open")
	}
	if e.CurrentStatus() != models.SessionIn {
		t.Errorf("status = %s, want in", e.CurrentStatus())
	}
}

func TestCheckIn_TwiceFails(t *testing.T) {
	e, _ := newTestEngine()

	if _, err := e.CheckIn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := e.CheckIn()
	if CodeOf(err) != CodeAlreadyCheckedIn {
		t.Fatalf("expected AlreadyCheckedIn, got %v", err)
	}
}

func TestCheckIn_AfterCheckOutSameDayFails(t *testing.T) {
	e, c := newTestEngine()
	c.set(9, 0)
	if _, err := e.CheckIn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.set(17, 0)
	if _, err := e.CheckOut(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only one opening per day.
	_, err := e.CheckIn()
	if CodeOf(err) != CodeAlreadyCheckedIn {
		t.Fatalf("expected AlreadyCheckedIn, got %v", err)
	}

	// The next day opens fresh.
	c.nextDay()
	if _, err := e.CheckIn(); err != nil {
		t.Fatalf("unexpected error on next day: %v", err)
	}
}

func TestCheckOut_WithoutCheckInFails(t *testing.T) {
	e, _ := newTestEngine()

	_, err := e.CheckOut()
	if CodeOf(err) != CodeNotCheckedIn {
		t.Fatalf("expected NotCheckedIn, got %v", err)
	}
}

func TestTakeBreak_RequiresOpenSession(t *testing.T) {
	e, _ := newTestEngine()

	_, err := e.TakeBreak(30)
	if CodeOf(err) != CodeNotCheckedIn {
		t.Fatalf("expected NotCheckedIn, got %v", err)
	}
}

func TestTakeBreak_RejectsNonPositiveMinutes(t *testing.T) {
	e, _ := newTestEngine()
	if _, err := e.CheckIn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, minutes := range []int{0, -5} {
		_, err := e.TakeBreak(minutes)
		if CodeOf(err) != CodeInvalidDuration {
			t.Errorf("TakeBreak(%d): expected InvalidDuration, got %v", minutes, err)
		}
	}
}

func TestTakeBreak_Accumulates(t *testing.T) {
	e, _ := newTestEngine()
	if _, err := e.CheckIn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e.TakeBreak(15)
	rec, err := e.TakeBreak(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.BreakMinutesTotal != 35 {
		t.Errorf("break total = %d, want 35", rec.BreakMinutesTotal)
	}
	// Breaks are accounting events, status stays in.
	if e.CurrentStatus() != models.SessionIn {
		t.Errorf("status = %s, want in", e.CurrentStatus())
	}
}

func TestCheckOut_DerivesTotalHours(t *testing.T) {
	// Check in 09:00, 30 minute break, check out 17:30 -> 8.0 hours.
	e, c := newTestEngine()
	c.set(9, 0)
	if _, err := e.CheckIn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.TakeBreak(30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.set(17, 30)
	rec, err := e.CheckOut()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.TotalHours != 8.0 {
		t.Errorf("total hours = %v, want 8.0", rec.TotalHours)
	}
	if rec.Open() {
		t.Error("record should be closed after check-out")
	}
	if e.CurrentStatus() != models.SessionOut {
		t.Errorf("status = %s, want out", e.CurrentStatus())
	}
}

func TestCheckOut_ClampsNegativeHoursToZero(t *testing.T) {
	e, c := newTestEngine()
	c.set(9, 0)
	if _, err := e.CheckIn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Breaks exceed the elapsed interval.
	if _, err := e.TakeBreak(120); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.set(10, 0)
	rec, err := e.CheckOut()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.TotalHours != 0 {
		t.Errorf("total hours = %v, want 0", rec.TotalHours)
	}
}

func TestTodayRecord_NilBeforeFirstCheckIn(t *testing.T) {
	e, _ := newTestEngine()
	if rec := e.TodayRecord(); rec != nil {
		t.Fatalf("expected nil, got %+v", rec)
	}
}

func TestHistoryAndMonthlySummary(t *testing.T) {
	e, c := newTestEngine()

	// Three 8h days in August, one left open on the fourth.
	for i := 0; i < 3; i++ {
		c.set(9, 0)
		if _, err := e.CheckIn(); err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
		c.set(17, 0)
		if _, err := e.CheckOut(); err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
		c.nextDay()
	}
	c.set(9, 0)
	if _, err := e.CheckIn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history := e.History(time.August, 2026)
	if len(history) != 4 {
		t.Fatalf("expected 4 records in history, got %d", len(history))
	}
	if len(e.History(time.July, 2026)) != 0 {
		t.Error("expected no records in July")
	}

	// The open record is excluded from the summary.
	sum := e.MonthlySummary(time.August, 2026)
	if sum.Days != 3 {
		t.Errorf("summary days = %d, want 3", sum.Days)
	}
	if sum.TotalHours != 24.0 {
		t.Errorf("summary total = %v, want 24.0", sum.TotalHours)
	}
	if sum.AvgHours != 8.0 {
		t.Errorf("summary average = %v, want 8.0", sum.AvgHours)
	}
}

func TestMonthlySummary_EmptyMonth(t *testing.T) {
	e, _ := newTestEngine()

	sum := e.MonthlySummary(time.January, 2026)
	if sum.Days != 0 || sum.TotalHours != 0 || sum.AvgHours != 0 {
		t.Errorf("expected zero summary, got %+v", sum)
	}
}
