package db

import (
	"testing"
	"time"

	"github.com/balkashynov/wrkday/internal/models"
)

func setupTestDB(t *testing.T) *Store {
	t.Helper()
	t.Setenv("WRKDAY_HOME", t.TempDir())
	if err := Initialize(); err != nil {
		t.Fatalf("failed to initialize database: %v", err)
	}
	t.Cleanup(func() { Close() })
	return NewStore()
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := setupTestDB(t)

	checkIn := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8*time.Hour + 30*time.Minute)
	due := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	projectID := uint(1)

	state := &models.State{
		Records: []models.AttendanceRecord{{
			ID:                1,
			Date:              time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
			CheckInTime:       checkIn,
			CheckOutTime:      &checkOut,
			BreakMinutesTotal: 30,
			Status:            models.AttendancePresent,
			TotalHours:        8.0,
		}},
		Balances: []models.LeaveBalance{
			{ID: 1, Category: models.LeaveVacation, TotalDays: 10, UsedDays: 2.5},
		},
		Leaves: []models.LeaveRequest{{
			ID:               1,
			Category:         models.LeaveVacation,
			StartDate:        time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC),
			HalfDay:          false,
			Reason:           "family trip",
			EmergencyContact: "+1 555 0100",
			Days:             5,
			Status:           models.LeavePending,
		}},
		Tasks: []models.Task{{
			ID:        1,
			Title:     "Quarterly report",
			Status:    models.TaskInProgress,
			Progress:  40,
			Priority:  2,
			Due:       &due,
			ProjectID: &projectID,
			Tags:      []models.Tag{{Name: "finance"}, {Name: "q3"}},
		}},
		Projects: []models.Project{{
			ID:          1,
			Name:        "reporting",
			Status:      models.ProjectActive,
			TeamMembers: []string{"dana", "jesse"},
		}},
	}

	if err := store.Save(state); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(loaded.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(loaded.Records))
	}
	rec := loaded.Records[0]
	if rec.TotalHours != 8.0 || rec.BreakMinutesTotal != 30 {
		t.Errorf("record fields lost: %+v", rec)
	}
	if rec.CheckOutTime == nil || !rec.CheckOutTime.Equal(checkOut) {
		t.Errorf("check-out time lost: %v", rec.CheckOutTime)
	}

	if len(loaded.Balances) != 1 || loaded.Balances[0].UsedDays != 2.5 {
		t.Errorf("balance lost: %+v", loaded.Balances)
	}

	if len(loaded.Leaves) != 1 {
		t.Fatalf("expected 1 leave, got %d", len(loaded.Leaves))
	}
	leave := loaded.Leaves[0]
	if leave.Days != 5 || leave.Status != models.LeavePending || leave.EmergencyContact != "+1 555 0100" {
		t.Errorf("leave fields lost: %+v", leave)
	}

	if len(loaded.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(loaded.Tasks))
	}
	task := loaded.Tasks[0]
	if task.Progress != 40 || task.Status != models.TaskInProgress {
		t.Errorf("task fields lost: %+v", task)
	}
	if task.ProjectID == nil || *task.ProjectID != 1 {
		t.Errorf("project link lost: %+v", task.ProjectID)
	}
	if len(task.Tags) != 2 {
		t.Errorf("tags lost: %+v", task.Tags)
	}
	if task.Due == nil || !task.Due.Equal(due) {
		t.Errorf("due date lost: %v", task.Due)
	}

	if len(loaded.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(loaded.Projects))
	}
	if got := loaded.Projects[0].TeamMembers; len(got) != 2 || got[0] != "dana" {
		t.Errorf("team members lost: %+v", got)
	}
}

func TestStore_SaveIsIdempotentForTags(t *testing.T) {
	store := setupTestDB(t)

	state := &models.State{
		Tasks: []models.Task{{
			ID:    1,
			Title: "x",
			Tags:  []models.Tag{{Name: "finance"}},
		}},
	}

	// Saving twice must not duplicate the shared tag row.
	if err := store.Save(state); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := store.Save(state); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	var count int64
	if err := DB.Model(&models.Tag{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 tag row, got %d", count)
	}
}

func TestStore_Reset(t *testing.T) {
	store := setupTestDB(t)

	state := &models.State{
		Balances: []models.LeaveBalance{{ID: 1, Category: models.LeaveSick, TotalDays: 7}},
		Tasks:    []models.Task{{ID: 1, Title: "x"}},
	}
	if err := store.Save(state); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Balances) != 0 || len(loaded.Tasks) != 0 {
		t.Errorf("expected empty state after reset, got %+v", loaded)
	}
}
