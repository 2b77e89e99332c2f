package engine

import (
	"context"
	"testing"

	appErrors "github.com/caretech/shiftplan/internal/errors"
)

func TestGenerateScheduleRejectsEmptyStaff(t *testing.T) {
	_, err := GenerateSchedule(context.Background(), Input{
		Staff: nil,
		Tasks: []TaskInput{{ID: "t1", Name: "清掃"}},
		Year:  2026, Month: 1,
	})
	if !appErrors.Is(err, appErrors.ErrInvalidScheduleRequest) {
		t.Errorf("expected ErrInvalidScheduleRequest for empty staff, got %v", err)
	}
}

func TestGenerateScheduleRejectsEmptyTasks(t *testing.T) {
	_, err := GenerateSchedule(context.Background(), Input{
		Staff: []StaffInput{{ID: "s1", Name: "A"}},
		Tasks: nil,
		Year:  2026, Month: 1,
	})
	if !appErrors.Is(err, appErrors.ErrInvalidScheduleRequest) {
		t.Errorf("expected ErrInvalidScheduleRequest for empty tasks, got %v", err)
	}
}

func TestGenerateScheduleRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateSchedule(ctx, Input{
		Staff: []StaffInput{{ID: "s1", Name: "A"}},
		Tasks: []TaskInput{{ID: "t1", Name: "清掃"}},
		Year:  2026, Month: 1,
	})
	if err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}
