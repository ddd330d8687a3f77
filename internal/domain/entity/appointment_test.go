package entity

import (
	"testing"
	"time"
)

func TestParseAppointmentStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   AppointmentStatus
		wantOK bool
	}{
		{"SCHEDULED", AppointmentStatusScheduled, true},
		{"COMPLETED", AppointmentStatusCompleted, true},
		{"CANCELED", AppointmentStatusCanceled, true},
		{"NO_SHOW", AppointmentStatusNoShow, true},
		{"scheduled", "", false},
		{"DONE", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseAppointmentStatus(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseAppointmentStatus(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{"scheduled to completed", AppointmentStatusScheduled, AppointmentStatusCompleted, true},
		{"scheduled to canceled", AppointmentStatusScheduled, AppointmentStatusCanceled, true},
		{"scheduled to no-show", AppointmentStatusScheduled, AppointmentStatusNoShow, true},
		{"scheduled to scheduled", AppointmentStatusScheduled, AppointmentStatusScheduled, false},
		{"completed is terminal", AppointmentStatusCompleted, AppointmentStatusCanceled, false},
		{"canceled is terminal", AppointmentStatusCanceled, AppointmentStatusScheduled, false},
		{"no-show is terminal", AppointmentStatusNoShow, AppointmentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			if got := a.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	for _, status := range []AppointmentStatus{AppointmentStatusCompleted, AppointmentStatusCanceled, AppointmentStatusNoShow} {
		a := &Appointment{Status: status}
		if !a.IsTerminal() {
			t.Errorf("IsTerminal() = false for %s, want true", status)
		}
	}

	a := &Appointment{Status: AppointmentStatusScheduled}
	if a.IsTerminal() {
		t.Error("IsTerminal() = true for SCHEDULED, want false")
	}
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	appointment := &Appointment{
		StartTime: base,
		EndTime:   base.Add(30 * time.Minute),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", base, base.Add(30 * time.Minute), true},
		{"partial overlap at end", base.Add(15 * time.Minute), base.Add(45 * time.Minute), true},
		{"partial overlap at start", base.Add(-15 * time.Minute), base.Add(15 * time.Minute), true},
		{"contained", base.Add(10 * time.Minute), base.Add(20 * time.Minute), true},
		{"containing", base.Add(-1 * time.Hour), base.Add(2 * time.Hour), true},
		{"back-to-back after", base.Add(30 * time.Minute), base.Add(time.Hour), false},
		{"back-to-back before", base.Add(-30 * time.Minute), base, false},
		{"disjoint", base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appointment.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
