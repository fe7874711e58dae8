package statemachine

import (
	"testing"

	"github.com/AfanKulaglic/saraya-menu-api/models"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    models.VenueStatus
		to      models.VenueStatus
		actor   string
		allowed bool
	}{
		{"owner publishes draft", models.StatusDraft, models.StatusLive, "owner", true},
		{"owner unpublishes", models.StatusLive, models.StatusDraft, "owner", true},
		{"owner archives draft", models.StatusDraft, models.StatusArchived, "owner", true},
		{"owner archives live", models.StatusLive, models.StatusArchived, "owner", true},
		{"admin suspends live", models.StatusLive, models.StatusSuspended, "admin", true},
		{"admin restores suspended", models.StatusSuspended, models.StatusLive, "admin", true},
		{"owner cannot suspend", models.StatusLive, models.StatusSuspended, "owner", false},
		{"admin cannot publish for owner", models.StatusDraft, models.StatusLive, "admin", false},
		{"archived is terminal", models.StatusArchived, models.StatusDraft, "owner", false},
		{"suspended owner cannot unpublish", models.StatusSuspended, models.StatusDraft, "owner", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CanTransition(tt.from, tt.to, tt.actor)
			if tt.allowed && err != nil {
				t.Fatalf("transition rejected: %v", err)
			}
			if !tt.allowed && err == nil {
				t.Fatalf("transition %s → %s by %s should be rejected", tt.from, tt.to, tt.actor)
			}
		})
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	t.Parallel()

	if nexts := ValidTransitionsFrom(models.StatusArchived); len(nexts) != 0 {
		t.Fatalf("ARCHIVED should be terminal, got %v", nexts)
	}

	nexts := ValidTransitionsFrom(models.StatusLive)
	want := map[models.VenueStatus]bool{
		models.StatusDraft:     true,
		models.StatusSuspended: true,
		models.StatusArchived:  true,
	}
	if len(nexts) != len(want) {
		t.Fatalf("ValidTransitionsFrom(LIVE) = %v, want %v states", nexts, len(want))
	}
	for _, s := range nexts {
		if !want[s] {
			t.Fatalf("unexpected next state %s from LIVE", s)
		}
	}
}
