package statemachine

import (
	"errors"

	"github.com/AfanKulaglic/saraya-menu-api/models"
)

// Transition defines a valid publication state change and who can perform it
type Transition struct {
	From  models.VenueStatus
	To    models.VenueStatus
	Actor string // "owner", "admin"
}

// validTransitions is the authoritative lifecycle definition
var validTransitions = []Transition{
	// Owner publishes the storefront
	{From: models.StatusDraft, To: models.StatusLive, Actor: "owner"},
	// Owner takes the storefront offline to edit
	{From: models.StatusLive, To: models.StatusDraft, Actor: "owner"},
	// Admin suspends a live venue, and restores it
	{From: models.StatusLive, To: models.StatusSuspended, Actor: "admin"},
	{From: models.StatusSuspended, To: models.StatusLive, Actor: "admin"},
	// Owner retires the venue; ARCHIVED is terminal
	{From: models.StatusDraft, To: models.StatusArchived, Actor: "owner"},
	{From: models.StatusLive, To: models.StatusArchived, Actor: "owner"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.VenueStatus
	To    models.VenueStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.VenueStatus) []models.VenueStatus {
	var nexts []models.VenueStatus
	seen := map[models.VenueStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.VenueStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.VenueStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full lifecycle for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
