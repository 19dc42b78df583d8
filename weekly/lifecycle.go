package weekly

import (
	"errors"

	"mojamalca-api/models"
)

// Transition defines a valid order state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "employee", "admin"
}

// validTransitions is the authoritative lifecycle definition. A submitted
// order may be amended exactly once — AMENDED has no outgoing edges, which
// is what enforces the single-edit budget server-side.
var validTransitions = []Transition{
	{From: models.StatusSubmitted, To: models.StatusAmended, Actor: "employee"},
	{From: models.StatusSubmitted, To: models.StatusAmended, Actor: "admin"},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransition checks if a given actor can move an order between states
func CanTransition(from, to models.OrderStatus, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	if from == models.StatusAmended {
		return errors.New("order was already amended once and is now locked")
	}
	return errors.New("invalid transition: " + string(from) + " -> " + string(to) +
		" is not allowed for actor '" + actor + "'")
}

// CanAmend reports whether an order in the given state still has its
// single amendment available to the actor.
func CanAmend(status models.OrderStatus, actor string) error {
	return CanTransition(status, models.StatusAmended, actor)
}
