package checkout

import (
	"fmt"

	"zenvy-storefront/internal/models"
)

// Phase is the checkout machine's current position. One checkout is in
// flight per session at most.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCreatingOrder
	PhaseLoadingGateway
	PhaseAwaitingGateway
	PhaseVerifying
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCreatingOrder:
		return "creating_order"
	case PhaseLoadingGateway:
		return "loading_gateway"
	case PhaseAwaitingGateway:
		return "awaiting_gateway"
	case PhaseVerifying:
		return "verifying"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// State is the tagged checkout state. Order is set from order creation
// onward, OrderID only on success, Reason only on failure.
type State struct {
	Phase   Phase
	Order   *models.GatewayOrder
	OrderID string
	Reason  string
}

// Event drives the checkout machine
type Event interface {
	isEvent()
}

// EventBegin starts a fresh checkout from a resting phase
type EventBegin struct{}

// EventOrderCreated records the gateway order handle from the backend
type EventOrderCreated struct {
	Order *models.GatewayOrder
}

// EventGatewayReady marks the checkout script as reachable
type EventGatewayReady struct{}

// EventVerifying marks the signed success response as received and
// forwarded for verification.
type EventVerifying struct{}

// EventVerified finalizes a successful checkout with the confirmed order
type EventVerified struct {
	OrderID string
}

// EventFailed terminates the checkout with a human-readable reason
type EventFailed struct {
	Reason string
}

func (EventBegin) isEvent()        {}
func (EventOrderCreated) isEvent() {}
func (EventGatewayReady) isEvent() {}
func (EventVerifying) isEvent()    {}
func (EventVerified) isEvent()     {}
func (EventFailed) isEvent()       {}

// resting reports whether a new checkout may begin from this phase
func (p Phase) resting() bool {
	return p == PhaseIdle || p == PhaseSucceeded || p == PhaseFailed
}

// Next is the pure transition function. It returns the successor state or
// an error when the event is not valid in the current phase.
func Next(state State, event Event) (State, error) {
	switch ev := event.(type) {
	case EventBegin:
		if !state.Phase.resting() {
			return state, fmt.Errorf("checkout already in progress (phase %s)", state.Phase)
		}
		return State{Phase: PhaseCreatingOrder}, nil

	case EventOrderCreated:
		if state.Phase != PhaseCreatingOrder {
			return state, transitionError(state.Phase, event)
		}
		return State{Phase: PhaseLoadingGateway, Order: ev.Order}, nil

	case EventGatewayReady:
		if state.Phase != PhaseLoadingGateway {
			return state, transitionError(state.Phase, event)
		}
		state.Phase = PhaseAwaitingGateway
		return state, nil

	case EventVerifying:
		if state.Phase != PhaseAwaitingGateway {
			return state, transitionError(state.Phase, event)
		}
		state.Phase = PhaseVerifying
		return state, nil

	case EventVerified:
		if state.Phase != PhaseVerifying {
			return state, transitionError(state.Phase, event)
		}
		return State{Phase: PhaseSucceeded, Order: state.Order, OrderID: ev.OrderID}, nil

	case EventFailed:
		switch state.Phase {
		case PhaseCreatingOrder, PhaseLoadingGateway, PhaseAwaitingGateway, PhaseVerifying:
			return State{Phase: PhaseFailed, Order: state.Order, Reason: ev.Reason}, nil
		}
		return state, transitionError(state.Phase, event)
	}

	return state, fmt.Errorf("unknown checkout event %T", event)
}

func transitionError(phase Phase, event Event) error {
	return fmt.Errorf("invalid checkout event %T in phase %s", event, phase)
}
