package archive

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Lifecycle states. These must remain untyped string constants for
// statekit.StateID compatibility.
const (
	StateDraft    = "Draft"
	StateReviewed = "Reviewed"
	StateReleased = "Released"
	StateObsolete = "Obsolete"
)

func init() {
	// Keep the machine states in sync with the Maturity enum.
	if StateDraft != string(MaturityDraft) ||
		StateReviewed != string(MaturityReviewed) ||
		StateReleased != string(MaturityReleased) ||
		StateObsolete != string(MaturityObsolete) {
		panic("maturity state machine out of sync with maturity enum")
	}
}

// Lifecycle events.
const (
	EventReview   = "review"
	EventRelease  = "release"
	EventRework   = "rework"
	EventObsolete = "obsolete"
)

// EventForTarget returns the lifecycle event that leads into the target
// maturity. Draft is only ever re-entered through rework.
func EventForTarget(target Maturity) (string, bool) {
	switch target {
	case MaturityDraft:
		return EventRework, true
	case MaturityReviewed:
		return EventReview, true
	case MaturityReleased:
		return EventRelease, true
	case MaturityObsolete:
		return EventObsolete, true
	default:
		return "", false
	}
}

// DocumentContext carries the document identity through the machine.
type DocumentContext struct {
	TemplateID string
}

// MaturityStateMachine drives a single document through its review
// lifecycle. Draft documents get reviewed, reviewed documents get released,
// released documents become obsolete. Rework sends a document back to draft
// from anywhere except the obsolete terminal state.
type MaturityStateMachine struct {
	interpreter *statekit.Interpreter[DocumentContext]
}

// NewMaturityStateMachine builds a machine starting at the given maturity.
func NewMaturityStateMachine(initial Maturity, templateID string) (*MaturityStateMachine, error) {
	if !initial.IsValid() {
		return nil, fmt.Errorf("invalid initial maturity: %s", initial)
	}

	builder := statekit.NewMachine[DocumentContext]("document-maturity").
		WithInitial(statekit.StateID(initial)).
		WithContext(DocumentContext{TemplateID: templateID})

	builder.State(StateDraft).
		On(EventReview).Target(StateReviewed).
		Done()

	builder.State(StateReviewed).
		On(EventRelease).Target(StateReleased).
		On(EventRework).Target(StateDraft).
		Done()

	builder.State(StateReleased).
		On(EventObsolete).Target(StateObsolete).
		On(EventRework).Target(StateDraft).
		Done()

	// Obsolete is terminal.
	builder.State(StateObsolete).Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build maturity machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &MaturityStateMachine{interpreter: interpreter}, nil
}

// Transition applies a lifecycle event. It fails if the event is not allowed
// in the current state.
func (sm *MaturityStateMachine) Transition(event string) error {
	before := sm.interpreter.State().Value
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.interpreter.State().Value

	if before == after {
		return fmt.Errorf("the action %q is not allowed while the document is %q", event, before)
	}
	return nil
}

// Current returns the current state identifier.
func (sm *MaturityStateMachine) Current() string {
	return string(sm.interpreter.State().Value)
}

// CurrentMaturity returns the current state as a Maturity.
func (sm *MaturityStateMachine) CurrentMaturity() Maturity {
	return Maturity(sm.Current())
}

// IsFinal returns true once the document has reached a terminal state.
func (sm *MaturityStateMachine) IsFinal() bool {
	return sm.CurrentMaturity().IsFinal()
}
