package event

// EventType represents the type of puzzle event
type EventType int

const (
	// Reserved so the zero value is never a valid event
	EventNone EventType = iota

	// === Interaction Event ===

	// EventDragStarted signals an entity acquired the drag lock
	// Trigger: EntityStateMachine.BeginDrag
	// Consumer: AudioSystem, Renderer | Payload: *DragPayload
	EventDragStarted

	// EventDragEnded signals the drag lock was released without a snap
	// Trigger: EntityStateMachine.EndDrag (no committable zone)
	// Consumer: AudioSystem | Payload: *DragPayload
	EventDragEnded

	// EventSnapPreview signals the preview candidate zone changed during a drag
	// Trigger: EntityStateMachine.UpdateDrag
	// Consumer: Renderer | Payload: *SnapPayload (Zone empty when none)
	EventSnapPreview

	// EventSnapCommitted signals a zone was claimed on release
	// Trigger: EntityStateMachine.EndDrag
	// Consumer: AudioSystem | Payload: *SnapPayload
	EventSnapCommitted

	// === Sequence Event ===

	// EventPhaseCompleted signals one timed phase reached its target
	// Trigger: PhaseSequencer | Consumer: AudioSystem | Payload: *PhasePayload
	EventPhaseCompleted

	// EventSequenceCancelled signals an in-progress sequence was cut short
	// Trigger: Session.CancelSequence | Consumer: - | Payload: *PhasePayload
	EventSequenceCancelled

	// EventEntityLocked signals Sequencing -> Locked
	// Trigger: EntityStateMachine.SequenceComplete
	// Consumer: AudioSystem | Payload: *LockPayload
	EventEntityLocked

	// === Progress Event ===

	// EventProgressIncremented signals a counter moved
	// Trigger: ProgressTracker | Consumer: Renderer | Payload: *ProgressPayload
	EventProgressIncremented

	// EventEntitySpawned signals a clone was created from a template
	// Trigger: CloneSpawner | Consumer: AudioSystem | Payload: *SpawnPayload
	EventEntitySpawned

	// EventPuzzleCompleted is raised exactly once per session
	// Trigger: ProgressTracker edge | Consumer: AudioSystem | Payload: *PuzzlePayload
	EventPuzzleCompleted

	// EventSceneTransition signals the scene loader was invoked
	// Trigger: Session.Tick after transition delay | Consumer: - | Payload: *PuzzlePayload
	EventSceneTransition

	// EventPuzzleReset signals all session state returned to its initial configuration
	// Trigger: Session.Reset | Consumer: AudioSystem, Renderer | Payload: *PuzzlePayload
	EventPuzzleReset
)

var typeNames = map[EventType]string{
	EventNone:                "EventNone",
	EventDragStarted:         "EventDragStarted",
	EventDragEnded:           "EventDragEnded",
	EventSnapPreview:         "EventSnapPreview",
	EventSnapCommitted:       "EventSnapCommitted",
	EventPhaseCompleted:      "EventPhaseCompleted",
	EventSequenceCancelled:   "EventSequenceCancelled",
	EventEntityLocked:        "EventEntityLocked",
	EventProgressIncremented: "EventProgressIncremented",
	EventEntitySpawned:       "EventEntitySpawned",
	EventPuzzleCompleted:     "EventPuzzleCompleted",
	EventSceneTransition:     "EventSceneTransition",
	EventPuzzleReset:         "EventPuzzleReset",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "EventUnknown"
}

// GameEvent is a queued notification produced by the puzzle core
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64 // Session tick number when the event was pushed
}
