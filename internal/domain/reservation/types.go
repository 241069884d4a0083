package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

type Action string

const (
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
	ActionCancel   Action = "cancel"
)

// transitions is the full lifecycle graph. Pairs absent from the table are
// rejected with ErrInvalidState; the graph only moves forward.
var transitions = map[Status]map[Action]Status{
	StatusPending: {
		ActionCheckIn: StatusConfirmed,
		ActionCancel:  StatusCancelled,
	},
	StatusConfirmed: {
		ActionCheckOut: StatusCompleted,
		ActionCancel:   StatusCancelled,
	},
}

func (s Status) next(action Action) (Status, error) {
	if to, ok := transitions[s][action]; ok {
		return to, nil
	}
	return "", ErrInvalidState
}
