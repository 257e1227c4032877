package paths

import (
	"errors"
	"fmt"
)

// ErrInvalidPathState is returned when a path is used in a way its current
// state does not allow, such as advancing it before it was started, or when
// it was configured with segments that cannot describe a motion.
var ErrInvalidPathState = errors.New("paths: invalid path state")

// ErrUnreachableTarget is returned when a physics path never reaches a
// requested displacement.
var ErrUnreachableTarget = errors.New("paths: target displacement is never reached")

// State is the lifecycle state of a path.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Axis selects a coordinate of a point or vector.
type Axis int

const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}
