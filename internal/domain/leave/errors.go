package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave application not found")
	ErrLeaveAlreadyProcessed = errors.New("leave application already approved or rejected")
	ErrOverlappingLeave      = errors.New("an approved or pending leave already covers this range")
)
