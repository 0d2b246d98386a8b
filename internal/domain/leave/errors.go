package leave

import "errors"

var (
	ErrLeaveNotFound = errors.New("leave record not found")
)
