package domain

import "errors"

// Error is a domain error identified by a stable code. The code is what
// adapters use to pick a user-facing message.
type Error struct {
	code string
	msg  string
}

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable identifier of the error.
func (e *Error) Code() string { return e.code }

// Domain errors.
var (
	ErrParticipantNotFound  = newError("participant_not_found", "participant non trouvé")
	ErrParticipantNotUnique = newError("participant_not_unique", "plusieurs participants correspondent")
)

// Code returns the code of the domain error wrapped in err, or "" when err
// does not carry one.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
