package shared

import "errors"

// InvalidCardError reports a malformed rank or suit token during parsing.
// It is recoverable: interactive callers re-prompt on it.
type InvalidCardError struct {
	Token string
}

func (e *InvalidCardError) Error() string {
	return "invalid card: " + e.Token
}

// IllegalMoveError reports a violation of the rules contract: playing a
// card outside the legal set, driving a trick out of order, or querying an
// incomplete trick. It always signals an agent or caller bug and aborts
// the current game; there is no retry.
type IllegalMoveError string

func (e IllegalMoveError) Error() string { return string(e) }

// IsIllegalMove reports whether err is an IllegalMoveError.
func IsIllegalMove(err error) bool {
	var im IllegalMoveError
	return errors.As(err, &im)
}
