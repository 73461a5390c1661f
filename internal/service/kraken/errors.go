package kraken

import (
	"errors"

	drepo "KrakenLTP/internal/domain/repository"
)

// Kind classifies a failed ticker fetch.
type Kind int

const (
	// KindConnect: the upstream could not be reached (DNS, TCP, TLS, timeout).
	KindConnect Kind = iota + 1
	// KindFetchFailed: a response arrived but is not a ticker envelope.
	KindFetchFailed
	// KindIncorrectResponse: the envelope carried a non-empty error list.
	KindIncorrectResponse
)

var (
	ErrConnect           = errors.New("connect is failed")
	ErrFetchFailed       = errors.New("fetching is failed")
	ErrIncorrectResponse = errors.New("response with error")
)

// Error is returned by Client.Fetch for every failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	return e.sentinel().Error() + ": " + e.Msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

// Outcome returns the metrics label for the error's kind.
func (e *Error) Outcome() string {
	switch e.Kind {
	case KindConnect:
		return drepo.OutcomeConnect
	case KindFetchFailed:
		return drepo.OutcomeFetchFailed
	default:
		return drepo.OutcomeIncorrectResponse
	}
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindConnect:
		return ErrConnect
	case KindFetchFailed:
		return ErrFetchFailed
	default:
		return ErrIncorrectResponse
	}
}

func connectError(err error) *Error {
	return &Error{Kind: KindConnect, Msg: err.Error(), Err: err}
}

func fetchFailedError(err error) *Error {
	return &Error{Kind: KindFetchFailed, Msg: err.Error(), Err: err}
}

func incorrectResponseError(msg string) *Error {
	return &Error{Kind: KindIncorrectResponse, Msg: msg}
}
