package view

// Phase is the lifecycle stage of a view's most recent request
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failure
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	}
	return "unknown"
}

// RequestState is Idle | Loading | Success(Payload) | Failure(Err).
// Payload is only meaningful in Success and Err only in Failure.
type RequestState[T any] struct {
	Phase   Phase
	Payload T
	Err     error
}

func idleState[T any]() RequestState[T] {
	return RequestState[T]{Phase: Idle}
}

func loadingState[T any]() RequestState[T] {
	return RequestState[T]{Phase: Loading}
}

func successState[T any](payload T) RequestState[T] {
	return RequestState[T]{Phase: Success, Payload: payload}
}

func failureState[T any](err error) RequestState[T] {
	return RequestState[T]{Phase: Failure, Err: err}
}
