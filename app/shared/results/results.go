// Package results provides the generic operation result carried between the
// application layer and the event handlers. A service method reports either a
// success payload or a domain failure payload; infrastructure errors travel on
// the Error field and are never published.
package results

// OperationResult is the outcome of a single service operation.
type OperationResult[S any, F any] struct {
	Success S
	Failure F
	Error   error
}

// Succeed builds a success result.
func Succeed[S any, F any](payload S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: payload}
}

// Fail builds a domain-failure result. The error is returned alongside so
// callers can branch on sentinel errors without inspecting the payload.
func Fail[S any, F any](payload F, err error) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: payload, Error: err}
}
