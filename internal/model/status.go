package model

import "fmt"

// UiStatus discriminates the variants of MarsUiState
type UiStatus string

const (
	// UiStatusLoading means a retrieval is in flight
	UiStatusLoading UiStatus = "Loading"

	// UiStatusSuccess means the last retrieval returned photos
	UiStatusSuccess UiStatus = "Success"

	// UiStatusError means the last retrieval failed at the transport level
	UiStatusError UiStatus = "Error"
)

// String returns the string representation of UiStatus
func (s UiStatus) String() string {
	return string(s)
}

// MarsUiState is the outcome of the most recent retrieval attempt. Exactly one
// variant is active; Photos is only meaningful for Success. Build values with
// Loading, Success and Error rather than by hand.
type MarsUiState struct {
	Status UiStatus
	Photos string
}

// Loading returns the initial state
func Loading() MarsUiState {
	return MarsUiState{Status: UiStatusLoading}
}

// Success returns a success state carrying a human readable summary
func Success(photos string) MarsUiState {
	return MarsUiState{Status: UiStatusSuccess, Photos: photos}
}

// Error returns the failure state. It carries no detail.
func Error() MarsUiState {
	return MarsUiState{Status: UiStatusError}
}

// SuccessSummary formats the summary published for a successful retrieval
func SuccessSummary(count int) string {
	return fmt.Sprintf("Success: %d Mars photos retrieved", count)
}

// IsFinished returns true if the state is terminal for its attempt
func (s MarsUiState) IsFinished() bool {
	return s.Status == UiStatusSuccess || s.Status == UiStatusError
}

// Match calls exactly one handler for the active variant. It panics on a
// status outside the closed set.
func (s MarsUiState) Match(onLoading func(), onSuccess func(photos string), onError func()) {
	switch s.Status {
	case UiStatusLoading:
		onLoading()
	case UiStatusSuccess:
		onSuccess(s.Photos)
	case UiStatusError:
		onError()
	default:
		panic(fmt.Sprintf("model: unknown ui status %q", string(s.Status)))
	}
}

// String returns a compact description for logs
func (s MarsUiState) String() string {
	if s.Status == UiStatusSuccess {
		return fmt.Sprintf("Success(%q)", s.Photos)
	}
	return s.Status.String()
}
