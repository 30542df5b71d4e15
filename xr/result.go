package xr

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Result is a return code reported by the runtime. Negative values are failures.
type Result int32

const (
	Success                    Result = 0
	TimeoutExpired             Result = 1
	SessionLossPending         Result = 3
	EventUnavailable           Result = 4
	SpaceBoundsUnavailable     Result = 7
	SessionNotFocused          Result = 8
	FrameDiscarded             Result = 9
	ErrorValidationFailure     Result = -1
	ErrorRuntimeFailure        Result = -2
	ErrorOutOfMemory           Result = -3
	ErrorAPIVersionUnsupported Result = -4
	ErrorInitializationFailed  Result = -6
	ErrorFunctionUnsupported   Result = -7
	ErrorFeatureUnsupported    Result = -8
	ErrorExtensionNotPresent   Result = -9
	ErrorLimitReached          Result = -10
	ErrorSizeInsufficient      Result = -11
	ErrorHandleInvalid         Result = -12
	ErrorInstanceLost          Result = -13
	ErrorSessionRunning        Result = -14
	ErrorSessionNotRunning     Result = -16
	ErrorSessionLost           Result = -17
)

var resultNames = map[Result]string{
	Success:                    "XR_SUCCESS",
	TimeoutExpired:             "XR_TIMEOUT_EXPIRED",
	SessionLossPending:         "XR_SESSION_LOSS_PENDING",
	EventUnavailable:           "XR_EVENT_UNAVAILABLE",
	SpaceBoundsUnavailable:     "XR_SPACE_BOUNDS_UNAVAILABLE",
	SessionNotFocused:          "XR_SESSION_NOT_FOCUSED",
	FrameDiscarded:             "XR_FRAME_DISCARDED",
	ErrorValidationFailure:     "XR_ERROR_VALIDATION_FAILURE",
	ErrorRuntimeFailure:        "XR_ERROR_RUNTIME_FAILURE",
	ErrorOutOfMemory:           "XR_ERROR_OUT_OF_MEMORY",
	ErrorAPIVersionUnsupported: "XR_ERROR_API_VERSION_UNSUPPORTED",
	ErrorInitializationFailed:  "XR_ERROR_INITIALIZATION_FAILED",
	ErrorFunctionUnsupported:   "XR_ERROR_FUNCTION_UNSUPPORTED",
	ErrorFeatureUnsupported:    "XR_ERROR_FEATURE_UNSUPPORTED",
	ErrorExtensionNotPresent:   "XR_ERROR_EXTENSION_NOT_PRESENT",
	ErrorLimitReached:          "XR_ERROR_LIMIT_REACHED",
	ErrorSizeInsufficient:      "XR_ERROR_SIZE_INSUFFICIENT",
	ErrorHandleInvalid:         "XR_ERROR_HANDLE_INVALID",
	ErrorInstanceLost:          "XR_ERROR_INSTANCE_LOST",
	ErrorSessionRunning:        "XR_ERROR_SESSION_RUNNING",
	ErrorSessionNotRunning:     "XR_ERROR_SESSION_NOT_RUNNING",
	ErrorSessionLost:           "XR_ERROR_SESSION_LOST",
}

func (r Result) String() string {
	name, ok := resultNames[r]
	if ok {
		return name
	}

	if r < 0 {
		return fmt.Sprintf("XR_UNKNOWN_FAILURE_%d", int32(r))
	}
	return fmt.Sprintf("XR_UNKNOWN_SUCCESS_%d", int32(r))
}

// Failed reports whether the result code indicates failure
func (r Result) Failed() bool {
	return r < 0
}

// Succeeded reports whether the result code indicates success, including qualified successes
// such as TimeoutExpired
func (r Result) Succeeded() bool {
	return r >= 0
}

// ResultError is the error produced by Result.ToError
type ResultError struct {
	Result Result
}

func (e *ResultError) Error() string {
	return e.Result.String()
}

// ToError returns nil for successful results, and an error wrapping a *ResultError otherwise
func (r Result) ToError() error {
	if r.Succeeded() {
		return nil
	}

	return errors.WithStack(&ResultError{Result: r})
}
