package vision

import "fmt"

// CredentialError indicates no usable Vision credentials could be resolved.
type CredentialError struct {
	Reason string
	Err    error
}

func (e *CredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vision credentials: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("vision credentials: %s", e.Reason)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// ServiceError indicates the Vision API itself reported an error for an
// annotation request.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("vision API error: %s", e.Message)
}
