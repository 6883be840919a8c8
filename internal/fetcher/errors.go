package fetcher

import "fmt"

type ResolutionError struct {
	Reason string
	Err    error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to resolve link: %s: %s", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to resolve link: %s", e.Reason)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

type TransferError struct {
	Reason string
	Err    error
}

func (e *TransferError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transfer failed: %s: %s", e.Reason, e.Err)
	}
	return fmt.Sprintf("transfer failed: %s", e.Reason)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
