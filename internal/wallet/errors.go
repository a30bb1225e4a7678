package wallet

import (
	"context"
	"errors"

	"walletgate/internal/sentinel"
	dErrors "walletgate/pkg/domain-errors"
)

// ErrorCode classifies a failure returned by a wallet port.
func ErrorCode(err error) dErrors.Code {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return dErrors.CodeTimeout
	case errors.Is(err, context.Canceled):
		return dErrors.CodeCancelled
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.CodeNotFound
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.CodeConflict
	case errors.Is(err, sentinel.ErrInvalidInput):
		return dErrors.CodeBadRequest
	case errors.Is(err, sentinel.ErrForbidden):
		return dErrors.CodeForbidden
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.CodeUnavailable
	default:
		return dErrors.CodeInternal
	}
}
