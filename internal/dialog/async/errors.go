package async

import (
	apperrors "github.com/louisbranch/pursuit/internal/platform/errors"
)

var (
	ErrSequenceMissing  = apperrors.New(apperrors.CodeUnknownSequence, "async dialog sequence not found")
	ErrInvokeeNotReady  = apperrors.New(apperrors.CodeNotReady, "invokee is not ready")
	ErrInvokerNotReady  = apperrors.New(apperrors.CodeNotReady, "invoker is not ready")
	ErrNotLocal         = apperrors.New(apperrors.CodeNotLocal, "actors are not close enough")
	ErrRegistrationRace = apperrors.New(apperrors.CodeRegistrationRace, "async dialog already registered")
	ErrInvokeeGone      = apperrors.New(apperrors.CodeStaleSession, "invokee is no longer connected")
)
