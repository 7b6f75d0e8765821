package dialog

import (
	"fmt"

	apperrors "github.com/louisbranch/pursuit/internal/platform/errors"
)

var (
	ErrUnknownSequence    = apperrors.New(apperrors.CodeUnknownSequence, "unknown sequence")
	ErrUnassignedSequence = apperrors.New(apperrors.CodeUnassignedSequence, "sequence has no id")
	ErrSequenceOverflow   = apperrors.New(apperrors.CodeSequenceOverflow, "global sequence ids exhausted")
	ErrInvalidNavigation  = apperrors.New(apperrors.CodeInvalidNavigation, "invalid dialog navigation")
	ErrStaleSession       = apperrors.New(apperrors.CodeStaleSession, "stale dialog session")
	ErrNotInDialog        = apperrors.New(apperrors.CodeNotInDialog, "not in a dialog")
	ErrAlreadyInDialog    = apperrors.New(apperrors.CodeAlreadyInDialog, "already in a dialog")
	ErrScriptFault        = apperrors.New(apperrors.CodeScriptFault, "script fault")
	ErrResponseRejected   = apperrors.New(apperrors.CodeResponseRejected, "response rejected")
)

func errorf(code apperrors.Code, format string, args ...any) error {
	return apperrors.New(code, fmt.Sprintf(format, args...))
}

func scriptFault(expression string, cause error) error {
	return apperrors.Wrap(apperrors.CodeScriptFault, fmt.Sprintf("run %q", expression), cause)
}
