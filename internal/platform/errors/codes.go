// Package errors provides the structured error taxonomy shared by the
// codec, dialog and transport layers.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an error outside the taxonomy.
	CodeUnknown Code = "UNKNOWN"

	// Wire errors
	CodeMalformedPacket Code = "MALFORMED_PACKET"
	CodeBufferUnderrun  Code = "BUFFER_UNDERRUN"
	CodeUnknownOpcode   Code = "UNKNOWN_OPCODE"

	// Dialog errors
	CodeUnknownSequence    Code = "UNKNOWN_SEQUENCE"
	CodeUnassignedSequence Code = "UNASSIGNED_SEQUENCE"
	CodeSequenceOverflow   Code = "SEQUENCE_OVERFLOW"
	CodeInvalidNavigation  Code = "INVALID_NAVIGATION"
	CodeStaleSession       Code = "STALE_SESSION"
	CodeNotInDialog        Code = "NOT_IN_DIALOG"
	CodeAlreadyInDialog    Code = "ALREADY_IN_DIALOG"
	CodeScriptFault        Code = "SCRIPT_FAULT"
	CodeResponseRejected   Code = "RESPONSE_REJECTED"

	// Async dialog errors
	CodeNotReady         Code = "NOT_READY"
	CodeNotLocal         Code = "NOT_LOCAL"
	CodeRegistrationRace Code = "REGISTRATION_RACE"
)

// Reset reports whether an error with this code forces the owning dialog
// session back to idle.
func (c Code) Reset() bool {
	switch c {
	case CodeMalformedPacket,
		CodeBufferUnderrun,
		CodeUnknownSequence,
		CodeInvalidNavigation,
		CodeStaleSession,
		CodeScriptFault,
		CodeResponseRejected:
		return true
	default:
		return false
	}
}
