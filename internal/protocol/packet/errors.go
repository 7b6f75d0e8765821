package packet

import (
	"fmt"

	apperrors "github.com/louisbranch/pursuit/internal/platform/errors"
)

var (
	// ErrMalformedPacket reports a frame that cannot be decoded: a bad marker,
	// a length prefix that disagrees with the buffer, or a truncated body.
	ErrMalformedPacket = apperrors.New(apperrors.CodeMalformedPacket, "malformed packet")

	// ErrBufferUnderrun reports a typed read past the end of a payload.
	ErrBufferUnderrun = apperrors.New(apperrors.CodeBufferUnderrun, "buffer underrun")
)

func malformed(format string, args ...any) error {
	return apperrors.Wrap(apperrors.CodeMalformedPacket, "malformed packet", fmt.Errorf(format, args...))
}

func underrun(want, pos, size int) error {
	return apperrors.WithMetadata(apperrors.CodeBufferUnderrun,
		fmt.Sprintf("buffer underrun: need %d bytes at offset %d of %d", want, pos, size),
		map[string]string{"want": fmt.Sprint(want), "offset": fmt.Sprint(pos), "size": fmt.Sprint(size)})
}
