package basex

import (
	"unicode/utf8"
)

// Target is the destination contract shared by the encode and decode
// engines.
//
// Fill runs conv against a byte region. maxLen is the largest length the
// conversion can possibly produce: growable destinations resize to maxLen
// before running conv and shrink to the length conv reports, while
// fixed-capacity destinations pass their existing region through
// unchanged and let the conversion fail with errs.ErrBufferTooSmall if it
// runs out of room.
//
// On error the region's contents are unspecified; the conversion may have
// partially written it before failing.
type Target interface {
	Fill(maxLen int, conv func(dst []byte) (int, error)) (int, error)
}

type sliceTarget struct {
	buf []byte
}

// Slice returns a fixed-capacity Target writing into buf.
//
// The conversion fails with errs.ErrBufferTooSmall if buf cannot hold the
// full output. Bytes past the reported length are left untouched.
func Slice(buf []byte) Target {
	return &sliceTarget{buf: buf}
}

func (t *sliceTarget) Fill(maxLen int, conv func(dst []byte) (int, error)) (int, error) {
	_ = maxLen // fixed region, size is whatever the caller provided

	return conv(t.buf)
}

type bufferTarget struct {
	buf *[]byte
}

// Buffer returns a growable Target writing into *buf.
//
// Fill resizes the slice to the maximum possible output length (reusing
// existing capacity where it can), runs the conversion, then truncates to
// the actual length. On success the slice holds exactly the converted
// bytes; on error its contents are unspecified.
func Buffer(buf *[]byte) Target {
	return &bufferTarget{buf: buf}
}

func (t *bufferTarget) Fill(maxLen int, conv func(dst []byte) (int, error)) (int, error) {
	buf := *t.buf
	if cap(buf) < maxLen {
		buf = make([]byte, maxLen)
	} else {
		buf = buf[:maxLen]
	}
	*t.buf = buf

	n, err := conv(buf)
	if err != nil {
		return 0, err
	}
	*t.buf = buf[:n]

	return n, nil
}

type stringTarget struct {
	s *string
}

// String returns a growable text Target writing into *s.
//
// The conversion runs against a scratch buffer and the result is copied
// into the string on success. On error the string is left unmodified.
func String(s *string) Target {
	return &stringTarget{s: s}
}

func (t *stringTarget) Fill(maxLen int, conv func(dst []byte) (int, error)) (int, error) {
	buf := make([]byte, maxLen)
	n, err := conv(buf)
	if err != nil {
		return 0, err
	}
	*t.s = string(buf[:n])

	return n, nil
}

type textTarget struct {
	buf []byte
}

// Text returns a fixed-capacity Target for a byte region that must remain
// valid UTF-8, such as the backing storage of existing text.
//
// The region must contain valid UTF-8 on entry. After the conversion —
// on every exit path, including errors — any leftover bytes of a
// multi-byte character that was only partially overwritten are zeroed,
// so the region is valid UTF-8 again before control returns.
func Text(buf []byte) Target {
	return &textTarget{buf: buf}
}

func (t *textTarget) Fill(maxLen int, conv func(dst []byte) (int, error)) (n int, err error) {
	_ = maxLen // fixed region, size is whatever the caller provided

	defer repairText(t.buf)

	return conv(t.buf)
}

// repairText zeroes every byte that is not part of a valid UTF-8 sequence.
// Conversions emit pure ASCII, so the only invalid bytes are remnants of
// multi-byte characters whose leading bytes were overwritten.
func repairText(buf []byte) {
	for i := 0; i < len(buf); {
		r, size := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError && size <= 1 {
			buf[i] = 0
			i++
		} else {
			i += size
		}
	}
}
