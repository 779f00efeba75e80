// The rle package implements a streaming byte-oriented run-length
// compression format.
//
// The compressed stream is a bare sequence of segments with no header or
// checksum. Each segment is one length-control byte L followed by data:
//   - L == 0: stream terminator (optional; plain end of input means the
//     same thing, and the encoder never emits it)
//   - 1 <= L <= 127: a run; one data byte follows, repeated L times in
//     the output
//   - 128 <= L <= 255: a literal; the next 256-L bytes are copied to the
//     output verbatim
//
// The encoder is greedy: any two adjacent equal bytes start a run, so a
// run segment always has a count of at least 2, and two adjacent
// segments never could have been one (except where a run or literal hit
// its maximum count and had to be split).
package rle

// Version of the utility and format. The format has no version field on
// the wire; this is what rle -V prints.
const Version = "1.0-beta"

const (
	maxRun     = 127 // largest count a run control byte can express
	maxLiteral = 128 // largest count a literal control byte can express
)

// A Kind says whether a Segment is a run or a literal.
type Kind uint8

const (
	Literal Kind = iota
	Run
)

// A Segment is the basic unit of the compressed format: either one byte
// repeated Count times, or Count verbatim bytes. Segments tile the
// source in order, so a segment's literal bytes are the next Count
// bytes of the source rather than being stored in the Segment itself.
type Segment struct {
	Kind  Kind
	Count int  // 2–127 for a run, 1–128 for a literal
	Byte  byte // the repeated byte; unused for a literal
}

// Segments splits src into the segments the encoder would emit, appends
// them to dst, and returns dst.
func Segments(dst []Segment, src []byte) []Segment {
	i := 0
	for i < len(src) {
		// Measure the run starting at i.
		j := i + 1
		for j < len(src) && j-i < maxRun && src[j] == src[i] {
			j++
		}
		if j-i >= 2 {
			dst = append(dst, Segment{Kind: Run, Count: j - i, Byte: src[i]})
			i = j
			continue
		}

		// No run here: accumulate a literal until the next pair of
		// equal bytes (which starts the next run) or the maximum
		// literal length.
		for j < len(src) && j-i < maxLiteral && src[j] != src[j-1] {
			j++
		}
		if j < len(src) && src[j] == src[j-1] {
			// src[j-1] belongs to the run, not the literal.
			j--
		}
		dst = append(dst, Segment{Kind: Literal, Count: j - i})
		i = j
	}
	return dst
}

// AppendEncode appends the compressed form of src to dst and returns
// dst. The result is byte-identical to what a Writer produces for the
// same input.
func AppendEncode(dst, src []byte) []byte {
	pos := 0
	for _, s := range Segments(nil, src) {
		switch s.Kind {
		case Run:
			dst = append(dst, byte(s.Count), s.Byte)
		case Literal:
			dst = append(dst, byte(256-s.Count))
			dst = append(dst, src[pos:pos+s.Count]...)
		}
		pos += s.Count
	}
	return dst
}

// AppendDecode appends the decompressed form of src to dst and returns
// dst. It returns ErrTruncated if src ends in the middle of a segment.
// A zero control byte terminates decoding; anything after it is
// ignored.
func AppendDecode(dst, src []byte) ([]byte, error) {
	i := 0
	for i < len(src) {
		ctrl := src[i]
		i++
		if ctrl == 0 {
			break
		}
		if ctrl <= maxRun {
			if i >= len(src) {
				return dst, ErrTruncated
			}
			b := src[i]
			i++
			for k := 0; k < int(ctrl); k++ {
				dst = append(dst, b)
			}
		} else {
			n := 256 - int(ctrl)
			if i+n > len(src) {
				return dst, ErrTruncated
			}
			dst = append(dst, src[i:i+n]...)
			i += n
		}
	}
	return dst, nil
}

// MaxEncodedLen returns the largest possible compressed size of n bytes
// of input. Input with no runs at all costs one control byte per 128
// bytes of data.
func MaxEncodedLen(n int) int {
	return n + (n+maxLiteral-1)/maxLiteral
}
