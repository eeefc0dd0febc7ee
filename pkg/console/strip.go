package console

import "strings"

const escape = 0x1b

// segment is a span of the input that is either kept or dropped
type segment struct {
	text    string
	discard bool
}

// escapeScanner splits text into verbatim spans and ESC...'m' spans.
// An ESC without a later 'm' starts a verbatim span running to the end.
type escapeScanner struct {
	rest string
	seg  segment
}

func (s *escapeScanner) next() bool {
	if s.rest == "" {
		return false
	}
	i := strings.IndexByte(s.rest, escape)
	switch {
	case i < 0:
		s.seg, s.rest = segment{text: s.rest}, ""
	case i > 0:
		s.seg, s.rest = segment{text: s.rest[:i]}, s.rest[i:]
	default:
		end := strings.IndexByte(s.rest[1:], 'm')
		if end < 0 {
			s.seg, s.rest = segment{text: s.rest}, ""
			break
		}
		end += 2
		s.seg, s.rest = segment{text: s.rest[:end], discard: true}, s.rest[end:]
	}
	return true
}

// StripEscapes removes every ESC ... 'm' span from text. Only the terminating
// 'm' is looked for, so any sequence ending in 'm' goes, and an ESC with no 'm'
// after it is kept along with everything that follows.
func StripEscapes(text string) string {
	if strings.IndexByte(text, escape) < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	sc := escapeScanner{rest: text}
	for sc.next() {
		if !sc.seg.discard {
			b.WriteString(sc.seg.text)
		}
	}
	return b.String()
}
