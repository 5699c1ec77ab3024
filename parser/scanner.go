package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Scanner is a window onto a source string. Tokens keep the Scanner they were
// eaten from so that their text and position can be recovered later.
type Scanner struct {
	src         *source // the source the scanner is drawing from
	sliceStart  int     // the start of the slice visible to the scanner
	sliceLength int     // the length of the slice visible to the scanner
}

type source struct {
	origin string // the entire source string
	name   string // the source filename (or empty if none)
}

func NewScanner(str string) *Scanner {
	return &Scanner{&source{origin: str}, 0, len(str)}
}

func NewScannerWithFilename(str, filename string) *Scanner {
	return &Scanner{&source{origin: str, name: filename}, 0, len(str)}
}

// The name of the file from which the source is derived (or empty if none).
func (s Scanner) Filename() string {
	if s.src == nil {
		return ""
	}
	return s.src.name
}

func (s Scanner) String() string {
	if s.src == nil {
		return ""
	}
	return s.slice()
}

func (s Scanner) IsNil() bool {
	return s.src == nil
}

func (s Scanner) Format(state fmt.State, c rune) {
	if c == 'q' {
		_, _ = fmt.Fprintf(state, "%q", s.String())
	} else {
		_, _ = state.Write([]byte(s.String()))
	}
}

// Context renders the line containing the scanner with the scanned text
// highlighted.
func (s Scanner) Context() string {
	if s.src == nil {
		return ""
	}
	lineno, colno := s.Position()
	origin := s.src.origin
	end := s.sliceStart + s.sliceLength

	lineStart := strings.LastIndexByte(origin[:s.sliceStart], '\n') + 1
	lineEnd := len(origin)
	if i := strings.IndexByte(origin[end:], '\n'); i >= 0 {
		lineEnd = end + i
	}

	return fmt.Sprintf("%s:%d:%d:\n%s\033[1;31m%s\033[0m%s",
		s.Filename(),
		lineno,
		colno,
		origin[lineStart:s.sliceStart],
		s.slice(),
		origin[end:lineEnd],
	)
}

// The position of the start of the scanner within the original source.
func (s Scanner) Offset() int {
	return s.sliceStart
}

// The 1-indexed line and column number of the start of the scanner within the
// original source.
func (s Scanner) Position() (int, int) {
	if s.src == nil {
		return 0, 0
	}
	return lineColumn(s.src.origin, s.sliceStart)
}

// Len is the number of bytes still visible to the scanner.
func (s Scanner) Len() int {
	return s.sliceLength
}

func (s Scanner) slice() string {
	return s.src.origin[s.sliceStart : s.sliceStart+s.sliceLength]
}

func (s Scanner) Slice(a, b int) *Scanner {
	return &Scanner{s.src, s.sliceStart + a, b - a}
}

func (s Scanner) Skip(i int) *Scanner {
	return &Scanner{s.src, s.sliceStart + i, s.sliceLength - i}
}

// Eat returns a scanner containing the next i bytes and advances s past them.
func (s *Scanner) Eat(i int, eaten *Scanner) *Scanner {
	eaten.src = s.src
	eaten.sliceStart = s.sliceStart
	eaten.sliceLength = i
	*s = *s.Skip(i)
	return s
}

func (s *Scanner) EatString(str string, eaten *Scanner) bool {
	if strings.HasPrefix(s.slice(), str) {
		s.Eat(len(str), eaten)
		return true
	}
	return false
}

// EatRegexp eats the text matching a \A-anchored regexp, populating match (if
// != nil) with the whole match. Returns ok iff a match was found.
func (s *Scanner) EatRegexp(re *regexp.Regexp, match *Scanner) bool {
	if loc := re.FindStringIndex(s.slice()); loc != nil {
		if loc[0] != 0 {
			panic(`re not \A-anchored`)
		}
		if match != nil {
			*match = *s.Slice(loc[0], loc[1])
		}
		*s = *s.Skip(loc[1])
		return true
	}
	return false
}

// The 1-indexed line and column number of the given position within the given string.
func lineColumn(str string, pos int) (line, col int) {
	prefix := str[:pos]
	line = strings.Count(prefix, "\n") + 1
	col = pos - strings.LastIndex(prefix, "\n")
	return
}
