package pattern

import "fmt"

// ErrorKind classifies a ParseError, allowing callers to dispatch on the
// kind of syntactic problem without string-matching Error().
type ErrorKind uint8

const (
	// ErrUnescapedSymbol: a reserved metacharacter appeared where a
	// literal byte was expected.
	ErrUnescapedSymbol ErrorKind = iota

	// ErrDanglingInclusion: an unclosed '[' group.
	ErrDanglingInclusion

	// ErrDanglingExclusion: an unclosed '[^' group.
	ErrDanglingExclusion

	// ErrDanglingCapture: an unclosed '{' group.
	ErrDanglingCapture

	// ErrUnnamedCaptureEmpty: '{}' with no name bytes.
	ErrUnnamedCaptureEmpty

	// ErrUnnamedCaptureBeforeGroup: '{[' or '{[^' with no name bytes yet.
	ErrUnnamedCaptureBeforeGroup

	// ErrGroupNotTrailing: bytes followed a capture's inner group before
	// its closing '}'.
	ErrGroupNotTrailing
)

// ParseError reports a syntactic problem in a pattern string, naming the
// offending construct and a 1-based column, per spec.md §4.2 and §7. For
// an unescaped symbol the column is that symbol's own; for every other
// kind it is the column of the group's or capture's opening delimiter.
type ParseError struct {
	Kind    ErrorKind
	Column  int
	Message string
}

// Error implements the error interface, returning exactly the message
// text spec.md §4.2's table specifies.
func (e *ParseError) Error() string {
	return e.Message
}

func unescapedSymbol(b byte, col int) *ParseError {
	return &ParseError{
		Kind:    ErrUnescapedSymbol,
		Column:  col,
		Message: fmt.Sprintf("Unescaped symbol %c at column %d", b, col),
	}
}

func danglingGroup(kind ErrorKind, groupName string, col int) *ParseError {
	return &ParseError{
		Kind:    kind,
		Column:  col,
		Message: fmt.Sprintf("Dangling group (%s) starting at column %d, expecting %s", groupName, col, closerFor(groupName)),
	}
}

func closerFor(groupName string) string {
	if groupName == "capture" {
		return "}"
	}
	return "]"
}

func unnamedCaptureEmpty(col int) *ParseError {
	return &ParseError{
		Kind:    ErrUnnamedCaptureEmpty,
		Column:  col,
		Message: fmt.Sprintf("Unnamed capture starting at column %d, capture cannot be empty", col),
	}
}

func unnamedCaptureBeforeGroup(col int) *ParseError {
	return &ParseError{
		Kind:    ErrUnnamedCaptureBeforeGroup,
		Column:  col,
		Message: fmt.Sprintf("Unnamed capture starting at column %d, capture must be named before group", col),
	}
}

func groupNotTrailing(groupName string, col int) *ParseError {
	return &ParseError{
		Kind:    ErrGroupNotTrailing,
		Column:  col,
		Message: fmt.Sprintf("Group (%s) must in the tail position of capture starting at column %d", groupName, col),
	}
}
