package pattern

import "fmt"

// Kind identifies the variant of a compiled Token, following spec.md §3's
// list of token variants.
type Kind uint8

const (
	// Char matches one specific literal byte.
	Char Kind = iota

	// Wildcard matches any single byte.
	Wildcard

	// Inclusion matches any byte that is a member of Set.
	Inclusion

	// Exclusion matches any byte that is not a member of Set.
	Exclusion

	// Capture matches any single byte; the first occurrence of Name binds
	// it, later occurrences require byte-equality with the bound value.
	Capture

	// CaptureIn is a Capture whose first occurrence is additionally
	// restricted to Set. Later occurrences behave exactly like Capture
	// (Set is not re-checked — see spec.md §9's open question).
	CaptureIn

	// CaptureEx is the exclusion counterpart of CaptureIn.
	CaptureEx
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Char:
		return "Char"
	case Wildcard:
		return "Wildcard"
	case Inclusion:
		return "Inclusion"
	case Exclusion:
		return "Exclusion"
	case Capture:
		return "Capture"
	case CaptureIn:
		return "CaptureIn"
	case CaptureEx:
		return "CaptureEx"
	default:
		return "Unknown"
	}
}

// Token is one atom of a compiled pattern. Which fields are meaningful
// depends on Kind:
//
//	Char                Byte
//	Wildcard             (none)
//	Inclusion, Exclusion Set
//	Capture              Name
//	CaptureIn, CaptureEx  Name, Set
type Token struct {
	Kind Kind
	Byte byte
	Name string
	Set  *Charset
}

// NewChar returns a Char token for byte b.
func NewChar(b byte) Token { return Token{Kind: Char, Byte: b} }

// NewWildcard returns a Wildcard token.
func NewWildcard() Token { return Token{Kind: Wildcard} }

// NewInclusion returns an Inclusion token over set.
func NewInclusion(set *Charset) Token { return Token{Kind: Inclusion, Set: set} }

// NewExclusion returns an Exclusion token over set.
func NewExclusion(set *Charset) Token { return Token{Kind: Exclusion, Set: set} }

// NewCapture returns an unconstrained Capture token for name.
func NewCapture(name string) Token { return Token{Kind: Capture, Name: name} }

// NewCaptureIn returns a CaptureIn token for name, constrained to set on
// first occurrence.
func NewCaptureIn(name string, set *Charset) Token {
	return Token{Kind: CaptureIn, Name: name, Set: set}
}

// NewCaptureEx returns a CaptureEx token for name, constrained to set on
// first occurrence.
func NewCaptureEx(name string, set *Charset) Token {
	return Token{Kind: CaptureEx, Name: name, Set: set}
}

// String renders a Token for diagnostics; not used by the matcher.
func (t Token) String() string {
	switch t.Kind {
	case Char:
		return fmt.Sprintf("Char(%q)", t.Byte)
	case Wildcard:
		return "Wildcard"
	case Inclusion:
		return fmt.Sprintf("Inclusion(%q)", t.Set.Bytes())
	case Exclusion:
		return fmt.Sprintf("Exclusion(%q)", t.Set.Bytes())
	case Capture:
		return fmt.Sprintf("Capture(%s)", t.Name)
	case CaptureIn:
		return fmt.Sprintf("CaptureIn(%s, %q)", t.Name, t.Set.Bytes())
	case CaptureEx:
		return fmt.Sprintf("CaptureEx(%s, %q)", t.Name, t.Set.Bytes())
	default:
		return "Token(?)"
	}
}
