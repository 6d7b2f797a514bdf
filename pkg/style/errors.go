// pkg/style/errors.go
package style

import "fmt"

// ParseError reports a grammar violation at a specific byte offset of the
// input text.
type ParseError struct {
	Offset   int
	Expected string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Err)
	}
	return fmt.Sprintf("parse error at offset %d: expected %s", e.Offset, e.Expected)
}

func (e *ParseError) Unwrap() error { return e.Err }

// PropertyErrorKind classifies declaration-level failures.
type PropertyErrorKind uint8

const (
	// InvalidPropertyName means the declaration key is not a known property.
	InvalidPropertyName PropertyErrorKind = iota
	// InvalidPropertyType means the value's syntactic kind does not fit the
	// property (e.g. a number where a color is required).
	InvalidPropertyType
	// InvalidPropertyValue means the value is the right kind but carries an
	// unrecognized keyword.
	InvalidPropertyValue
)

// PropertyError reports a declaration whose name or value could not be
// bound to a style property.
type PropertyError struct {
	Kind   PropertyErrorKind
	Detail string
}

func (e *PropertyError) Error() string {
	switch e.Kind {
	case InvalidPropertyName:
		return fmt.Sprintf("invalid property name: '%s'", e.Detail)
	case InvalidPropertyType:
		return fmt.Sprintf("invalid property type: %s", e.Detail)
	case InvalidPropertyValue:
		return fmt.Sprintf("invalid property value: %s", e.Detail)
	}
	return "invalid property"
}

func invalidName(name string) *PropertyError {
	return &PropertyError{Kind: InvalidPropertyName, Detail: name}
}

func invalidType(typeName string) *PropertyError {
	return &PropertyError{Kind: InvalidPropertyType, Detail: typeName}
}

func invalidValue(val string) *PropertyError {
	return &PropertyError{Kind: InvalidPropertyValue, Detail: fmt.Sprintf("%q", val)}
}
