package tool

import "fmt"

// Arguments holds validated tool arguments with defaults applied.
type Arguments map[string]interface{}

// Has reports whether name was supplied or defaulted.
func (a Arguments) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the named string argument, or "" when absent.
func (a Arguments) String(name string) string {
	value, ok := a[name]
	if !ok || value == nil {
		return ""
	}
	if text, ok := value.(string); ok {
		return text
	}
	return fmt.Sprintf("%v", value)
}

// Bool returns the named boolean argument, or false when absent.
func (a Arguments) Bool(name string) bool {
	value, _ := a[name].(bool)
	return value
}
