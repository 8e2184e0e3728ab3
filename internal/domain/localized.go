package domain

// LocalizedText holds a display string in both storefront languages.
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// IsZero reports whether neither language carries a value.
func (t LocalizedText) IsZero() bool {
	return t.En == "" && t.Ar == ""
}

// ColorOption describes one product color: a bilingual display name plus the
// CSS color value used by the storefront swatch.
type ColorOption struct {
	Name  LocalizedText `json:"name"`
	Value string        `json:"value"`
}
