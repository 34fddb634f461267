// ABOUTME: Instance configuration domain model
// ABOUTME: Carries the translation provider credential and tier selection

package domain

// InstanceMeta is the subset of instance-wide settings this service reads
type InstanceMeta struct {
	// DeeplAuthKey authorizes calls to DeepL; nil means translation is not configured
	DeeplAuthKey *string `json:"deeplAuthKey"`

	// DeeplIsPro selects the paid API endpoint
	DeeplIsPro bool `json:"deeplIsPro"`
}

// HasTranslator reports whether a provider credential is configured
func (m *InstanceMeta) HasTranslator() bool {
	return m != nil && m.DeeplAuthKey != nil && *m.DeeplAuthKey != ""
}
