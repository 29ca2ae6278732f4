package models

// SettingScope controls who a setting applies to
type SettingScope string

const (
	// SettingScopeWorld applies the setting to everyone at the table
	SettingScopeWorld SettingScope = "world"

	// SettingScopeClient applies the setting to a single user
	SettingScopeClient SettingScope = "client"
)

// SettingType is the value type of a setting
type SettingType string

const (
	SettingTypeString SettingType = "string"
)

// Setting describes a registered configuration setting
type Setting struct {
	// Namespace groups settings owned by the same module
	Namespace string

	// Key identifies the setting within its namespace
	Key string

	// Name is the human readable label of the setting
	Name string

	// Hint describes what the setting controls
	Hint string

	// Scope controls who the setting applies to
	Scope SettingScope

	// Type is the value type of the setting
	Type SettingType

	// Default is the value used when nothing has been stored
	Default string
}

// FullKey returns the namespaced key of the setting
func (s *Setting) FullKey() string {
	return s.Namespace + "." + s.Key
}
