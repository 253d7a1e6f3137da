package domain

const SettingsSchemaVersion = 1

type Settings struct {
	Version  int  `json:"version"`
	DarkMode bool `json:"darkMode"`
}

func DefaultSettings() Settings {
	return Settings{Version: SettingsSchemaVersion}
}
