package config

var AppVersion = "DEVELOPMENT"

const (
	AppName      = "Open DCS Launcher"
	SettingsFile = "settings.toml"
	LogFile      = "launcher.log"
	LockFile     = "launcher.lock"
	TUIFile      = "tui.toml"
	UserDir      = "user"
	SettingsEnv  = "OPENDCS_SETTINGS"
	AppEnv       = "OPENDCS_APP"
)
