package constants

import "time"

const (
	AppName           = "dailydo"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/dailydo/dailydo.db"

	// DateFormat is the standard date-key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Dispatcher constants
	DefaultTickInterval = time.Minute

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "dailydo-"
	BackupFileSuffix = ".db"

	// Export constants
	ExportVersion = 1

	// Desktop notifier constants
	NotifierLockfileName   = "dailydo-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.jordanwhite.dailydo"
	TrayAppExecutable      = "dailydo-tray"

	// WhatsApp relay constants
	WhatsAppEndpoint    = "https://api.callmebot.com/whatsapp.php"
	WhatsAppKeyringUser = "whatsapp-api-key"
)

const (
	// Settings keys
	SettingTimezone             = "timezone"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingTickIntervalSec      = "tick_interval_sec"
	SettingWhatsAppEnabled      = "whatsapp_enabled"
	SettingWhatsAppPhone        = "whatsapp_phone"

	// Default settings values
	DefaultTimezone             = "Local" // Use system local timezone by default
	DefaultNotificationsEnabled = true
	DefaultTickIntervalSec      = 60
)
