package models

type Settings struct {
	Timezone             string `json:"timezone"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	TickIntervalSec      int    `json:"tick_interval_sec"`
	WhatsAppEnabled      bool   `json:"whatsapp_enabled"`
	WhatsAppPhone        string `json:"whatsapp_phone,omitempty"`
}
