package settings

import (
	"fmt"

	"github.com/jordanwhite/dailydo/internal/cli"
	"github.com/jordanwhite/dailydo/internal/notifier"
	"github.com/jordanwhite/dailydo/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone             *string `help:"IANA timezone name, or 'Local' for the system timezone."`
	NotificationsEnabled *bool   `help:"Enable or disable desktop notifications."`
	TickInterval         *int    `help:"Reminder tick interval in seconds."`
	WhatsappEnabled      *bool   `name:"whatsapp-enabled" help:"Enable or disable the WhatsApp relay."`
	WhatsappPhone        *string `name:"whatsapp-phone" help:"WhatsApp phone number in E.164 form (+<country code><number>)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		fmt.Printf("  Tick Interval:         %d sec\n", settings.TickIntervalSec)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  WhatsApp Enabled:      %v\n", settings.WhatsAppEnabled)
		if settings.WhatsAppPhone != "" {
			fmt.Printf("  WhatsApp Phone:        %s\n", settings.WhatsAppPhone)
		}
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.TickInterval != nil {
		if *c.TickInterval < 1 {
			return fmt.Errorf("tick interval must be at least 1 second")
		}
		settings.TickIntervalSec = *c.TickInterval
		updated = true
	}
	if c.WhatsappPhone != nil {
		if err := notifier.ValidatePhone(*c.WhatsappPhone); err != nil {
			return err
		}
		settings.WhatsAppPhone = *c.WhatsappPhone
		updated = true
	}
	if c.WhatsappEnabled != nil {
		if *c.WhatsappEnabled && settings.WhatsAppPhone == "" {
			return fmt.Errorf("set a phone number first with --whatsapp-phone")
		}
		settings.WhatsAppEnabled = *c.WhatsappEnabled
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
