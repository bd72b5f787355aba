package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jordanwhite/dailydo/internal/keyring"
	"github.com/jordanwhite/dailydo/internal/notifier"
)

type WhatsAppCmd struct {
	SetKey   WhatsAppSetKeyCmd   `cmd:"" help:"Store the CallMeBot API key in the OS keyring."`
	ClearKey WhatsAppClearKeyCmd `cmd:"" help:"Remove the API key from the OS keyring."`
	Test     WhatsAppTestCmd     `cmd:"" help:"Send a test message through the relay."`
}

type WhatsAppSetKeyCmd struct {
	Key string `arg:"" optional:"" help:"CallMeBot API key. Omit to enter it without echoing."`
}

func (c *WhatsAppSetKeyCmd) Run(ctx *Context) error {
	if c.Key == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("CallMeBot API key").
					EchoMode(huh.EchoModePassword).
					Value(&c.Key),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := keyring.SetWhatsAppKey(c.Key); err != nil {
		return err
	}

	fmt.Println("✓ API key stored in OS keyring")
	fmt.Println("  Enable the relay with: dailydo settings --whatsapp-enabled --whatsapp-phone +<number>")
	return nil
}

type WhatsAppClearKeyCmd struct{}

func (c *WhatsAppClearKeyCmd) Run(ctx *Context) error {
	if err := keyring.DeleteWhatsAppKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return err
	}
	fmt.Println("✓ API key deleted from OS keyring")
	return nil
}

type WhatsAppTestCmd struct{}

func (c *WhatsAppTestCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	sink, err := whatsAppSink(settings)
	if err != nil {
		return err
	}

	wa := sink.(*notifier.WhatsApp)
	if err := wa.Send("dailydo test message: your WhatsApp relay is working."); err != nil {
		return fmt.Errorf("test message failed: %w", err)
	}

	fmt.Printf("✓ Test message sent to %s\n", settings.WhatsAppPhone)
	return nil
}
