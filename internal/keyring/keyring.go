package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/jordanwhite/dailydo/internal/constants"
)

var (
	// ErrNotFound is returned when no API key is found in the keyring
	ErrNotFound = errors.New("api key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetWhatsAppKey retrieves the CallMeBot API key from the OS keyring.
// Returns ErrNotFound if no key is stored.
func GetWhatsAppKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.WhatsAppKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetWhatsAppKey stores the CallMeBot API key in the OS keyring.
func SetWhatsAppKey(key string) error {
	if key == "" {
		return errors.New("api key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.WhatsAppKeyringUser, key); err != nil {
		return fmt.Errorf("failed to store api key in keyring: %w", err)
	}
	return nil
}

// DeleteWhatsAppKey removes the CallMeBot API key from the OS keyring.
func DeleteWhatsAppKey() error {
	err := keyring.Delete(constants.AppName, constants.WhatsAppKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete api key from keyring: %w", err)
	}
	return nil
}
