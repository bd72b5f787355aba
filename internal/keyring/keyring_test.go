package keyring

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestWhatsAppKeyRoundTrip(t *testing.T) {
	keyring.MockInit()

	if _, err := GetWhatsAppKey(); err != ErrNotFound {
		t.Errorf("GetWhatsAppKey() before set = %v, want ErrNotFound", err)
	}

	if err := SetWhatsAppKey("test-api-key"); err != nil {
		t.Fatalf("SetWhatsAppKey() error = %v", err)
	}

	key, err := GetWhatsAppKey()
	if err != nil {
		t.Fatalf("GetWhatsAppKey() error = %v", err)
	}
	if key != "test-api-key" {
		t.Errorf("GetWhatsAppKey() = %q, want %q", key, "test-api-key")
	}

	if err := DeleteWhatsAppKey(); err != nil {
		t.Fatalf("DeleteWhatsAppKey() error = %v", err)
	}
	if _, err := GetWhatsAppKey(); err != ErrNotFound {
		t.Errorf("GetWhatsAppKey() after delete = %v, want ErrNotFound", err)
	}
}

func TestSetWhatsAppKeyEmpty(t *testing.T) {
	keyring.MockInit()

	if err := SetWhatsAppKey(""); err == nil {
		t.Error("SetWhatsAppKey(\"\") = nil, want error")
	}
}
