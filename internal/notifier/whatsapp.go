package notifier

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/jordanwhite/dailydo/internal/constants"
	"github.com/jordanwhite/dailydo/internal/models"
)

// phoneRegex matches E.164 phone numbers (+[country code][number]).
var phoneRegex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

// ValidatePhone checks that a phone number is in E.164 form.
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("invalid phone number %q (expected +[country code][number])", phone)
	}
	return nil
}

// WhatsApp relays reminders through the CallMeBot WhatsApp API. The API key
// is issued per phone number by CallMeBot and is kept in the OS keyring;
// callers resolve it before constructing the sink.
type WhatsApp struct {
	phone    string
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewWhatsApp(phone, apiKey string) (*WhatsApp, error) {
	if err := ValidatePhone(phone); err != nil {
		return nil, err
	}
	if apiKey == "" {
		return nil, fmt.Errorf("whatsapp api key cannot be empty")
	}
	return &WhatsApp{
		phone:    phone,
		apiKey:   apiKey,
		endpoint: constants.WhatsAppEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (w *WhatsApp) Notify(task models.Task) error {
	return w.Send(Message(task))
}

// Send relays an arbitrary text message, used both for task reminders and
// for the "test message" command that verifies the configuration.
func (w *WhatsApp) Send(text string) error {
	params := url.Values{}
	params.Set("phone", w.phone)
	params.Set("text", text)
	params.Set("apikey", w.apiKey)

	res, err := w.client.Get(w.endpoint + "?" + params.Encode())
	if err != nil {
		return fmt.Errorf("whatsapp relay request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("whatsapp relay returned status %d: %s", res.StatusCode, string(body))
	}
	return nil
}
