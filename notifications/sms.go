package notifications

import (
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	client  *twilio.RestClient
	from    string
	enabled bool
)

// Init configures the Twilio client. With SMS_ENABLED=false (or missing
// credentials) messages are only logged, which keeps local development and
// tests free of outbound traffic.
func Init() {
	enabled = os.Getenv("SMS_ENABLED") == "true"
	from = os.Getenv("TWILIO_FROM")

	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if enabled && accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}
}

// SendSMS delivers a message best-effort: failures are logged and reported
// to the caller but must never abort the appointment mutation that
// triggered them.
func SendSMS(to, body string) error {
	if !enabled {
		log.Printf("[SMS simulated] to=%s body=%q", to, body)
		return nil
	}
	if client == nil {
		log.Println("Twilio not configured, SMS not sent")
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send SMS to %s: %v", to, err)
		return err
	}
	if resp.Sid != nil {
		log.Printf("SMS sent to %s, SID: %s", to, *resp.Sid)
	}
	return nil
}
