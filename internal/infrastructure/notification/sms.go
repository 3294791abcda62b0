package notification

import (
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"taskdesk/pkg/logger"
)

// SMSSender delivers access codes over Twilio. Like email, delivery is
// best effort and reported as a bool.
type SMSSender struct {
	client *twilio.RestClient
	from   string
}

func NewSMSSender(accountSID, authToken, fromNumber string) *SMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &SMSSender{
		client: client,
		from:   fromNumber,
	}
}

// SendVerificationCode texts a login access code to the owner.
func (s *SMSSender) SendVerificationCode(phoneNumber, code string) bool {
	body := fmt.Sprintf("Your TaskDesk verification code is %s. It expires in 10 minutes.", code)

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(s.from)
	params.SetBody(body)

	var lastErr error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		if _, lastErr = s.client.Api.CreateMessage(params); lastErr == nil {
			logger.Info("SMS sent: to=%s", phoneNumber)
			return true
		}
		logger.Warn("SMS attempt %d/%d failed: to=%s err=%v", attempt, maxSendAttempts, phoneNumber, lastErr)
		if attempt < maxSendAttempts {
			time.Sleep(time.Duration(attempt) * retryBaseDelay)
		}
	}

	logger.Error("SMS delivery failed after %d attempts: to=%s err=%v", maxSendAttempts, phoneNumber, lastErr)
	return false
}
