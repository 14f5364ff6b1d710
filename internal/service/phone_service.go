package service

import (
	"context"
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	lookups "github.com/twilio/twilio-go/rest/lookups/v2"

	"tatuagenda/internal/utils"
)

// TwilioPhoneValidator checks dialability through the Twilio Lookup API.
// Without Twilio credentials it falls back to a structural check on the
// digit count, which matches what the booking form enforces client-side.
type TwilioPhoneValidator struct {
	client *twilio.RestClient
}

func NewTwilioPhoneValidator(accountSid, authToken string) *TwilioPhoneValidator {
	if accountSid == "" || authToken == "" {
		log.Println("WARNING: Twilio credentials are not configured. Phone validation falls back to a structural check.")
		return &TwilioPhoneValidator{}
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	return &TwilioPhoneValidator{client: client}
}

func (v *TwilioPhoneValidator) IsValidDialable(ctx context.Context, number, region string) (bool, error) {
	if number == "" {
		return false, nil
	}
	if v.client == nil {
		return structurallyValid(number), nil
	}

	params := &lookups.FetchPhoneNumberParams{}
	params.SetCountryCode(region)

	resp, err := v.client.LookupsV2.FetchPhoneNumber(number, params)
	if err != nil {
		return false, fmt.Errorf("twilio lookup for %q failed: %w", number, err)
	}
	return resp.Valid != nil && *resp.Valid, nil
}

// structurallyValid accepts a local number with area code (10 digits), with
// the extra mobile digit (11), or with a country code prefixed (up to 13),
// ignoring formatting characters.
func structurallyValid(number string) bool {
	digits := utils.DigitsOnly(number)
	return len(digits) >= 10 && len(digits) <= 13
}
