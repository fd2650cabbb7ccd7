package services

import (
	"time"

	"foundation_api/dto"
	"foundation_api/model"
)

// ApplySettingsUpdate merges only the provided keys into the singleton.
// The QR image list is replaced wholesale when supplied.
func ApplySettingsUpdate(s *model.Settings, in dto.SettingsInput, now time.Time) {
	if in.DonationBankDetails != nil {
		s.DonationBankDetails = *in.DonationBankDetails
	}
	if in.DonationQrImageURLs != nil {
		s.DonationQrImageURLs = normalizeStringSlice(*in.DonationQrImageURLs)
	}
	if in.ExternalDonateURL != nil {
		s.ExternalDonateURL = *in.ExternalDonateURL
	}
	s.UpdatedAt = now
}
