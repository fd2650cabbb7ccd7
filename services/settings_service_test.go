package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"foundation_api/dto"
	"foundation_api/model"
)

func TestApplySettingsUpdateMergesOnlyProvidedKeys(t *testing.T) {
	settings := model.Settings{
		Key:                 model.SettingsKey,
		DonationBankDetails: "Bank A, account 123",
		DonationQrImageURLs: []string{"/assets/qr/old.png"},
		ExternalDonateURL:   "https://donate.example.org",
		UpdatedAt:           now,
	}

	bank := "Bank B, account 456"
	later := now.Add(time.Hour)
	ApplySettingsUpdate(&settings, dto.SettingsInput{DonationBankDetails: &bank}, later)

	assert.Equal(t, "Bank B, account 456", settings.DonationBankDetails)
	assert.Equal(t, []string{"/assets/qr/old.png"}, settings.DonationQrImageURLs)
	assert.Equal(t, "https://donate.example.org", settings.ExternalDonateURL)
	assert.Equal(t, later, settings.UpdatedAt)
}

func TestApplySettingsUpdateReplacesQrListWholesale(t *testing.T) {
	settings := model.Settings{
		Key:                 model.SettingsKey,
		DonationQrImageURLs: []string{"/assets/qr/a.png", "/assets/qr/b.png"},
	}

	urls := []string{" /assets/qr/new.png ", "", "/assets/qr/new.png"}
	ApplySettingsUpdate(&settings, dto.SettingsInput{DonationQrImageURLs: &urls}, now)

	assert.Equal(t, []string{"/assets/qr/new.png"}, settings.DonationQrImageURLs)
}

func TestApplySettingsUpdateCanClearFields(t *testing.T) {
	settings := model.Settings{
		Key:               model.SettingsKey,
		ExternalDonateURL: "https://donate.example.org",
	}

	empty := ""
	ApplySettingsUpdate(&settings, dto.SettingsInput{ExternalDonateURL: &empty}, now)

	assert.Equal(t, "", settings.ExternalDonateURL)
}
