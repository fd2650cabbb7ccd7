package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SettingsKey is the fixed key of the singleton settings document.
const SettingsKey = "main"

// Settings is a singleton document created lazily on first read.
type Settings struct {
	ID                  bson.ObjectID `json:"id"                  bson:"_id,omitempty"`
	Key                 string        `json:"key"                 bson:"key"`
	DonationBankDetails string        `json:"donationBankDetails" bson:"donation_bank_details"`
	DonationQrImageURLs []string      `json:"donationQrImageUrls" bson:"donation_qr_image_urls"`
	ExternalDonateURL   string        `json:"externalDonateUrl"   bson:"external_donate_url"`
	CreatedAt           time.Time     `json:"createdAt"           bson:"created_at"`
	UpdatedAt           time.Time     `json:"updatedAt"           bson:"updated_at"`
}
