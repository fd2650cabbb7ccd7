package dto

// SettingsInput merges only the provided keys into the singleton record.
// DonationQrImageURLs is replaced wholesale when present, never merged
// element-wise.
type SettingsInput struct {
	DonationBankDetails *string   `json:"donationBankDetails"`
	DonationQrImageURLs *[]string `json:"donationQrImageUrls"`
	ExternalDonateURL   *string   `json:"externalDonateUrl"`
}

// PublicSettings is the subset exposed without authentication.
type PublicSettings struct {
	DonationBankDetails string   `json:"donationBankDetails"`
	DonationQrImageURLs []string `json:"donationQrImageUrls"`
	ExternalDonateURL   string   `json:"externalDonateUrl"`
}
