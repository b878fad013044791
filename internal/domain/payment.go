package domain

// PaymentIntent is what the client needs to collect the charge: the
// provider's charge id, the secret/URI the mobile app opens to authorize it,
// and the split the charge was created with.
type PaymentIntent struct {
	ID           string   `json:"payment_intent_id"`
	ClientSecret string   `json:"client_secret"`
	Split        FeeSplit `json:"split"`
}
