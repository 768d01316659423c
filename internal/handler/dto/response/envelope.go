package response

// Data is the success envelope every JSON endpoint returns.
type Data[T any] struct {
	Data T `json:"data"`
}

func Wrap[T any](v T) Data[T] {
	return Data[T]{Data: v}
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

type SlotAvailabilityResponse struct {
	Available bool `json:"available"`
}

type OnboardingResponse struct {
	URL       string `json:"url"`
	AccountID string `json:"account_id"`
}

type CurrencyResponse struct {
	CenterID string `json:"center_id"`
	Currency string `json:"currency"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}

type StatusChange struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type SettingUpdated struct {
	Message string `json:"message"`
	Key     string `json:"key"`
}
