package payment

type InitializeRequest struct {
	Email string `json:"email"`
	// Amount in minor units (kobo for NGN), the form Paystack expects.
	Amount    int64             `json:"amount"`
	Currency  string            `json:"currency"`
	Reference string            `json:"reference"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type InitializeResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
	AccessCode       string `json:"accessCode"`
	Reference        string `json:"reference"`
}

type VerifyResponse struct {
	Reference string `json:"reference"`
	// Status as Paystack reports it: "success", "failed", "abandoned".
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

func (v VerifyResponse) Succeeded() bool {
	return v.Status == "success"
}

// Paystack wire shapes.
type paystackEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

type paystackInitData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type paystackInitEnvelope struct {
	paystackEnvelope
	Data paystackInitData `json:"data"`
}

type paystackVerifyData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
}

type paystackVerifyEnvelope struct {
	paystackEnvelope
	Data paystackVerifyData `json:"data"`
}
