package ansa

// Raw upstream payloads exactly as Ansa sends them. These never leave the
// package; operations reshape them into the schema types and validate the
// result.

type wireAmount struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type wireBillingDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type wireCustomer struct {
	ID             string              `json:"id"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Status         string              `json:"status"`
	BillingDetails *wireBillingDetails `json:"billingDetails"`
	Balance        *wireAmount         `json:"balance"`
	Metadata       map[string]any      `json:"metadata"`
}

type wireCustomersList struct {
	Customers []wireCustomer `json:"customers"`
	Cursor    string         `json:"cursor"`
	HasMore   bool           `json:"hasMore"`
}

type wireCount struct {
	TotalCount int64 `json:"totalCount"`
}

type wireTransaction struct {
	TransactionID   string `json:"transactionId"`
	CustomerID      string `json:"customerId"`
	PaymentMethodID string `json:"paymentMethodId"`
	Amount          int64  `json:"amount"`
	TransactionType string `json:"transactionType"`
	Created         string `json:"created"`
	Label           string `json:"label"`
}

type wireTransactionsList struct {
	Transactions []wireTransaction `json:"transactions"`
	NextCursor   string            `json:"nextCursor"`
	HasMore      bool              `json:"hasMore"`
}

type wireAutoReload struct {
	Enabled         bool   `json:"enabled"`
	PaymentMethodID string `json:"paymentMethodId"`
	ReloadAmount    int64  `json:"reloadAmount"`
	ReloadThreshold int64  `json:"reloadThreshold"`
}

type wireCard struct {
	Brand    string `json:"brand"`
	LastFour string `json:"lastFour"`
}

type wirePaymentMethod struct {
	ID   string    `json:"id"`
	Card *wireCard `json:"card"`
}

type wirePaymentMethodsList struct {
	PaymentMethods []wirePaymentMethod `json:"paymentMethods"`
}

type wireAutoReloadConfig struct {
	MinimumAutoReloadAmount    int64 `json:"minimum_auto_reload_amount"`
	MaximumAutoReloadAmount    int64 `json:"maximum_auto_reload_amount"`
	MinimumAutoReloadThreshold int64 `json:"minimum_auto_reload_threshold"`
}

type wireRewardTier struct {
	MinTransactionRequirement int64 `json:"minTransactionRequirement"`
	PromotionAmount           int64 `json:"promotionAmount"`
}

type wirePromotions struct {
	Type        string           `json:"type"`
	RewardTiers []wireRewardTier `json:"rewardTiers"`
}

type wireMerchantMetadata struct {
	AutoReloadConfig wireAutoReloadConfig `json:"auto_reload_config"`
	Promotions       *wirePromotions      `json:"promotions"`
}

type wireMerchant struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Metadata wireMerchantMetadata `json:"metadata"`
}

// wirePromoTier and wirePromoConfig are the PUT /merchants/{merchantId}
// body; the tier amount key differs from the one Ansa reads back.
type wirePromoTier struct {
	MinTransactionRequirement int64 `json:"minTransactionRequirement"`
	PromoAmount               int64 `json:"promoAmount"`
}

type wirePromoConfig struct {
	PromoType   string          `json:"promoType"`
	RewardTiers []wirePromoTier `json:"rewardTiers"`
}

type wireUpdateMerchant struct {
	PromoConfig *wirePromoConfig `json:"promoConfig"`
}

type wireMerchantInsights struct {
	TotalUsers                 int64      `json:"totalUsers"`
	TotalCustomerAddedBalance  wireAmount `json:"totalCustomerAddedBalance"`
	TotalCustomerBalance       wireAmount `json:"totalCustomerBalance"`
	TotalSettledBalance        wireAmount `json:"totalSettledBalance"`
	TotalMerchantFundedBalance wireAmount `json:"totalMerchantFundedBalance"`
}

type wireFundedBalance struct {
	CustomerID     string     `json:"customerId"`
	TransactionID  string     `json:"transactionId"`
	Timestamp      string     `json:"timestamp"`
	CurrentBalance wireAmount `json:"currentBalance"`
}

type wireRefund struct {
	ID            string         `json:"id"`
	TransactionID string         `json:"transactionId"`
	CustomerID    string         `json:"customerId"`
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency"`
	Status        string         `json:"status"`
	Type          string         `json:"type"`
	Reason        string         `json:"reason"`
	Created       string         `json:"created"`
	Metadata      map[string]any `json:"metadata"`
}

type wireVirtualCardDetails struct {
	LastFour       string `json:"lastFour"`
	ExpMonth       string `json:"expMonth"`
	ExpYear        string `json:"expYear"`
	CardHolderName string `json:"cardHolderName"`
	CardNetwork    string `json:"cardNetwork"`
	State          string `json:"state"`
}

type wireVirtualCard struct {
	ID        string                  `json:"id"`
	CreatedAt string                  `json:"createdAt"`
	Type      string                  `json:"type"`
	Card      *wireVirtualCardDetails `json:"card"`
}

type wireVCTransaction struct {
	ID                  string `json:"id"`
	AcceptorID          string `json:"acceptorId"`
	AuthorizationAmount int64  `json:"authorizationAmount"`
	Decision            string `json:"decision"`
	Status              string `json:"status"`
	Created             string `json:"created"`
}

type wireVCTransactionsList struct {
	Transactions []wireVCTransaction `json:"transactions"`
	NextCursor   string              `json:"nextCursor"`
	HasMore      bool                `json:"hasMore"`
}

// Bodies for merchant-scoped POSTs.

type wireFundBalance struct {
	CustomerID string `json:"customerId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	Reason     string `json:"reason,omitempty"`
}

type wireRefundBalance struct {
	TransactionID string `json:"transactionId"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
}

type wireCardState struct {
	Status string `json:"status"`
}

// Internal-admin bodies used by the seeding CLI.

type wireAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type wireCreateCustomer struct {
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	BillingDetails struct {
		FirstName string      `json:"firstName"`
		LastName  string      `json:"lastName"`
		Address   wireAddress `json:"address"`
	} `json:"billingDetails"`
}

type wireCreatePaymentMethod struct {
	Token       string         `json:"token"`
	TokenSource string         `json:"tokenSource"`
	TokenData   map[string]any `json:"tokenData"`
	Metadata    map[string]any `json:"metadata"`
}

type wireAddBalance struct {
	PaymentMethodID string `json:"paymentMethodId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

type wireUseBalance struct {
	Amount int64  `json:"amount"`
	Label  string `json:"label,omitempty"`
}

type wireCreateMerchant struct {
	Name                    string `json:"name"`
	DefaultPaymentProcessor string `json:"defaultPaymentProcessor"`
	SquareAppClientID       string `json:"squareAppClientId"`
	SquareAppClientSecret   string `json:"squareAppClientSecret"`
	SquareAccessToken       string `json:"squareAccessToken"`
}

type wireCreatedMerchant struct {
	MerchantID        string `json:"merchantId"`
	MerchantSecretKey string `json:"merchantSecretKey"`
}
