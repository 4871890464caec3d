package ansa

// Internal shapes served to the dashboard. Upstream payloads are reshaped
// into these and validated before leaving the package; all monetary amounts
// are integer cents.

const (
	TX_ADD_BALANCE      = "add_balance"
	TX_USE_BALANCE      = "use_balance"
	TX_MERCHANT_REFUND  = "merchant_refund"
	TX_MERCHANT_PROMO   = "merchant_add_promo"
	TX_OPEN_DISPUTE     = "open_dispute"
	TX_CARD_AUTH        = "card_authorize_transaction"
	TX_CARD_FORCE_AUTH  = "card_force_authorize_transaction"
	TX_CARD_RETURN      = "card_return_transaction"
)

const (
	PROMO_FIRST_TOP_UP  = "first_top_up"
	PROMO_ONCE_PER_TIER = "once_per_tier"
	PROMO_TIERED        = "tiered"
)

const (
	CARD_STATE_OPEN   = "OPEN"
	CARD_STATE_PAUSED = "PAUSED"
	CARD_STATE_CLOSED = "CLOSED"
)

type Customer struct {
	ID        string `json:"id" validate:"required,uuid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status" validate:"required"`
}

type Balance struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency" validate:"required"`
}

type CustomerDetailed struct {
	Customer
	Balance  Balance        `json:"balance"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type CustomersPage struct {
	Results []Customer `json:"results" validate:"dive"`
	Cursor  string     `json:"cursor"`
	HasMore bool       `json:"hasMore"`
}

type Count struct {
	TotalCount int64 `json:"totalCount" validate:"gte=0"`
}

type Transaction struct {
	ID              string `json:"id" validate:"required"`
	CustomerID      string `json:"customerId,omitempty" validate:"omitempty,uuid"`
	PaymentMethodID string `json:"paymentMethodId,omitempty"`
	Amount          int64  `json:"amount"`
	Type            string `json:"type" validate:"required,oneof=add_balance use_balance merchant_refund merchant_add_promo open_dispute card_authorize_transaction card_force_authorize_transaction card_return_transaction"`
	CreatedAt       string `json:"createdAt" validate:"required"`
	Label           string `json:"label,omitempty"`
}

type TransactionsPage struct {
	Results    []Transaction `json:"results" validate:"dive"`
	NextCursor string        `json:"nextCursor"`
	HasMore    bool          `json:"hasMore"`
}

type AutoReload struct {
	Enabled         bool   `json:"enabled"`
	PaymentMethodID string `json:"paymentMethodId,omitempty"`
	ReloadAmount    int64  `json:"reloadAmount,omitempty" validate:"gte=0"`
	ReloadThreshold int64  `json:"reloadThreshold,omitempty" validate:"gte=0"`
}

type PaymentMethod struct {
	ID         string `json:"id" validate:"required"`
	CustomerID string `json:"customerId" validate:"required"`
	Brand      string `json:"brand" validate:"required"`
	LastFour   string `json:"lastFour" validate:"required"`
}

type RewardTier struct {
	MinTransactionRequirement int64 `json:"minTransactionRequirement" validate:"gte=0"`
	PromotionAmount           int64 `json:"promotionAmount" validate:"gte=0"`
}

type PromotionConfig struct {
	Type        string       `json:"type" validate:"required,oneof=first_top_up once_per_tier tiered"`
	RewardTiers []RewardTier `json:"rewardTiers" validate:"dive"`
}

type AutoReloadConfig struct {
	MinimumReloadAmount    int64 `json:"minimumReloadAmount" validate:"gte=0"`
	MaximumReloadAmount    int64 `json:"maximumReloadAmount" validate:"gte=0"`
	MinimumReloadThreshold int64 `json:"minimumReloadThreshold" validate:"gte=0"`
}

type MerchantMetadata struct {
	AutoReloadConfig AutoReloadConfig `json:"autoReloadConfig"`
	PromotionConfig  *PromotionConfig `json:"promotionConfig,omitempty"`
}

type Merchant struct {
	ID       string           `json:"id" validate:"required"`
	Name     string           `json:"name" validate:"required"`
	Metadata MerchantMetadata `json:"metadata"`
}

// Insights flattens the nested upstream {amount} objects into plain cents.
type Insights struct {
	TotalCustomerAddedBalance  int64 `json:"totalCustomerAddedBalance"`
	TotalMerchantFundedBalance int64 `json:"totalMerchantFundedBalance"`
	TotalCustomerBalance       int64 `json:"totalCustomerBalance"`
	TotalSettledBalance        int64 `json:"totalSettledBalance"`
	TotalUsers                 int64 `json:"totalUsers" validate:"gte=0"`
}

type FundedBalance struct {
	CustomerID     string  `json:"customerId" validate:"required"`
	TransactionID  string  `json:"transactionId" validate:"required"`
	Timestamp      string  `json:"timestamp" validate:"required"`
	CurrentBalance Balance `json:"currentBalance"`
}

type Refund struct {
	ID            string         `json:"id" validate:"required"`
	TransactionID string         `json:"transactionId" validate:"required"`
	CustomerID    string         `json:"customerId" validate:"required"`
	Amount        int64          `json:"amount" validate:"gt=0"`
	Currency      string         `json:"currency" validate:"required"`
	Status        string         `json:"status" validate:"required,oneof=succeeded"`
	Type          string         `json:"type" validate:"required,oneof=balance payment_method promotion"`
	Reason        string         `json:"reason,omitempty"`
	CreatedAt     string         `json:"createdAt" validate:"required"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

type VirtualCardDetails struct {
	LastFour       string `json:"lastFour" validate:"required"`
	ExpMonth       string `json:"expMonth" validate:"required"`
	ExpYear        string `json:"expYear" validate:"required"`
	CardHolderName string `json:"cardHolderName"`
	CardNetwork    string `json:"cardNetwork" validate:"required"`
	State          string `json:"state" validate:"required,oneof=OPEN PAUSED CLOSED"`
}

type VirtualCard struct {
	ID        string             `json:"id" validate:"required"`
	CreatedAt string             `json:"createdAt" validate:"required"`
	Type      string             `json:"type"`
	Card      VirtualCardDetails `json:"card"`
}

type VirtualCardTransaction struct {
	ID                  string `json:"id" validate:"required"`
	AcceptorID          string `json:"acceptorId"`
	AuthorizationAmount int64  `json:"authorizationAmount"`
	Decision            string `json:"decision"`
	Status              string `json:"status"`
	Created             string `json:"created" validate:"required"`
}

type VirtualCardTransactionsPage struct {
	Results    []VirtualCardTransaction `json:"results" validate:"dive"`
	NextCursor string                   `json:"nextCursor"`
	HasMore    bool                     `json:"hasMore"`
}

// Request bodies accepted from the dashboard. Amounts arrive as cents; the
// bounds mirror what Ansa enforces so bad input is rejected before the
// upstream round trip.

// TransactionsQuery filters a transactions listing. Zero values are left
// out of the upstream query string.
type TransactionsQuery struct {
	Cursor            string `json:"cursor"`
	Limit             int    `json:"limit" validate:"omitempty,gte=1,lte=100"`
	TransactionType   string `json:"transactionType" validate:"omitempty,oneof=add_balance use_balance merchant_refund merchant_add_promo open_dispute card_authorize_transaction card_force_authorize_transaction card_return_transaction"`
	CreatedAtOrBefore string `json:"createdAtOrBefore"`
	CreatedAtOrAfter  string `json:"createdAtOrAfter"`
	Label             string `json:"label"`
	Direction         string `json:"direction" validate:"omitempty,oneof=forward backward"`
}

// SearchParams narrows /customers/search; at least one field must be set.
type SearchParams struct {
	CustomerID  string `json:"customerId" validate:"omitempty,uuid"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type AutoReloadParams struct {
	Enabled         bool   `json:"enabled"`
	PaymentMethodID string `json:"paymentMethodId" validate:"required_if=Enabled true"`
	ReloadAmount    int64  `json:"reloadAmount" validate:"omitempty,gte=0"`
	ReloadThreshold int64  `json:"reloadThreshold" validate:"omitempty,gte=0"`
}

type TierParams struct {
	MinTransactionRequirement int64 `json:"minTransactionRequirement" validate:"gte=100,lte=99999"`
	PromotionAmount           int64 `json:"promotionAmount" validate:"gte=1,lte=25000"`
}

type PromotionParams struct {
	PromotionType string       `json:"promotionType" validate:"required,oneof=first_top_up once_per_tier tiered"`
	Tiers         []TierParams `json:"tiers" validate:"required,min=1,max=5,dive"`
}

// UpdateMerchantParams clears the promotion config when PromoConfig is nil.
type UpdateMerchantParams struct {
	PromoConfig *PromotionParams `json:"promoConfig" validate:"omitempty"`
}

type FundBalanceParams struct {
	CustomerID string `json:"customerId" validate:"required"`
	Amount     int64  `json:"amount" validate:"gt=0"`
	Currency   string `json:"currency" validate:"required,oneof=usd USD"`
	Reason     string `json:"reason"`
}

type RefundBalanceParams struct {
	TransactionID string `json:"transactionId" validate:"required,uuid"`
	Amount        int64  `json:"amount" validate:"gt=0"`
	Currency      string `json:"currency" validate:"required,oneof=usd USD"`
}

type CardStateParams struct {
	State string `json:"state" validate:"required,oneof=OPEN PAUSED CLOSED"`
}
