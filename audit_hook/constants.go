package audithook

// Action constants for audit events.
const (
	// Purchase actions
	ActionTokenPurchased   = "token.purchased"
	ActionPurchaseRejected = "token.purchase_rejected"
	ActionTokenAirdropped  = "token.airdropped"
	ActionForceTransfer    = "token.force_transferred"

	// Pricing actions
	ActionPriceUpdated          = "price.updated"
	ActionMinPriceUpdated       = "price.min_updated"
	ActionDiscountWindowUpdated = "discount.window_updated"

	// Access-control actions
	ActionWhitelistAdded           = "whitelist.added"
	ActionWhitelistRemoved         = "whitelist.removed"
	ActionWhitelistContractAdded   = "whitelist.contract_added"
	ActionWhitelistContractRemoved = "whitelist.contract_removed"
	ActionWhitelistFlipped         = "whitelist.flipped"
	ActionPausedFlipped            = "sale.pause_flipped"

	// Configuration and treasury actions
	ActionBaseURIUpdated = "metadata.base_uri_updated"
	ActionFundsWithdrawn = "treasury.withdrawn"
)

// Resource constants for audit events.
const (
	ResourceToken     = "token"
	ResourcePrice     = "price"
	ResourceWhitelist = "whitelist"
	ResourceSale      = "sale"
	ResourceTreasury  = "treasury"
	ResourceMetadata  = "metadata"
)

// Category constants for audit events.
const (
	CategorySale     = "sale"
	CategoryPricing  = "pricing"
	CategoryAccess   = "access"
	CategoryTreasury = "treasury"
)

// Severity levels for audit events.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// Outcome values for audit events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
