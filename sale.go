package mintgate

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/xraph/mintgate/id"
	"github.com/xraph/mintgate/ledger"
	"github.com/xraph/mintgate/plugin"
	"github.com/xraph/mintgate/receipt"
	"github.com/xraph/mintgate/registry"
	"github.com/xraph/mintgate/schedule"
	"github.com/xraph/mintgate/store"
	"github.com/xraph/mintgate/treasury"
	"github.com/xraph/mintgate/types"
)

// Sale is the first-generation sale engine. It owns the price schedule, the
// whitelist registry, the mint ledger and the treasury, and serializes every
// mutation behind one mutex so each operation is atomic.
type Sale struct {
	mu sync.RWMutex

	admin  types.Account
	saleID id.SaleID

	schedule *schedule.Schedule
	registry *registry.Registry
	ledger   *ledger.Ledger
	vault    *treasury.Vault

	hooks   *plugin.Registry
	journal store.Store
	logger  *slog.Logger

	baseURI string
	paused  bool
	now     func() time.Time

	// transfer is captured here during option application and handed to
	// the vault in New.
	transfer treasury.TransferFunc

	// quote and authorized are the purchase-path extension points; the
	// successor generation replaces both.
	quote      func(itemID uint64, buyer types.Account) (types.Amount, error)
	authorized func(call types.Call) bool
}

// New creates a first-generation sale administered by admin, selling one item
// per schedule entry. The whitelist starts enabled and the sale starts
// unpaused.
func New(admin types.Account, prices []types.Amount, opts ...Option) (*Sale, error) {
	if types.IsNullAccount(admin) {
		return nil, types.ErrInvalidAccount
	}
	sched, err := schedule.New(prices)
	if err != nil {
		return nil, err
	}

	s := &Sale{
		admin:    admin,
		saleID:   id.NewSaleID(),
		schedule: sched,
		registry: registry.New(),
		ledger:   ledger.New(uint64(sched.Len())),
		hooks:    plugin.NewRegistry(),
		logger:   slog.Default(),
		now:      time.Now,
	}
	s.quote = func(itemID uint64, _ types.Account) (types.Amount, error) {
		return s.schedule.PriceOf(itemID)
	}
	s.authorized = func(call types.Call) bool {
		return s.registry.IsAuthorized(call.Sender, call.Relayer)
	}

	for _, opt := range opts {
		opt(s)
	}
	s.vault = treasury.New(s.transfer)

	return s, nil
}

// Option configures a Sale instance.
type Option func(*Sale)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sale) {
		s.logger = logger
		s.hooks.WithLogger(logger)
	}
}

// WithStore attaches a journal store. Receipts are written best-effort; a
// journal failure never rolls back a fulfilled operation.
func WithStore(journal store.Store) Option {
	return func(s *Sale) {
		s.journal = journal
	}
}

// WithHook registers a plugin.
func WithHook(p plugin.Plugin) Option {
	return func(s *Sale) {
		_ = s.hooks.Register(p) //nolint:errcheck // best-effort plugin registration during init
	}
}

// WithTransferFunc sets the external settlement used by Withdraw.
func WithTransferFunc(transfer treasury.TransferFunc) Option {
	return func(s *Sale) {
		s.transfer = transfer
	}
}

// WithBaseURI sets the metadata URI prefix.
func WithBaseURI(uri string) Option {
	return func(s *Sale) {
		s.baseURI = uri
	}
}

// WithClock overrides the engine clock. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Sale) {
		s.now = now
	}
}

// ID returns the sale's identifier.
func (s *Sale) ID() id.SaleID { return s.saleID }

// Admin returns the fixed administrator account.
func (s *Sale) Admin() types.Account { return s.admin }

// Hooks exposes the plugin registry for runtime registration.
func (s *Sale) Hooks() *plugin.Registry { return s.hooks }

func (s *Sale) authorize(caller types.Account) error {
	if caller != s.admin {
		return types.ErrUnauthorized
	}
	return nil
}

// ──────────────────────────────────────────────────
// Purchase
// ──────────────────────────────────────────────────

// BuyToken sells itemID to call.Sender for payment. The gates run in a fixed
// order: pause, whitelist, price quote, payment, mint. Overpayment is kept by
// the treasury.
func (s *Sale) BuyToken(ctx context.Context, call types.Call, itemID uint64, payment types.Amount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reject := func(reason error) error {
		s.hooks.EmitPurchaseRejected(ctx, call.Sender, itemID, reason)
		return reason
	}

	if s.paused {
		return reject(types.ErrSalePaused)
	}
	if !s.authorized(call) {
		return reject(types.ErrNotWhitelisted)
	}
	price, err := s.quote(itemID, call.Sender)
	if err != nil {
		return reject(err)
	}
	if payment.LessThan(price) {
		return reject(types.ErrInsufficientPayment)
	}
	if err := s.ledger.Mint(itemID, call.Sender); err != nil {
		return reject(err)
	}
	s.vault.Credit(payment)

	s.record(ctx, &receipt.Receipt{
		Kind:    receipt.KindPurchase,
		ItemID:  &itemID,
		Account: call.Sender,
		Amount:  payment,
		Price:   price,
	})
	s.hooks.EmitTokenPurchased(ctx, call.Sender, itemID, price, payment)
	s.logger.Info("token purchased",
		"sale_id", s.saleID,
		"item_id", itemID,
		"buyer", call.Sender.Hex(),
		"price", price,
		"paid", payment,
	)
	return nil
}

// AirdropToken mints itemID to the given account without payment or gates.
// Admin only.
func (s *Sale) AirdropToken(ctx context.Context, caller types.Account, itemID uint64, to types.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(caller); err != nil {
		return err
	}
	if !s.schedule.Contains(itemID) {
		return types.ErrInvalidItemID
	}
	if err := s.ledger.Mint(itemID, to); err != nil {
		return err
	}

	s.record(ctx, &receipt.Receipt{
		Kind:    receipt.KindAirdrop,
		ItemID:  &itemID,
		Account: to,
	})
	s.hooks.EmitTokenAirdropped(ctx, caller, to, itemID)
	s.logger.Info("token airdropped",
		"sale_id", s.saleID,
		"item_id", itemID,
		"to", to.Hex(),
	)
	return nil
}

// ──────────────────────────────────────────────────
// Whitelist administration
// ──────────────────────────────────────────────────

// AddWhitelistedUsers adds buyer accounts to the whitelist. Admin only.
func (s *Sale) AddWhitelistedUsers(ctx context.Context, caller types.Account, accounts []types.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(caller); err != nil {
		return err
	}
	if err := s.registry.AddAccounts(accounts); err != nil {
		return err
	}
	s.hooks.EmitWhitelistUpdated(ctx, caller, accounts, false)
	return nil
}

// RemoveWhitelistedUsers removes buyer accounts from the whitelist. Admin only.
func (s *Sale) RemoveWhitelistedUsers(ctx context.Context, caller types.Account, accounts []types.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(caller); err != nil {
		return err
	}
	if err := s.registry.RemoveAccounts(accounts); err != nil {
		return err
	}
	s.hooks.EmitWhitelistUpdated(ctx, caller, accounts, true)
	return nil
}

// AddWhitelistedContracts adds relaying contracts to the whitelist. Admin only.
func (s *Sale) AddWhitelistedContracts(ctx context.Context, caller types.Account, accounts []types.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(caller); err != nil {
		return err
	}
	if err := s.registry.AddContracts(accounts); err != nil {
		return err
	}
	s.hooks.EmitWhitelistContractsUpdated(ctx, caller, accounts, false)
	return nil
}

// RemoveWhitelistedContracts removes relaying contracts from the whitelist.
// Admin only.
func (s *Sale) RemoveWhitelistedContracts(ctx context.Context, caller types.Account, accounts []types.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(caller); err != nil {
		return err
	}
	if err := s.registry.RemoveContracts(accounts); err != nil {
		return err
	}
	s.hooks.EmitWhitelistContractsUpdated(ctx, caller, accounts, true)
	return nil
}

// FlipWhitelistedStatus toggles whitelist enforcement and returns the new
// state. Admin only.
func (s *Sale) FlipWhitelistedStatus(ctx context.Context, caller types.Account) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(caller); err != nil {
		return false, err
	}
	enabled := s.registry.ToggleEnabled()
	s.hooks.EmitWhitelistFlipped(ctx, caller, enabled)
	s.logger.Info("whitelist flipped", "sale_id", s.saleID, "enabled", enabled)
	return enabled, nil
}

// FlipPausedStatus toggles the pause flag and returns the new state. Admin
// only.
func (s *Sale) FlipPausedStatus(ctx context.Context, caller types.Account) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(caller); err != nil {
		return false, err
	}
	s.paused = !s.paused
	s.hooks.EmitPausedFlipped(ctx, caller, s.paused)
	s.logger.Info("pause flipped", "sale_id", s.saleID, "paused", s.paused)
	return s.paused, nil
}

// ──────────────────────────────────────────────────
// Pricing and metadata administration
// ──────────────────────────────────────────────────

// SetTokenPrice updates the base price of one item. Admin only.
func (s *Sale) SetTokenPrice(ctx context.Context, caller types.Account, itemID uint64, price types.Amount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(caller); err != nil {
		return err
	}
	if err := s.schedule.SetPrice(itemID, price); err != nil {
		return err
	}
	s.hooks.EmitPriceUpdated(ctx, caller, itemID, price)
	return nil
}

// SetBaseURI updates the metadata URI prefix. Admin only.
func (s *Sale) SetBaseURI(ctx context.Context, caller types.Account, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(caller); err != nil {
		return err
	}
	s.baseURI = uri
	s.hooks.EmitBaseURIUpdated(ctx, caller, uri)
	return nil
}

// ──────────────────────────────────────────────────
// Treasury
// ──────────────────────────────────────────────────

// Withdraw settles the full treasury balance to the caller. Admin only. The
// balance is zeroed before the external transfer runs, so a reentrant call
// observes an empty vault.
func (s *Sale) Withdraw(ctx context.Context, caller types.Account) (types.Amount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(caller); err != nil {
		return types.ZeroAmount(), err
	}
	amount, err := s.vault.Withdraw(ctx, caller)
	if err != nil {
		return types.ZeroAmount(), err
	}

	s.record(ctx, &receipt.Receipt{
		Kind:    receipt.KindWithdrawal,
		Account: caller,
		Amount:  amount,
	})
	// The beneficiary slot in the event is a placeholder and always holds
	// the null account.
	s.hooks.EmitFundsWithdrawn(ctx, caller, amount, s.now(), types.NullAccount)
	s.logger.Info("funds withdrawn", "sale_id", s.saleID, "amount", amount)
	return amount, nil
}

// Balance returns the treasury balance.
func (s *Sale) Balance() types.Amount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vault.Balance()
}

// ──────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────

// TokenPrice returns the base price of itemID.
func (s *Sale) TokenPrice(itemID uint64) (types.Amount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schedule.PriceOf(itemID)
}

// TokenURI returns the metadata URI of a minted item, the base URI followed
// by the decimal item id. Unminted items have no metadata yet.
func (s *Sale) TokenURI(itemID uint64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.schedule.Contains(itemID) {
		return "", types.ErrInvalidItemID
	}
	if !s.ledger.Minted(itemID) {
		return "", types.ErrItemNotFound
	}
	return s.baseURI + strconv.FormatUint(itemID, 10), nil
}

// Owned returns the item ids held by account in mint order.
func (s *Sale) Owned(account types.Account) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Owned(account)
}

// OwnerOf returns the owner of a minted item.
func (s *Sale) OwnerOf(itemID uint64) (types.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.OwnerOf(itemID)
}

// TotalSupply returns the number of items minted so far.
func (s *Sale) TotalSupply() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.TotalSupply()
}

// RemainingSupply returns the number of items still unminted.
func (s *Sale) RemainingSupply() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.RemainingSupply()
}

// IsSoldOut reports whether every item has been minted.
func (s *Sale) IsSoldOut() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.IsSoldOut()
}

// Paused reports whether purchases are currently suspended.
func (s *Sale) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}

// WhitelistEnabled reports whether the whitelist gate is enforced.
func (s *Sale) WhitelistEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Enabled()
}

// IsWhitelisted reports whether account is on the buyer whitelist.
func (s *Sale) IsWhitelisted(account types.Account) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.HasAccount(account)
}

// BaseURI returns the metadata URI prefix.
func (s *Sale) BaseURI() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseURI
}

// Receipts lists journal entries for this sale. Fails with ErrNotFound when
// no journal store is attached.
func (s *Sale) Receipts(ctx context.Context, opts receipt.ListOpts) ([]*receipt.Receipt, error) {
	if s.journal == nil {
		return nil, ErrNotFound
	}
	return s.journal.ListReceipts(ctx, s.saleID, opts)
}

// record writes a journal receipt. Journal failures are logged and swallowed;
// the in-memory state is authoritative.
func (s *Sale) record(ctx context.Context, r *receipt.Receipt) {
	if s.journal == nil {
		return
	}
	r.ID = id.NewReceiptID()
	r.SaleID = s.saleID
	r.Entity = types.NewEntity()
	if err := s.journal.SaveReceipt(ctx, r); err != nil {
		s.logger.Warn("journal write failed",
			"sale_id", s.saleID,
			"kind", r.Kind,
			"error", err,
		)
	}
}
