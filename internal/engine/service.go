package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"lockin/internal/storage"
)

// Service wires the Ledger to the blob store. The Ledger mutates in memory
// only; the Service persists after each successful mutation and absorbs
// storage failures, so a broken database degrades to a session-only ledger.
type Service struct {
	store  *storage.Store
	ledger *Ledger
	clock  Clock
	log    zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock substitutes the time source, mainly for tests.
func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithLogger attaches a logger for absorbed failures.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService loads the persisted state (falling back through legacy
// generation keys, then to a fresh default) and returns a ready service.
// Load failures are absorbed: a corrupt blob logs a warning and starts fresh.
func NewService(ctx context.Context, store *storage.Store, opts ...Option) (*Service, error) {
	s := &Service{
		store: store,
		clock: SystemClock(),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	st, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	s.ledger = NewLedger(st, s.clock)
	return s, nil
}

func (s *Service) loadState(ctx context.Context) (*storage.LedgerState, error) {
	now := s.clock.Now()

	raw, err := s.store.Get(ctx, storage.CurrentKey)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if raw == nil {
		// The key changes with the schema generation; an older key present
		// means an un-migrated database.
		for _, key := range storage.LegacyKeys {
			legacy, err := s.store.Get(ctx, key)
			if err != nil {
				return nil, fmt.Errorf("load state: %w", err)
			}
			if legacy == nil {
				continue
			}
			st, derr := storage.DecodeOrDefault(legacy, now)
			if derr != nil {
				s.log.Warn().Err(derr).Str("key", key).Msg("corrupt legacy state, starting fresh")
			} else {
				s.log.Info().Str("key", key).Int("version", storage.StateVersion).Msg("migrated state from legacy generation")
			}
			return st, nil
		}
		return storage.NewDefault(now), nil
	}

	st, derr := storage.DecodeOrDefault(raw, now)
	if derr != nil {
		s.log.Warn().Err(derr).Msg("corrupt state, starting fresh")
	}
	return st, nil
}

// persist writes the current state under the current generation key. A save
// failure is logged and absorbed: persistence is a local write and the
// in-memory state stays authoritative for the session.
func (s *Service) persist(ctx context.Context) {
	raw, err := storage.Encode(s.ledger.State())
	if err != nil {
		s.log.Warn().Err(err).Msg("encode state failed")
		return
	}
	if err := s.store.Put(ctx, storage.CurrentKey, raw); err != nil {
		s.log.Warn().Err(err).Msg("save state failed")
	}
}

// Ledger exposes the state aggregate for read-only queries.
func (s *Service) Ledger() *Ledger { return s.ledger }

// TickResult reports what the periodic settlement did.
type TickResult struct {
	DayRolled  bool
	CleanDays  int
	CleanBonus int
}

// Tick runs the rollover check then clean accrual, persisting only when
// something changed. Safe to call redundantly: both operations are
// idempotent within their unit boundaries.
func (s *Service) Tick(ctx context.Context) TickResult {
	rolled := s.ledger.CheckDayRollover()
	days := s.ledger.AccrueCleanDays()
	if rolled || days > 0 {
		s.persist(ctx)
	}
	return TickResult{
		DayRolled:  rolled,
		CleanDays:  days,
		CleanBonus: days * s.ledger.CustomPoint("cleanPerDay"),
	}
}

// LogPrayer consumes the next daily prayer slot with the given kind.
func (s *Service) LogPrayer(ctx context.Context, kind PrayerKind) (*ActionResult, error) {
	res, err := s.ledger.logPrayer(kind)
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return res, nil
}

// SubmitStudy records (or corrects) today's study hours.
func (s *Service) SubmitStudy(ctx context.Context, hours float64) (*StudyResult, error) {
	res, err := s.ledger.submitStudy(hours)
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return res, nil
}

// LogGoodDeed applies a once-per-day deed.
func (s *Service) LogGoodDeed(ctx context.Context, deed GoodDeed) (*ActionResult, error) {
	res, err := s.ledger.logGoodDeed(deed)
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return res, nil
}

// PreviewRelapse returns the penalty and confirmation message; nothing is
// mutated until ConfirmRelapse.
func (s *Service) PreviewRelapse(kind RelapseKind) RelapsePreview {
	return s.ledger.previewRelapse(kind)
}

// ConfirmRelapse applies the penalty and resets the streak anchor.
func (s *Service) ConfirmRelapse(ctx context.Context, kind RelapseKind) (*ActionResult, error) {
	res, err := s.ledger.confirmRelapse(kind)
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return res, nil
}

// Export emits the persisted document in its human-readable form.
func (s *Service) Export() ([]byte, error) {
	return storage.EncodeIndent(s.ledger.State())
}

// Import validates and migrates a user-supplied document, then replaces the
// current state wholesale. On any failure the in-memory state is untouched.
func (s *Service) Import(ctx context.Context, raw []byte) error {
	if err := storage.ValidateImport(raw); err != nil {
		return err
	}
	st, err := storage.Decode(raw, s.clock.Now())
	if err != nil {
		return storage.ErrInvalidImport
	}

	doc, err := storage.Encode(st)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := s.store.Replace(ctx, storage.CurrentKey, doc); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	s.ledger = NewLedger(st, s.clock)
	return nil
}

// ResetAll replaces the state with a fresh default and clears legacy slots.
func (s *Service) ResetAll(ctx context.Context) error {
	st := storage.NewDefault(s.clock.Now())
	doc, err := storage.Encode(st)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if err := s.store.Replace(ctx, storage.CurrentKey, doc); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	s.ledger = NewLedger(st, s.clock)
	return nil
}

// SettingsBoundMax caps tunable point values; zero or negative values would
// break the derived relapse penalties.
const SettingsBoundMax = 10000

// SetPointValues updates tunable reward/penalty values. Keys are the
// enumerated customPoints keys only; values are bounds-checked. Rejected
// input leaves every value untouched.
func (s *Service) SetPointValues(ctx context.Context, updates map[string]int) error {
	for key, v := range updates {
		if _, ok := storage.DefaultCustomPoints[key]; !ok {
			return ValidationError{Msg: fmt.Sprintf("unknown setting: %q", key)}
		}
		if v < 1 || v > SettingsBoundMax {
			return ValidationError{Msg: fmt.Sprintf("setting %q must be in 1-%d", key, SettingsBoundMax)}
		}
	}
	for key, v := range updates {
		s.ledger.State().CustomPoints[key] = v
	}
	s.persist(ctx)
	return nil
}

// ResetPointValues restores the default reward/penalty table.
func (s *Service) ResetPointValues(ctx context.Context) {
	cp := s.ledger.State().CustomPoints
	for k := range cp {
		delete(cp, k)
	}
	for k, v := range storage.DefaultCustomPoints {
		cp[k] = v
	}
	s.persist(ctx)
}

// SettingKeys returns the tunable keys in stable order.
func SettingKeys() []string {
	keys := make([]string, 0, len(storage.DefaultCustomPoints))
	for k := range storage.DefaultCustomPoints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
