// Package feedview drives the feed list of one tab: attaching and restoring
// the scroll position, loading, and turning scroll reports into impressions.
package feedview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"news_feed/internal/domain"
	"news_feed/internal/session"
)

// MinimumVisibleHeightThreshold is the visible percentage at which a row
// counts as seen.
const MinimumVisibleHeightThreshold = 50.0

const (
	viewCountMilestone = 4
	minScrollPosition  = 2
)

var (
	ErrNotAttached = errors.New("view not attached")
	ErrNotReady    = errors.New("view not ready")
)

type State int

const (
	StateUnattached State = iota
	StateLoading
	StateReady
	StateScrolling
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateScrolling:
		return "scrolling"
	default:
		return "unattached"
	}
}

// RowVisibility is the on-screen geometry of one rendered row.
type RowVisibility struct {
	Position      int
	VisibleHeight float64
	Height        float64
}

// Percentage returns how much of the row is on screen, 0-100.
func (r RowVisibility) Percentage() float64 {
	if r.Height <= 0 {
		return 0
	}
	return r.VisibleHeight / r.Height * 100
}

type AttachResult struct {
	State State
	// ScrollTo is the list position to restore, 0 when starting fresh.
	ScrollTo int
	// Done is closed once the cards are in place.
	Done <-chan struct{}
}

type IdleResult struct {
	// ActivePosition is -1 when no row is visible enough.
	ActivePosition  int
	Impression      domain.EventKind
	UpdateAvailable bool
}

type View struct {
	session   *session.Session
	feed      Feed
	analytics Analytics
	ads       AdProvider
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// impressions serializes flag checks with the events they guard.
	impressions sync.Mutex

	mu       sync.Mutex
	state    State
	loading  bool
	ready    chan struct{}
	active   *domain.FeedCard
	position int
}

func New(sess *session.Session, feed Feed, analytics Analytics, ads AdProvider, logger *slog.Logger) *View {
	ctx, cancel := context.WithCancel(context.Background())
	return &View{
		session:   sess,
		feed:      feed,
		analytics: analytics,
		ads:       ads,
		logger:    logger.With("tab_id", sess.TabID()),
		ctx:       ctx,
		cancel:    cancel,
		position:  -1,
	}
}

func (v *View) TabID() string {
	return v.session.TabID()
}

// Attach shows the feed. A tab that already holds cards and has a stored
// resume index is restored in place; anything else starts a new session.
func (v *View) Attach(ctx context.Context) (*AttachResult, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.session.Closed() {
		return nil, ErrNotAttached
	}

	switch v.state {
	case StateLoading:
		return &AttachResult{State: v.state, Done: v.ready}, nil
	case StateReady, StateScrolling:
		return &AttachResult{State: v.state, Done: closedChan()}, nil
	}

	if v.loading {
		v.state = StateLoading
		return &AttachResult{State: v.state, Done: v.ready}, nil
	}

	resume, err := v.feed.ResumeIndex(ctx, v.TabID())
	if err != nil {
		v.logger.Warn("failed to read resume index", "error", err)
		resume = 0
	}

	if resume != 0 && v.session.Len() > 0 {
		v.state = StateReady
		scrollTo := max(resume+1, minScrollPosition)
		v.logger.Debug("restoring feed", "resume_index", resume, "scroll_to", scrollTo)
		return &AttachResult{State: v.state, ScrollTo: scrollTo, Done: closedChan()}, nil
	}

	gen := v.session.Begin()
	if err := v.feed.StartSession(ctx, v.TabID()); err != nil {
		v.logger.Warn("failed to start session", "error", err)
	}
	v.analytics.InteractionSessionStarted()

	return v.startLoad(gen), nil
}

// Refresh discards the cards and loads the feed again.
func (v *View) Refresh(ctx context.Context) (*AttachResult, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.state {
	case StateUnattached:
		return nil, ErrNotAttached
	case StateLoading:
		return &AttachResult{State: v.state, Done: v.ready}, nil
	}

	v.logger.Info("refreshing feed")
	return v.startLoad(v.session.Begin()), nil
}

// startLoad must be called with v.mu held.
func (v *View) startLoad(gen uint64) *AttachResult {
	v.state = StateLoading
	v.loading = true
	v.active = nil
	v.position = -1

	ready := make(chan struct{})
	v.ready = ready

	go v.load(gen, ready)

	return &AttachResult{State: v.state, Done: ready}
}

func (v *View) load(gen uint64, ready chan struct{}) {
	defer close(ready)

	feed, err := v.feed.Load(v.ctx, v.TabID())
	if err != nil {
		v.logger.Debug("feed load abandoned", "error", err)
		feed = nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.session.Apply(gen, feed) {
		v.logger.Debug("discarding stale feed", "generation", gen)
		return
	}
	v.loading = false
	if v.state == StateLoading {
		v.state = StateReady
	}
}

// OnDragStart stores the first completely visible row as the resume index.
func (v *View) OnDragStart(ctx context.Context, firstFullyVisible int) error {
	v.mu.Lock()
	if v.state != StateReady && v.state != StateScrolling {
		v.mu.Unlock()
		return ErrNotReady
	}
	v.state = StateScrolling
	v.mu.Unlock()

	if firstFullyVisible <= 0 {
		return nil
	}
	if err := v.feed.SaveResumeIndex(ctx, v.TabID(), firstFullyVisible); err != nil {
		return fmt.Errorf("save resume index: %w", err)
	}
	return nil
}

// OnScrollIdle picks the active card from the visible rows. Impressions are
// only recorded when the list settles after a drag.
func (v *View) OnScrollIdle(ctx context.Context, rows []RowVisibility) (*IdleResult, error) {
	v.mu.Lock()
	if v.state != StateReady && v.state != StateScrolling {
		v.mu.Unlock()
		return nil, ErrNotReady
	}
	wasScrolling := v.state == StateScrolling
	v.state = StateReady

	card, position := v.findActive(rows)
	v.active = card
	v.position = position
	v.mu.Unlock()

	res := &IdleResult{
		ActivePosition:  position,
		UpdateAvailable: v.feed.UpdateAvailable(ctx),
	}
	if card == nil || !wasScrolling {
		return res, nil
	}

	kind, err := v.recordImpression(ctx, card)
	if err != nil {
		return res, err
	}
	res.Impression = kind
	return res, nil
}

// findActive returns the bottom-most row that is at least half visible.
func (v *View) findActive(rows []RowVisibility) (*domain.FeedCard, int) {
	sorted := make([]RowVisibility, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	var active *domain.FeedCard
	position := -1
	for _, row := range sorted {
		if row.Percentage() < MinimumVisibleHeightThreshold {
			continue
		}
		card := v.session.Card(row.Position)
		if card == nil {
			continue
		}
		active = card
		position = row.Position
	}
	return active, position
}

func (v *View) recordImpression(ctx context.Context, card *domain.FeedCard) (domain.EventKind, error) {
	v.impressions.Lock()
	defer v.impressions.Unlock()

	if card.ImpressionRecorded() {
		return "", nil
	}

	switch card.Type {
	case domain.CardPromotedArticle:
		if !card.MarkImpression() {
			return "", nil
		}
		creativeID := card.PromotionID()
		if card.ID == "" || creativeID == "" {
			v.logger.Debug("promoted card without ids", "card_id", card.ID)
			return "", nil
		}
		v.analytics.PromotedItemView(card.ID, creativeID)
		return domain.EventPromotedItemView, nil

	case domain.CardDisplayAd:
		// Nothing is recorded until an ad has been resolved for the slot.
		ad := v.ads.Current()
		if ad == nil || ad.UUID == "" || ad.CreativeInstanceID == "" {
			return "", nil
		}
		if !card.MarkImpression() {
			return "", nil
		}
		v.analytics.DisplayAdView(ad.UUID, ad.CreativeInstanceID)
		return domain.EventDisplayAdView, nil

	default:
		// The flag stays unset on a failed increment so the card is counted
		// on a later idle.
		count, err := v.feed.RecordCardView(ctx, v.TabID())
		if err != nil {
			return "", fmt.Errorf("record card view: %w", err)
		}
		card.MarkImpression()
		if count > 0 && count%viewCountMilestone == 0 {
			v.analytics.SessionCardViewsCountChanged(count)
			return domain.EventSessionCardViewsCountChanged, nil
		}
		return "", nil
	}
}

// Detach hides the view. Cards stay in the session for the next Attach.
func (v *View) Detach() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state = StateUnattached
	v.active = nil
	v.position = -1
}

// Close stops any pending load and drops the session.
func (v *View) Close() {
	v.cancel()
	v.session.Close()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = StateUnattached
	v.active = nil
	v.position = -1
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) Cards() []*domain.FeedCard {
	return v.session.Cards()
}

// Active returns the current active card and its position, or nil and -1.
func (v *View) Active() (*domain.FeedCard, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active, v.position
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
