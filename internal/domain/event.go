package domain

import "time"

type EventKind string

const (
	EventPromotedItemView             EventKind = "promoted_item_view"
	EventDisplayAdView                EventKind = "display_ad_view"
	EventSessionCardViewsCountChanged EventKind = "session_card_views_count_changed"
	EventInteractionSessionStarted    EventKind = "interaction_session_started"
)

// Event is an outbound analytics event.
type Event struct {
	ID                 string    `json:"id"`
	Kind               EventKind `json:"kind"`
	UUID               string    `json:"uuid,omitempty"`
	CreativeInstanceID string    `json:"creative_instance_id,omitempty"`
	Count              int       `json:"count,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}
