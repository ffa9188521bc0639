package domain

import (
	"fmt"
	"sync/atomic"
	"time"
)

// CardType is the layout a group of feed items is rendered with.
type CardType string

const (
	CardHeadline        CardType = "headline"
	CardHeadlinePaired  CardType = "headline_paired"
	CardCategoryGroup   CardType = "category_group"
	CardPublisherGroup  CardType = "publisher_group"
	CardDeals           CardType = "deals"
	CardDisplayAd       CardType = "display_ad"
	CardPromotedArticle CardType = "promoted_article"
)

// ParseCardType maps a wire name to a CardType.
func ParseCardType(s string) (CardType, error) {
	switch ct := CardType(s); ct {
	case CardHeadline, CardHeadlinePaired, CardCategoryGroup, CardPublisherGroup,
		CardDeals, CardDisplayAd, CardPromotedArticle:
		return ct, nil
	}
	return "", fmt.Errorf("unknown card type %q", s)
}

type ItemMetadata struct {
	Title                   string
	Description             string
	URL                     string
	ImageURL                string
	PublisherID             string
	PublisherName           string
	CategoryName            string
	PublishTime             time.Time
	RelativeTimeDescription string
	Score                   float64
}

// FeedItem is one of Article, PromotedArticle, Deal or DisplayAd.
type FeedItem interface {
	Meta() ItemMetadata
	feedItem()
}

type Article struct {
	Data ItemMetadata
}

type PromotedArticle struct {
	Data               ItemMetadata
	CreativeInstanceID string
}

type Deal struct {
	Data           ItemMetadata
	OffersCategory string
}

type DisplayAd struct {
	UUID               string
	CreativeInstanceID string
	Title              string
	Description        string
	ImageURL           string
	TargetURL          string
	CTAText            string
	Dimensions         string
}

func (a Article) Meta() ItemMetadata         { return a.Data }
func (p PromotedArticle) Meta() ItemMetadata { return p.Data }
func (d Deal) Meta() ItemMetadata            { return d.Data }

func (d DisplayAd) Meta() ItemMetadata {
	return ItemMetadata{
		Title:       d.Title,
		Description: d.Description,
		URL:         d.TargetURL,
		ImageURL:    d.ImageURL,
	}
}

func (Article) feedItem()         {}
func (PromotedArticle) feedItem() {}
func (Deal) feedItem()            {}
func (DisplayAd) feedItem()       {}

// Feed is a fetched feed before assembly.
type Feed struct {
	Hash         string
	FeaturedItem FeedItem
	Pages        []FeedPage
}

type FeedPage struct {
	Items []FeedPageItem
}

// FeedPageItem is a group of items sharing one card layout.
type FeedPageItem struct {
	CardType CardType
	Items    []FeedItem
}

// FeedCard is one renderable row of the feed.
type FeedCard struct {
	ID        string
	Type      CardType
	Items     []FeedItem
	DisplayAd *DisplayAd

	impression atomic.Bool
}

// MarkImpression records that the card's view event was handled.
// It returns true only for the call that flipped the flag.
func (c *FeedCard) MarkImpression() bool {
	return c.impression.CompareAndSwap(false, true)
}

func (c *FeedCard) ImpressionRecorded() bool {
	return c.impression.Load()
}

// PromotionID returns the creative instance id of the last promoted article
// in the card, or "" if there is none.
func (c *FeedCard) PromotionID() string {
	var id string
	for _, item := range c.Items {
		if p, ok := item.(PromotedArticle); ok {
			id = p.CreativeInstanceID
		}
	}
	return id
}

// AssembledFeed is the ordered card list built from one Feed.
type AssembledFeed struct {
	Cards []*FeedCard
	Hash  string
}
