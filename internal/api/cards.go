package api

import (
	"time"

	"news_feed/internal/domain"
)

type cardResponse struct {
	ID        string             `json:"id"`
	Type      domain.CardType    `json:"type"`
	Items     []itemResponse     `json:"items,omitempty"`
	DisplayAd *displayAdResponse `json:"display_ad,omitempty"`
	Viewed    bool               `json:"viewed"`
}

type itemResponse struct {
	Kind               string     `json:"kind"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	URL                string     `json:"url,omitempty"`
	ImageURL           string     `json:"image_url,omitempty"`
	PublisherID        string     `json:"publisher_id,omitempty"`
	PublisherName      string     `json:"publisher_name,omitempty"`
	CategoryName       string     `json:"category_name,omitempty"`
	PublishTime        *time.Time `json:"publish_time,omitempty"`
	RelativeTime       string     `json:"relative_time,omitempty"`
	Score              float64    `json:"score,omitempty"`
	CreativeInstanceID string     `json:"creative_instance_id,omitempty"`
	OffersCategory     string     `json:"offers_category,omitempty"`
}

type displayAdResponse struct {
	UUID               string `json:"uuid"`
	CreativeInstanceID string `json:"creative_instance_id"`
	Title              string `json:"title"`
	Description        string `json:"description,omitempty"`
	ImageURL           string `json:"image_url,omitempty"`
	TargetURL          string `json:"target_url"`
	CTAText            string `json:"cta_text,omitempty"`
	Dimensions         string `json:"dimensions,omitempty"`
}

// newCardResponses renders cards. Display ad slots without their own ad are
// filled with current, which may be nil.
func newCardResponses(cards []*domain.FeedCard, current *domain.DisplayAd) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		resp := cardResponse{
			ID:     c.ID,
			Type:   c.Type,
			Viewed: c.ImpressionRecorded(),
		}
		for _, item := range c.Items {
			if ad, ok := item.(domain.DisplayAd); ok {
				resp.DisplayAd = newDisplayAdResponse(&ad)
				continue
			}
			resp.Items = append(resp.Items, newItemResponse(item))
		}
		if c.Type == domain.CardDisplayAd && resp.DisplayAd == nil {
			ad := c.DisplayAd
			if ad == nil || ad.UUID == "" {
				ad = current
			}
			resp.DisplayAd = newDisplayAdResponse(ad)
		}
		out = append(out, resp)
	}
	return out
}

func newItemResponse(item domain.FeedItem) itemResponse {
	meta := item.Meta()
	resp := itemResponse{
		Title:         meta.Title,
		Description:   meta.Description,
		URL:           meta.URL,
		ImageURL:      meta.ImageURL,
		PublisherID:   meta.PublisherID,
		PublisherName: meta.PublisherName,
		CategoryName:  meta.CategoryName,
		RelativeTime:  meta.RelativeTimeDescription,
		Score:         meta.Score,
	}
	if !meta.PublishTime.IsZero() {
		t := meta.PublishTime.UTC()
		resp.PublishTime = &t
	}

	switch v := item.(type) {
	case domain.Article:
		resp.Kind = "article"
	case domain.PromotedArticle:
		resp.Kind = "promoted_article"
		resp.CreativeInstanceID = v.CreativeInstanceID
	case domain.Deal:
		resp.Kind = "deal"
		resp.OffersCategory = v.OffersCategory
	}
	return resp
}

func newDisplayAdResponse(ad *domain.DisplayAd) *displayAdResponse {
	if ad == nil {
		return nil
	}
	return &displayAdResponse{
		UUID:               ad.UUID,
		CreativeInstanceID: ad.CreativeInstanceID,
		Title:              ad.Title,
		Description:        ad.Description,
		ImageURL:           ad.ImageURL,
		TargetURL:          ad.TargetURL,
		CTAText:            ad.CTAText,
		Dimensions:         ad.Dimensions,
	}
}

func (r displayAdResponse) toDomain() *domain.DisplayAd {
	return &domain.DisplayAd{
		UUID:               r.UUID,
		CreativeInstanceID: r.CreativeInstanceID,
		Title:              r.Title,
		Description:        r.Description,
		ImageURL:           r.ImageURL,
		TargetURL:          r.TargetURL,
		CTAText:            r.CTAText,
		Dimensions:         r.Dimensions,
	}
}
