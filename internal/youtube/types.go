package youtube

import (
	"strconv"
	"time"

	"github.com/miral0204/Youtube-Trend-Analysis/internal/model"
)

// Wire types for the platform's list endpoints. Statistics arrive as
// decimal strings and are frequently absent (dislike counts in
// particular); all default substitution happens in record(), nowhere
// else.

type videoListResponse struct {
	Items         []videoItem `json:"items"`
	NextPageToken string      `json:"nextPageToken"`
}

type videoItem struct {
	ID             string          `json:"id"`
	Snippet        videoSnippet    `json:"snippet"`
	ContentDetails contentDetails  `json:"contentDetails"`
	Statistics     videoStatistics `json:"statistics"`
}

type videoSnippet struct {
	PublishedAt  time.Time `json:"publishedAt"`
	ChannelID    string    `json:"channelId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelTitle string    `json:"channelTitle"`
	CategoryID   string    `json:"categoryId"`
	Tags         []string  `json:"tags"`
}

type contentDetails struct {
	Duration   string `json:"duration"`
	Definition string `json:"definition"`
	Caption    string `json:"caption"`
}

type videoStatistics struct {
	ViewCount     string `json:"viewCount"`
	LikeCount     string `json:"likeCount"`
	DislikeCount  string `json:"dislikeCount"`
	FavoriteCount string `json:"favoriteCount"`
	CommentCount  string `json:"commentCount"`
}

type categoryListResponse struct {
	Items []categoryItem `json:"items"`
}

type categoryItem struct {
	ID      string          `json:"id"`
	Snippet categorySnippet `json:"snippet"`
}

type categorySnippet struct {
	Title string `json:"title"`
}

// record flattens one API item into a VideoRecord, applying the
// documented defaults: absent statistics become 0, absent tags an empty
// list, absent caption "false". A category id that fails to parse is
// kept as 0, which no platform category uses, so the name join later
// yields null.
func (it videoItem) record() model.VideoRecord {
	tags := it.Snippet.Tags
	if tags == nil {
		tags = []string{}
	}
	caption := it.ContentDetails.Caption
	if caption == "" {
		caption = "false"
	}
	categoryID, _ := strconv.Atoi(it.Snippet.CategoryID)

	return model.VideoRecord{
		VideoID:       it.ID,
		Title:         it.Snippet.Title,
		Description:   it.Snippet.Description,
		PublishedAt:   it.Snippet.PublishedAt,
		ChannelID:     it.Snippet.ChannelID,
		ChannelTitle:  it.Snippet.ChannelTitle,
		CategoryID:    categoryID,
		Tags:          tags,
		Duration:      it.ContentDetails.Duration,
		Definition:    it.ContentDetails.Definition,
		Caption:       caption,
		ViewCount:     parseCount(it.Statistics.ViewCount),
		LikeCount:     parseCount(it.Statistics.LikeCount),
		DislikeCount:  parseCount(it.Statistics.DislikeCount),
		FavoriteCount: parseCount(it.Statistics.FavoriteCount),
		CommentCount:  parseCount(it.Statistics.CommentCount),
	}
}

// parseCount converts a decimal-string statistic to an integer,
// defaulting to 0 when the field is absent or unparseable.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
