package model

import "time"

// VideoRecord is one trending video snapshot as flattened from the
// platform API. Raw fields come straight from the fetch; the derived
// fields are zero-valued until the record passes through the feature
// deriver.
type VideoRecord struct {
	VideoID       string    `json:"video_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PublishedAt   time.Time `json:"published_at"`
	ChannelID     string    `json:"channel_id"`
	ChannelTitle  string    `json:"channel_title"`
	CategoryID    int       `json:"category_id"`
	Tags          []string  `json:"tags"`
	Duration      string    `json:"duration"`
	Definition    string    `json:"definition"`
	Caption       string    `json:"caption"`
	ViewCount     int64     `json:"view_count"`
	LikeCount     int64     `json:"like_count"`
	DislikeCount  int64     `json:"dislike_count"`
	FavoriteCount int64     `json:"favorite_count"`
	CommentCount  int64     `json:"comment_count"`

	// Derived fields, populated in place after export/reload.
	CategoryName     *string         `json:"category_name,omitempty"`
	PublishedWeekday string          `json:"published_weekday,omitempty"`
	PublishHour      int             `json:"publish_hour"`
	Week             Week            `json:"week,omitempty"`
	TimeSlot         TimeSlot        `json:"time_slot,omitempty"`
	DurationSeconds  int64           `json:"duration_seconds"`
	VideoLength      VideoLength     `json:"video_length,omitempty"`
	DescriptionLen   int             `json:"description_len"`
	DescriptionType  DescriptionType `json:"description_type,omitempty"`
}

// Week buckets a local publish time into weekday or weekend.
type Week string

const (
	WeekWeekday Week = "Weekday"
	WeekWeekend Week = "Weekend"
)

// TimeSlot buckets a local publish hour into a coarse time of day.
type TimeSlot string

const (
	TimeSlotMorning TimeSlot = "Morning"
	TimeSlotNoon    TimeSlot = "Noon"
	TimeSlotNight   TimeSlot = "Night"
)

// VideoLength buckets a video duration around the seven-minute mark.
type VideoLength string

const (
	VideoLengthShort VideoLength = "short"
	VideoLengthLong  VideoLength = "long"
)

// DescriptionType buckets a description by character count.
type DescriptionType string

const (
	DescriptionShort  DescriptionType = "short"
	DescriptionMedium DescriptionType = "medium"
	DescriptionLong   DescriptionType = "long"
)
