package feature

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/miral0204/Youtube-Trend-Analysis/internal/model"
	"github.com/miral0204/Youtube-Trend-Analysis/pkg/isodur"
)

// Bucket thresholds. The short-video bound is strictly less-than, so a
// seven-minute video is long. Description bounds are inclusive on the
// short side and at the long floor.
const (
	shortVideoMaxSeconds = 420
	shortDescriptionMax  = 300
	longDescriptionMin   = 1500
)

// Deriver computes the categorical fields of a VideoRecord from its raw
// fields and a category snapshot. Publish times are interpreted as UTC
// and converted to the deriver's location before any weekday or hour
// extraction. Derivation is pure: same record and map in, same fields
// out, with no shared state between records.
type Deriver struct {
	categories model.CategoryMap
	loc        *time.Location
}

func NewDeriver(categories model.CategoryMap, loc *time.Location) *Deriver {
	if loc == nil {
		loc = time.UTC
	}
	return &Deriver{categories: categories, loc: loc}
}

// Derive returns a copy of rec with every derived field populated and
// the duration transcoded to its "M:SS" display form. A duration that
// fails to parse aborts the record; nothing else can fail.
func (d *Deriver) Derive(rec model.VideoRecord) (model.VideoRecord, error) {
	local := rec.PublishedAt.UTC().In(d.loc)

	rec.PublishedWeekday = local.Weekday().String()
	rec.PublishHour = local.Hour()
	rec.Week = weekBucket(local.Weekday())
	rec.TimeSlot = slotBucket(local.Hour())

	seconds, err := isodur.Seconds(rec.Duration)
	if err != nil {
		return model.VideoRecord{}, fmt.Errorf("video %s: %w", rec.VideoID, err)
	}
	rec.Duration = isodur.Format(seconds)
	rec.DurationSeconds = seconds
	rec.VideoLength = lengthBucket(seconds)

	rec.DescriptionLen = utf8.RuneCountInString(rec.Description)
	rec.DescriptionType = descriptionBucket(rec.DescriptionLen)

	if name, ok := d.categories.Name(rec.CategoryID); ok {
		rec.CategoryName = &name
	}
	return rec, nil
}

// DeriveAll maps Derive over a batch, preserving order.
func (d *Deriver) DeriveAll(records []model.VideoRecord) ([]model.VideoRecord, error) {
	out := make([]model.VideoRecord, len(records))
	for i, rec := range records {
		derived, err := d.Derive(rec)
		if err != nil {
			return nil, err
		}
		out[i] = derived
	}
	return out, nil
}

func weekBucket(day time.Weekday) model.Week {
	if day == time.Saturday || day == time.Sunday {
		return model.WeekWeekend
	}
	return model.WeekWeekday
}

func slotBucket(hour int) model.TimeSlot {
	switch {
	case hour >= 5 && hour < 12:
		return model.TimeSlotMorning
	case hour >= 12 && hour < 17:
		return model.TimeSlotNoon
	default:
		return model.TimeSlotNight
	}
}

func lengthBucket(seconds int64) model.VideoLength {
	if seconds < shortVideoMaxSeconds {
		return model.VideoLengthShort
	}
	return model.VideoLengthLong
}

func descriptionBucket(length int) model.DescriptionType {
	switch {
	case length <= shortDescriptionMax:
		return model.DescriptionShort
	case length < longDescriptionMin:
		return model.DescriptionMedium
	default:
		return model.DescriptionLong
	}
}
