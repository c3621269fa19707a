package stats

import (
	"math"
	"sort"

	"github.com/miral0204/Youtube-Trend-Analysis/internal/model"
)

// Summary aggregates one derived table for presentation: bucket
// breakdowns with view averages, per-category engagement, a dense
// publish-hour histogram and the top records. It is computed from the
// records alone, never from live platform state.
type Summary struct {
	TotalVideos int `json:"total_videos"`

	Week            []LabelStat `json:"week"`
	TimeSlot        []LabelStat `json:"time_slot"`
	VideoLength     []LabelStat `json:"video_length"`
	DescriptionType []LabelStat `json:"description_type"`
	Caption         []LabelStat `json:"caption"`

	Categories   []CategoryStat     `json:"categories"`
	PublishHours [24]int            `json:"publish_hours"`
	Engagement   []MetricStat       `json:"engagement,omitempty"`
	Correlation  *CorrelationMatrix `json:"correlation,omitempty"`

	MostViewed *model.VideoRecord `json:"most_viewed,omitempty"`
	MostLiked  *model.VideoRecord `json:"most_liked,omitempty"`
}

// LabelStat is the record count and mean view count for one bucket.
type LabelStat struct {
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	AvgViews float64 `json:"avg_views"`
}

// CategoryStat carries engagement means for one category name.
type CategoryStat struct {
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	AvgViews    float64 `json:"avg_views"`
	AvgLikes    float64 `json:"avg_likes"`
	AvgComments float64 `json:"avg_comments"`
}

// MetricStat is the mean and range of one engagement metric across the
// whole table.
type MetricStat struct {
	Metric string  `json:"metric"`
	Mean   float64 `json:"mean"`
	Min    int64   `json:"min"`
	Max    int64   `json:"max"`
}

// CorrelationMatrix holds the pairwise Pearson correlations between the
// engagement metrics. Values is indexed [row][col] in Metrics order and
// is symmetric; an entry is nil when the correlation is undefined
// because one of the two metrics never varies.
type CorrelationMatrix struct {
	Metrics []string     `json:"metrics"`
	Values  [][]*float64 `json:"values"`
}

// engagementMetrics fixes the metric order shared by the engagement
// table and the correlation matrix.
var engagementMetrics = []struct {
	name  string
	value func(model.VideoRecord) int64
}{
	{"view_count", func(r model.VideoRecord) int64 { return r.ViewCount }},
	{"like_count", func(r model.VideoRecord) int64 { return r.LikeCount }},
	{"dislike_count", func(r model.VideoRecord) int64 { return r.DislikeCount }},
	{"favorite_count", func(r model.VideoRecord) int64 { return r.FavoriteCount }},
	{"comment_count", func(r model.VideoRecord) int64 { return r.CommentCount }},
}

// Build summarizes derived records. Bucket rows come out in a fixed
// label order with zero-count labels kept, and categories sorted by
// count descending then name, so equal inputs always produce equal
// summaries. Records without a resolved category name are left out of
// the category table only.
func Build(records []model.VideoRecord) *Summary {
	s := &Summary{TotalVideos: len(records)}

	s.Week = labelStats(records,
		[]string{string(model.WeekWeekday), string(model.WeekWeekend)},
		func(r model.VideoRecord) string { return string(r.Week) })
	s.TimeSlot = labelStats(records,
		[]string{string(model.TimeSlotMorning), string(model.TimeSlotNoon), string(model.TimeSlotNight)},
		func(r model.VideoRecord) string { return string(r.TimeSlot) })
	s.VideoLength = labelStats(records,
		[]string{string(model.VideoLengthShort), string(model.VideoLengthLong)},
		func(r model.VideoRecord) string { return string(r.VideoLength) })
	s.DescriptionType = labelStats(records,
		[]string{string(model.DescriptionShort), string(model.DescriptionMedium), string(model.DescriptionLong)},
		func(r model.VideoRecord) string { return string(r.DescriptionType) })
	s.Caption = labelStats(records,
		[]string{"true", "false"},
		func(r model.VideoRecord) string { return r.Caption })

	s.Categories = categoryStats(records)
	if len(records) > 0 {
		s.Engagement = engagementStats(records)
		s.Correlation = correlationMatrix(records)
	}

	for i := range records {
		rec := &records[i]
		if rec.PublishHour >= 0 && rec.PublishHour < 24 {
			s.PublishHours[rec.PublishHour]++
		}
		if s.MostViewed == nil || rec.ViewCount > s.MostViewed.ViewCount {
			s.MostViewed = rec
		}
		if s.MostLiked == nil || rec.LikeCount > s.MostLiked.LikeCount {
			s.MostLiked = rec
		}
	}
	if s.MostViewed != nil {
		viewed := *s.MostViewed
		s.MostViewed = &viewed
	}
	if s.MostLiked != nil {
		liked := *s.MostLiked
		s.MostLiked = &liked
	}

	return s
}

func labelStats(records []model.VideoRecord, order []string, label func(model.VideoRecord) string) []LabelStat {
	counts := make(map[string]int, len(order))
	views := make(map[string]int64, len(order))
	for _, rec := range records {
		l := label(rec)
		counts[l]++
		views[l] += rec.ViewCount
	}

	out := make([]LabelStat, 0, len(order))
	for _, l := range order {
		stat := LabelStat{Label: l, Count: counts[l]}
		if stat.Count > 0 {
			stat.AvgViews = float64(views[l]) / float64(stat.Count)
		}
		out = append(out, stat)
	}
	return out
}

func categoryStats(records []model.VideoRecord) []CategoryStat {
	type agg struct {
		count                  int
		views, likes, comments int64
	}
	byName := map[string]*agg{}
	for _, rec := range records {
		if rec.CategoryName == nil {
			continue
		}
		a := byName[*rec.CategoryName]
		if a == nil {
			a = &agg{}
			byName[*rec.CategoryName] = a
		}
		a.count++
		a.views += rec.ViewCount
		a.likes += rec.LikeCount
		a.comments += rec.CommentCount
	}

	out := make([]CategoryStat, 0, len(byName))
	for name, a := range byName {
		out = append(out, CategoryStat{
			Name:        name,
			Count:       a.count,
			AvgViews:    float64(a.views) / float64(a.count),
			AvgLikes:    float64(a.likes) / float64(a.count),
			AvgComments: float64(a.comments) / float64(a.count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func engagementStats(records []model.VideoRecord) []MetricStat {
	out := make([]MetricStat, 0, len(engagementMetrics))
	for _, m := range engagementMetrics {
		stat := MetricStat{Metric: m.name, Min: m.value(records[0]), Max: m.value(records[0])}
		var sum int64
		for _, rec := range records {
			v := m.value(rec)
			sum += v
			if v < stat.Min {
				stat.Min = v
			}
			if v > stat.Max {
				stat.Max = v
			}
		}
		stat.Mean = float64(sum) / float64(len(records))
		out = append(out, stat)
	}
	return out
}

// correlationMatrix computes pairwise Pearson correlations across the
// engagement metrics. Pairs involving a constant metric come out nil
// rather than NaN so the summary stays JSON-encodable.
func correlationMatrix(records []model.VideoRecord) *CorrelationMatrix {
	n := len(engagementMetrics)
	m := &CorrelationMatrix{
		Metrics: make([]string, n),
		Values:  make([][]*float64, n),
	}

	cols := make([][]float64, n)
	means := make([]float64, n)
	sumSq := make([]float64, n)
	for i, metric := range engagementMetrics {
		m.Metrics[i] = metric.name
		col := make([]float64, len(records))
		var sum float64
		for j, rec := range records {
			col[j] = float64(metric.value(rec))
			sum += col[j]
		}
		cols[i] = col
		means[i] = sum / float64(len(records))
		for _, v := range col {
			d := v - means[i]
			sumSq[i] += d * d
		}
	}

	for i := range m.Values {
		m.Values[i] = make([]*float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if sumSq[i] == 0 || sumSq[j] == 0 {
				continue
			}
			var r float64
			if i == j {
				r = 1
			} else {
				var cross float64
				for k := range records {
					cross += (cols[i][k] - means[i]) * (cols[j][k] - means[j])
				}
				r = cross / math.Sqrt(sumSq[i]*sumSq[j])
			}
			m.Values[i][j] = &r
			m.Values[j][i] = &r
		}
	}
	return m
}
