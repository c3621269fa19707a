package stats

import (
	"testing"

	"github.com/miral0204/Youtube-Trend-Analysis/internal/model"
)

func named(name string) *string { return &name }

func record(id string, week model.Week, slot model.TimeSlot, views, likes int64, category *string, hour int) model.VideoRecord {
	return model.VideoRecord{
		VideoID:         id,
		Week:            week,
		TimeSlot:        slot,
		VideoLength:     model.VideoLengthShort,
		DescriptionType: model.DescriptionShort,
		Caption:         "false",
		ViewCount:       views,
		LikeCount:       likes,
		CommentCount:    10,
		CategoryName:    category,
		PublishHour:     hour,
	}
}

func TestBuild_BucketCountsAndAverages(t *testing.T) {
	records := []model.VideoRecord{
		record("a", model.WeekWeekday, model.TimeSlotMorning, 100, 10, named("Music"), 6),
		record("b", model.WeekWeekday, model.TimeSlotNight, 300, 30, named("Music"), 22),
		record("c", model.WeekWeekend, model.TimeSlotNight, 500, 50, named("Gaming"), 23),
	}

	s := Build(records)
	if s.TotalVideos != 3 {
		t.Errorf("TotalVideos = %d, want 3", s.TotalVideos)
	}

	if len(s.Week) != 2 {
		t.Fatalf("Week rows = %d, want 2", len(s.Week))
	}
	weekday, weekend := s.Week[0], s.Week[1]
	if weekday.Label != "Weekday" || weekday.Count != 2 || weekday.AvgViews != 200 {
		t.Errorf("weekday row = %+v", weekday)
	}
	if weekend.Label != "Weekend" || weekend.Count != 1 || weekend.AvgViews != 500 {
		t.Errorf("weekend row = %+v", weekend)
	}

	if len(s.TimeSlot) != 3 {
		t.Fatalf("TimeSlot rows = %d, want 3", len(s.TimeSlot))
	}
	if s.TimeSlot[0].Label != "Morning" || s.TimeSlot[0].Count != 1 {
		t.Errorf("morning row = %+v", s.TimeSlot[0])
	}
	if s.TimeSlot[1].Label != "Noon" || s.TimeSlot[1].Count != 0 || s.TimeSlot[1].AvgViews != 0 {
		t.Errorf("empty noon row should be kept with zeroes: %+v", s.TimeSlot[1])
	}
	if s.TimeSlot[2].Label != "Night" || s.TimeSlot[2].Count != 2 || s.TimeSlot[2].AvgViews != 400 {
		t.Errorf("night row = %+v", s.TimeSlot[2])
	}
}

func TestBuild_CategoriesSortedAndAveraged(t *testing.T) {
	records := []model.VideoRecord{
		record("a", model.WeekWeekday, model.TimeSlotNight, 100, 10, named("Music"), 1),
		record("b", model.WeekWeekday, model.TimeSlotNight, 200, 20, named("Music"), 2),
		record("c", model.WeekWeekday, model.TimeSlotNight, 900, 90, named("Gaming"), 3),
		record("d", model.WeekWeekday, model.TimeSlotNight, 10, 1, nil, 4),
	}

	s := Build(records)
	if len(s.Categories) != 2 {
		t.Fatalf("categories = %d, want 2 (nil name skipped)", len(s.Categories))
	}
	if s.Categories[0].Name != "Music" || s.Categories[0].Count != 2 {
		t.Errorf("top category = %+v, want Music x2", s.Categories[0])
	}
	if s.Categories[0].AvgViews != 150 || s.Categories[0].AvgLikes != 15 {
		t.Errorf("Music averages = %+v", s.Categories[0])
	}
	if s.Categories[1].Name != "Gaming" || s.Categories[1].Count != 1 {
		t.Errorf("second category = %+v", s.Categories[1])
	}
}

func TestBuild_CategoryTieBreaksByName(t *testing.T) {
	records := []model.VideoRecord{
		record("a", model.WeekWeekday, model.TimeSlotNight, 1, 0, named("Zebra"), 0),
		record("b", model.WeekWeekday, model.TimeSlotNight, 1, 0, named("Alpha"), 0),
	}

	s := Build(records)
	if s.Categories[0].Name != "Alpha" || s.Categories[1].Name != "Zebra" {
		t.Errorf("tied categories should sort by name: %+v", s.Categories)
	}
}

func TestBuild_PublishHourHistogram(t *testing.T) {
	records := []model.VideoRecord{
		record("a", model.WeekWeekday, model.TimeSlotNight, 1, 0, nil, 23),
		record("b", model.WeekWeekday, model.TimeSlotNight, 1, 0, nil, 23),
		record("c", model.WeekWeekday, model.TimeSlotMorning, 1, 0, nil, 5),
	}

	s := Build(records)
	if s.PublishHours[23] != 2 || s.PublishHours[5] != 1 {
		t.Errorf("histogram = %v", s.PublishHours)
	}
	if s.PublishHours[0] != 0 {
		t.Errorf("empty hours should stay zero, hour 0 = %d", s.PublishHours[0])
	}
}

func TestBuild_EngagementTable(t *testing.T) {
	records := []model.VideoRecord{
		record("a", model.WeekWeekday, model.TimeSlotNight, 100, 10, nil, 0),
		record("b", model.WeekWeekday, model.TimeSlotNight, 300, 50, nil, 0),
	}

	s := Build(records)
	if len(s.Engagement) != 5 {
		t.Fatalf("engagement rows = %d, want 5", len(s.Engagement))
	}

	views := s.Engagement[0]
	if views.Metric != "view_count" || views.Mean != 200 || views.Min != 100 || views.Max != 300 {
		t.Errorf("view row = %+v", views)
	}
	likes := s.Engagement[1]
	if likes.Metric != "like_count" || likes.Mean != 30 || likes.Min != 10 || likes.Max != 50 {
		t.Errorf("like row = %+v", likes)
	}
}

func corrAt(t *testing.T, m *CorrelationMatrix, i, j int) float64 {
	t.Helper()
	if m.Values[i][j] == nil {
		t.Fatalf("corr(%s, %s) undefined, want a value", m.Metrics[i], m.Metrics[j])
	}
	return *m.Values[i][j]
}

func TestBuild_CorrelationMatrix(t *testing.T) {
	// Likes track views exactly, dislikes run exactly opposite, and the
	// record helper keeps favorites and comments constant.
	a := record("a", model.WeekWeekday, model.TimeSlotNight, 100, 10, nil, 0)
	b := record("b", model.WeekWeekday, model.TimeSlotNight, 200, 20, nil, 0)
	c := record("c", model.WeekWeekday, model.TimeSlotNight, 300, 30, nil, 0)
	a.DislikeCount, b.DislikeCount, c.DislikeCount = 30, 20, 10

	m := Build([]model.VideoRecord{a, b, c}).Correlation
	if m == nil {
		t.Fatal("correlation matrix missing")
	}

	wantMetrics := []string{"view_count", "like_count", "dislike_count", "favorite_count", "comment_count"}
	if len(m.Metrics) != len(wantMetrics) || len(m.Values) != len(wantMetrics) {
		t.Fatalf("matrix is %dx%d, want %d metrics", len(m.Metrics), len(m.Values), len(wantMetrics))
	}
	for i, want := range wantMetrics {
		if m.Metrics[i] != want {
			t.Errorf("Metrics[%d] = %q, want %q", i, m.Metrics[i], want)
		}
	}

	if got := corrAt(t, m, 0, 0); got != 1 {
		t.Errorf("view diagonal = %v, want 1", got)
	}
	if got := corrAt(t, m, 0, 1); got != 1 {
		t.Errorf("corr(view, like) = %v, want 1", got)
	}
	if got := corrAt(t, m, 1, 0); got != 1 {
		t.Errorf("corr(like, view) = %v, matrix should be symmetric", got)
	}
	if got := corrAt(t, m, 0, 2); got != -1 {
		t.Errorf("corr(view, dislike) = %v, want -1", got)
	}
	if m.Values[0][3] != nil {
		t.Errorf("corr(view, favorite) = %v, want undefined for a constant metric", *m.Values[0][3])
	}
	if m.Values[3][3] != nil {
		t.Error("a constant metric's diagonal should be undefined")
	}
	if m.Values[4][1] != nil {
		t.Errorf("corr(comment, like) = %v, want undefined for a constant metric", *m.Values[4][1])
	}
}

func TestBuild_CorrelationSingleRecord(t *testing.T) {
	s := Build([]model.VideoRecord{
		record("a", model.WeekWeekday, model.TimeSlotNight, 100, 10, nil, 0),
	})
	if s.Correlation == nil {
		t.Fatal("correlation matrix missing")
	}
	for i, row := range s.Correlation.Values {
		for j, v := range row {
			if v != nil {
				t.Errorf("Values[%d][%d] = %v, want undefined with a single record", i, j, *v)
			}
		}
	}
}

func TestBuild_TopRecords(t *testing.T) {
	records := []model.VideoRecord{
		record("a", model.WeekWeekday, model.TimeSlotNight, 100, 90, nil, 0),
		record("b", model.WeekWeekday, model.TimeSlotNight, 500, 10, nil, 0),
		record("c", model.WeekWeekday, model.TimeSlotNight, 200, 95, nil, 0),
	}

	s := Build(records)
	if s.MostViewed == nil || s.MostViewed.VideoID != "b" {
		t.Errorf("MostViewed = %+v, want b", s.MostViewed)
	}
	if s.MostLiked == nil || s.MostLiked.VideoID != "c" {
		t.Errorf("MostLiked = %+v, want c", s.MostLiked)
	}
}

func TestBuild_Empty(t *testing.T) {
	s := Build(nil)
	if s.TotalVideos != 0 {
		t.Errorf("TotalVideos = %d", s.TotalVideos)
	}
	if s.MostViewed != nil || s.MostLiked != nil {
		t.Error("top records should be nil for an empty table")
	}
	if len(s.Week) != 2 || s.Week[0].Count != 0 {
		t.Errorf("empty summary should keep zeroed label rows: %+v", s.Week)
	}
	if len(s.Categories) != 0 {
		t.Errorf("categories = %+v, want none", s.Categories)
	}
	if s.Engagement != nil {
		t.Errorf("engagement = %+v, want none for an empty table", s.Engagement)
	}
	if s.Correlation != nil {
		t.Errorf("correlation = %+v, want none for an empty table", s.Correlation)
	}
}
