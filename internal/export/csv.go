package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/miral0204/Youtube-Trend-Analysis/internal/model"
)

// header fixes the export column order. Read rejects files whose header
// row differs.
var header = []string{
	"video_id", "title", "description", "published_at",
	"channel_id", "channel_title", "category_id", "tags",
	"duration", "definition", "caption",
	"view_count", "like_count", "dislike_count", "favorite_count", "comment_count",
}

// Tags are flattened to a single delimited cell. This is an accepted
// lossy boundary: a tag containing the separator will not survive a
// reload intact.
const tagSeparator = "|"

// Write serializes records to a UTF-8 CSV file at path, header row
// first, one record per row, overwriting any previous export.
func Write(path string, records []model.VideoRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write export header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(row(rec)); err != nil {
			f.Close()
			return fmt.Errorf("write record %s: %w", rec.VideoID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

// Read loads an export file back into typed records: counts as
// integers, publish times as timestamps, the tag cell split back into a
// list with the empty cell meaning no tags.
func Read(path string) ([]model.VideoRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read export header: %w", err)
	}
	if !slices.Equal(head, header) {
		return nil, fmt.Errorf("unexpected export header %v", head)
	}

	records := []model.VideoRecord{}
	for rowNum := 2; ; rowNum++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read export row %d: %w", rowNum, err)
		}
		rec, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("export row %d: %w", rowNum, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func row(rec model.VideoRecord) []string {
	return []string{
		rec.VideoID,
		rec.Title,
		rec.Description,
		rec.PublishedAt.UTC().Format(time.RFC3339Nano),
		rec.ChannelID,
		rec.ChannelTitle,
		strconv.Itoa(rec.CategoryID),
		strings.Join(rec.Tags, tagSeparator),
		rec.Duration,
		rec.Definition,
		rec.Caption,
		strconv.FormatInt(rec.ViewCount, 10),
		strconv.FormatInt(rec.LikeCount, 10),
		strconv.FormatInt(rec.DislikeCount, 10),
		strconv.FormatInt(rec.FavoriteCount, 10),
		strconv.FormatInt(rec.CommentCount, 10),
	}
}

func parseRow(fields []string) (model.VideoRecord, error) {
	publishedAt, err := time.Parse(time.RFC3339, fields[3])
	if err != nil {
		return model.VideoRecord{}, fmt.Errorf("published_at: %w", err)
	}
	categoryID, err := strconv.Atoi(fields[6])
	if err != nil {
		return model.VideoRecord{}, fmt.Errorf("category_id: %w", err)
	}

	var counts [5]int64
	for i, name := range []string{"view_count", "like_count", "dislike_count", "favorite_count", "comment_count"} {
		n, err := strconv.ParseInt(fields[11+i], 10, 64)
		if err != nil {
			return model.VideoRecord{}, fmt.Errorf("%s: %w", name, err)
		}
		counts[i] = n
	}

	tags := []string{}
	if fields[7] != "" {
		tags = strings.Split(fields[7], tagSeparator)
	}

	return model.VideoRecord{
		VideoID:       fields[0],
		Title:         fields[1],
		Description:   fields[2],
		PublishedAt:   publishedAt,
		ChannelID:     fields[4],
		ChannelTitle:  fields[5],
		CategoryID:    categoryID,
		Tags:          tags,
		Duration:      fields[8],
		Definition:    fields[9],
		Caption:       fields[10],
		ViewCount:     counts[0],
		LikeCount:     counts[1],
		DislikeCount:  counts[2],
		FavoriteCount: counts[3],
		CommentCount:  counts[4],
	}, nil
}
