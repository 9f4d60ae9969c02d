package reconcile

import (
	"sort"

	"rollcall/internal/attendance/models"
)

// BucketKey identifies one person's day.
type BucketKey struct {
	Name string
	RFID string
	Date string
}

// Bucket holds the events of one BucketKey ordered by time of day.
type Bucket struct {
	Key    BucketKey
	Events []models.Event
}

// Group partitions events by (name, rfid, date). Buckets come back in
// first-seen order so repeated runs over the same batch produce the same rows.
// Events inside a bucket are sorted by their time text; ties keep input order.
func Group(events []models.Event) []Bucket {
	index := make(map[BucketKey]int)
	var buckets []Bucket
	for _, ev := range events {
		key := BucketKey{Name: ev.Name, RFID: ev.RFID, Date: ev.Date}
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Key: key})
		}
		buckets[i].Events = append(buckets[i].Events, ev)
	}
	for i := range buckets {
		evs := buckets[i].Events
		sort.SliceStable(evs, func(a, b int) bool { return evs[a].Time < evs[b].Time })
	}
	return buckets
}
