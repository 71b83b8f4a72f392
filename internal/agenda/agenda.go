package agenda

import (
	"sort"
	"time"

	"nt/internal/todos/data"
)

// Item is a todo together with the 1-based index it holds in the flat list
// view, so `nt agenda` and `nt list` agree on numbering.
type Item struct {
	Index int
	Todo  data.Todo
}

// Bucket groups items sharing an agenda date.
type Bucket struct {
	Date  time.Time
	Items []Item
}

// Options filter the agenda.
type Options struct {
	Tags     []string // every tag must be present on the item
	OpenOnly bool
}

// Build groups todos by due date when they carry one, otherwise by owning
// date. Buckets come back newest-first; within a bucket the scan order (and
// so the per-date insertion order) is preserved.
func Build(todos []data.Todo, opts Options) []Bucket {
	bucketMap := make(map[string]*Bucket)

	for i, todo := range todos {
		if opts.OpenOnly && todo.Status != data.StatusOpen {
			continue
		}
		if !hasAllTags(todo, opts.Tags) {
			continue
		}

		date := todo.Date
		if todo.Due != "" {
			if parsed, err := time.Parse("2006-01-02", todo.Due); err == nil {
				date = parsed
			}
		}

		key := date.Format("2006-01-02")
		bucket, ok := bucketMap[key]
		if !ok {
			bucket = &Bucket{Date: date}
			bucketMap[key] = bucket
		}
		bucket.Items = append(bucket.Items, Item{Index: i + 1, Todo: todo})
	}

	buckets := make([]Bucket, 0, len(bucketMap))
	for _, bucket := range bucketMap {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.After(buckets[j].Date)
	})
	return buckets
}

func hasAllTags(todo data.Todo, tags []string) bool {
	for _, tag := range tags {
		if !todo.HasTag(tag) {
			return false
		}
	}
	return true
}
