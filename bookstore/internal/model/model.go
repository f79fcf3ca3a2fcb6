package model

import (
	"strings"
	"time"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type List[T any] struct {
	Paging
	Items []T `json:"items"`
}

func NewList[T any](items []T, page, size int) List[T] {
	if items == nil {
		items = []T{}
	}
	return List[T]{
		Paging: Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(items),
		},
		Items: items,
	}
}

// Date accepts "2006-01-02" or RFC 3339 in json.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return err
		}
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

// Ptr returns nil for a nil or zero date.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysLate counts whole calendar days from due to actual, never negative.
func DaysLate(due, actual time.Time) int {
	days := int(StartOfDay(actual).Sub(StartOfDay(due)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePage clamps 1-based paging input and returns the row offset.
func NormalizePage(page, size int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size, (page - 1) * size
}
