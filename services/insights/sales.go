package insights

import (
	// Go Internal Packages
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"

	// External Packages
	"golang.org/x/sync/errgroup"
)

// DailySales is one day's settled fiat revenue, keyed by the record's
// own month and day so the current and previous month plot side by side.
type DailySales struct {
	Day       string  `json:"day"`
	ThisMonth float64 `json:"this_month"`
	LastMonth float64 `json:"last_month"`
}

// Sales aggregates settled revenue by calendar day over the trailing
// window: confirmed on-chain transactions plus paid invoices, summed by
// their converted fiat amount. Records with unparsable timestamps are
// skipped; unparsable amounts count as zero.
func (s *Service) Sales(ctx context.Context, token string, days int) ([]DailySales, error) {
	if token == "" {
		return nil, errors.EmptyParamErr("token")
	}
	if days <= 0 {
		days = 30
	}

	var (
		confirmed []models.ConfirmedTransaction
		invoices  []models.InvoiceRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		confirmed, err = s.backend.ListConfirmedTransactions(gctx, token)
		return err
	})
	g.Go(func() error {
		orgID, err := s.backend.ResolveOrganization(gctx, token)
		if err != nil || orgID == "" {
			return err
		}
		invoices, err = s.backend.ListInvoiceRecords(gctx, token, orgID, 0, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	curYear, curMonth := now.Year(), now.Month()
	prevYear, prevMonth := curYear, curMonth-1
	if curMonth == time.January {
		prevYear, prevMonth = curYear-1, time.December
	}

	type bucket struct {
		day       time.Time
		thisMonth float64
		lastMonth float64
	}
	buckets := make(map[string]*bucket)

	add := func(createdAt, converted string) {
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return
		}
		current := t.Year() == curYear && t.Month() == curMonth
		previous := t.Year() == prevYear && t.Month() == prevMonth
		if !current && !previous {
			return
		}
		amount, _ := strconv.ParseFloat(converted, 64)

		label := t.Format("Jan 02")
		b := buckets[label]
		if b == nil {
			b = &bucket{day: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
			buckets[label] = b
		}
		if current {
			b.thisMonth += amount
		} else {
			b.lastMonth += amount
		}
	}

	for _, tx := range confirmed {
		if strings.EqualFold(tx.StatusReadable, "confirmed") {
			add(tx.CreatedAt, tx.ConvertedAmount)
		}
	}
	for _, inv := range invoices {
		if strings.EqualFold(inv.Status, "paid") {
			add(inv.CreatedAt, inv.ConvertedAmount)
		}
	}

	cutoff := now.AddDate(0, 0, -days)
	labels := make([]string, 0, len(buckets))
	for label, b := range buckets {
		if b.day.Before(cutoff) {
			continue
		}
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return buckets[labels[i]].day.Before(buckets[labels[j]].day)
	})

	out := make([]DailySales, len(labels))
	for i, label := range labels {
		b := buckets[label]
		out[i] = DailySales{Day: label, ThisMonth: b.thisMonth, LastMonth: b.lastMonth}
	}
	return out, nil
}
