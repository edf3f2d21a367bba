// Package history provides the implementation for tracking and persisting picked colors.
package history

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/internal/store"
	"github.com/swatch-cli/swatch/where"
)

// Get returns the complete collection of picked colors in pick order, oldest first.
func Get() ([]ColorRecord, error) {
	var records []ColorRecord
	if _, err := store.Load(where.History(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Save appends a color to the history registry.
// Idempotency: re-picking an already recorded color never produces a second record.
func Save(hex string) error {
	parsed, err := color.Parse(hex)
	if err != nil {
		return err
	}

	records, err := Get()
	if err != nil {
		return err
	}

	canonical := parsed.Hex()
	for _, record := range records {
		if strings.EqualFold(record.Hex, canonical) {
			return nil
		}
	}

	records = append(records, ColorRecord{Hex: canonical, Timestamp: time.Now().Unix()})
	return store.Save(where.History(), records)
}

// Remove permanently deletes a specific color from the history registry.
func Remove(hex string) error {
	parsed, err := color.Parse(hex)
	if err != nil {
		return err
	}

	records, err := Get()
	if err != nil {
		return err
	}

	canonical := parsed.Hex()
	filtered := lo.Reject(records, func(r ColorRecord, _ int) bool {
		return strings.EqualFold(r.Hex, canonical)
	})
	return store.Save(where.History(), filtered)
}

// Clear empties the history registry.
func Clear() error {
	return store.Save(where.History(), []ColorRecord{})
}
