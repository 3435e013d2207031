package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/staylane/pricingservice/internal/domain"
)

var header = []string{"id", "hotel_id", "start_date", "end_date", "override_price", "multiplier"}

// RowError reports a CSV row that was skipped
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

// readRules parses seasonal rules from CSV. Rows that fail to parse or
// validate are skipped and reported; a malformed file is an error.
func readRules(r io.Reader) ([]domain.SeasonalRule, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(first[i]), col) {
			return nil, nil, fmt.Errorf("unexpected header column %d: got %q, want %q", i+1, first[i], col)
		}
	}

	var (
		rules   []domain.SeasonalRule
		skipped []RowError
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				skipped = append(skipped, RowError{Line: parseErr.Line, Err: err})
				continue
			}
			return nil, nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rule, err := parseRule(record)
		if err != nil {
			skipped = append(skipped, RowError{Line: line, Err: err})
			continue
		}
		rules = append(rules, rule)
	}
	return rules, skipped, nil
}

func parseRule(record []string) (domain.SeasonalRule, error) {
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	start, err := domain.ParseDate(record[2])
	if err != nil {
		return domain.SeasonalRule{}, fmt.Errorf("invalid start_date %q", record[2])
	}
	end, err := domain.ParseDate(record[3])
	if err != nil {
		return domain.SeasonalRule{}, fmt.Errorf("invalid end_date %q", record[3])
	}
	override, err := optionalDecimal(record[4])
	if err != nil {
		return domain.SeasonalRule{}, fmt.Errorf("invalid override_price %q", record[4])
	}
	multiplier, err := optionalDecimal(record[5])
	if err != nil {
		return domain.SeasonalRule{}, fmt.Errorf("invalid multiplier %q", record[5])
	}
	adj, err := domain.NewAdjustment(override, multiplier)
	if err != nil {
		return domain.SeasonalRule{}, err
	}

	rule := domain.SeasonalRule{
		ID:         record[0],
		HotelID:    record[1],
		StartDate:  start,
		EndDate:    end,
		Adjustment: adj,
	}
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	if err := rule.Validate(); err != nil {
		return domain.SeasonalRule{}, err
	}
	return rule, nil
}

func optionalDecimal(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
