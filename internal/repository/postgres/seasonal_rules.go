package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/repository"
)

const ruleColumns = `id, hotel_id, start_date, end_date, override_price, price_multiplier, created_at, updated_at`

const listRulesByHotelSQL = `
SELECT ` + ruleColumns + `
FROM seasonal_rules
WHERE hotel_id = $1
ORDER BY start_date, id`

// A rule overlaps [check_in, check_out) when it starts before check-out and
// ends on or after check-in.
const listRulesForStaySQL = `
SELECT ` + ruleColumns + `
FROM seasonal_rules
WHERE hotel_id = $1 AND start_date < $3 AND end_date >= $2
ORDER BY start_date, id`

const upsertRuleSQL = `
INSERT INTO seasonal_rules (id, hotel_id, start_date, end_date, override_price, price_multiplier, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()), now())
ON CONFLICT (id) DO UPDATE SET
    hotel_id = EXCLUDED.hotel_id,
    start_date = EXCLUDED.start_date,
    end_date = EXCLUDED.end_date,
    override_price = EXCLUDED.override_price,
    price_multiplier = EXCLUDED.price_multiplier,
    updated_at = now()
RETURNING ` + ruleColumns

const deleteRuleSQL = `DELETE FROM seasonal_rules WHERE id = $1`

// seasonalRuleRepository implements repository.SeasonalRuleRepository
type seasonalRuleRepository struct {
	store *Store
}

// ListByHotel returns all rules for a hotel
func (r *seasonalRuleRepository) ListByHotel(ctx context.Context, hotelID string) ([]domain.SeasonalRule, error) {
	defer timed("seasonal_rules.list")()

	rows, err := r.store.db.Query(ctx, listRulesByHotelSQL, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasonal rules: %w", err)
	}
	return collectRules(rows)
}

// ListForStay returns the rules overlapping the stay's nights
func (r *seasonalRuleRepository) ListForStay(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]domain.SeasonalRule, error) {
	defer timed("seasonal_rules.list_for_stay")()

	rows, err := r.store.db.Query(ctx, listRulesForStaySQL, hotelID, domain.DateOf(checkIn), domain.DateOf(checkOut))
	if err != nil {
		return nil, fmt.Errorf("failed to list seasonal rules for stay: %w", err)
	}
	return collectRules(rows)
}

// Upsert creates or replaces a seasonal rule
func (r *seasonalRuleRepository) Upsert(ctx context.Context, rule domain.SeasonalRule) (domain.SeasonalRule, error) {
	defer timed("seasonal_rules.upsert")()
	return upsertRule(ctx, r.store.db, rule)
}

// BulkUpsert writes all rules in one transaction
func (r *seasonalRuleRepository) BulkUpsert(ctx context.Context, rules []domain.SeasonalRule) (int, error) {
	defer timed("seasonal_rules.bulk_upsert")()

	for i := range rules {
		if err := rules[i].Validate(); err != nil {
			return 0, err
		}
	}

	var written int
	err := r.store.WithTransaction(ctx, func(tx repository.Store) error {
		txStore := tx.(*Store)
		for _, rule := range rules {
			if _, err := upsertRule(ctx, txStore.db, rule); err != nil {
				return err
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

// Delete removes a seasonal rule
func (r *seasonalRuleRepository) Delete(ctx context.Context, id string) error {
	defer timed("seasonal_rules.delete")()

	tag, err := r.store.db.Exec(ctx, deleteRuleSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete seasonal rule %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("seasonal rule", id)
	}
	return nil
}

func upsertRule(ctx context.Context, db DBTX, rule domain.SeasonalRule) (domain.SeasonalRule, error) {
	if err := rule.Validate(); err != nil {
		return domain.SeasonalRule{}, err
	}
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}

	override, multiplier := rule.Adjustment.Columns()
	var createdAt *time.Time
	if !rule.CreatedAt.IsZero() {
		createdAt = &rule.CreatedAt
	}

	row := db.QueryRow(ctx, upsertRuleSQL,
		rule.ID, rule.HotelID, rule.StartDate, rule.EndDate, override, multiplier, createdAt)
	saved, err := scanRule(row)
	if isForeignKeyViolation(err) {
		return domain.SeasonalRule{}, domain.NewNotFoundError("hotel", rule.HotelID)
	}
	if err != nil {
		return domain.SeasonalRule{}, fmt.Errorf("failed to upsert seasonal rule %s: %w", rule.ID, err)
	}
	return saved, nil
}

func collectRules(rows pgx.Rows) ([]domain.SeasonalRule, error) {
	defer rows.Close()

	rules := make([]domain.SeasonalRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seasonal rules: %w", err)
	}
	return rules, nil
}

func scanRule(row pgx.Row) (domain.SeasonalRule, error) {
	var (
		rule                 domain.SeasonalRule
		override, multiplier decimal.NullDecimal
	)
	if err := row.Scan(
		&rule.ID,
		&rule.HotelID,
		&rule.StartDate,
		&rule.EndDate,
		&override,
		&multiplier,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	); err != nil {
		return domain.SeasonalRule{}, err
	}

	adj, err := domain.NewAdjustment(override, multiplier)
	if err != nil {
		return domain.SeasonalRule{}, fmt.Errorf("seasonal rule %s: %w", rule.ID, err)
	}
	rule.Adjustment = adj
	rule.StartDate = domain.DateOf(rule.StartDate)
	rule.EndDate = domain.DateOf(rule.EndDate)
	return rule, nil
}
