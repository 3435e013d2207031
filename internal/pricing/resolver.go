package pricing

import (
	"sort"
	"time"

	"github.com/staylane/pricingservice/internal/domain"
)

// ResolvedNight pairs a calendar night with the rule governing its price.
// Rule is nil when the base rate applies.
type ResolvedNight struct {
	Date      time.Time
	Rule      *domain.SeasonalRule
	Ambiguous bool
}

// RuleIndex answers "which seasonal rule prices this night" for one hotel.
// Rules are kept sorted by start date with a running maximum of end dates so a
// lookup can stop scanning as soon as no earlier rule can reach the night.
type RuleIndex struct {
	hotelID string
	rules   []domain.SeasonalRule
	maxEnd  []time.Time
}

// NewRuleIndex builds an index over the rules belonging to hotelID.
// Rules for other hotels are ignored. Input order does not matter.
func NewRuleIndex(hotelID string, rules []domain.SeasonalRule) *RuleIndex {
	own := make([]domain.SeasonalRule, 0, len(rules))
	for _, r := range rules {
		if r.HotelID != hotelID {
			continue
		}
		r.StartDate = domain.DateOf(r.StartDate)
		r.EndDate = domain.DateOf(r.EndDate)
		own = append(own, r)
	}

	sort.SliceStable(own, func(i, j int) bool {
		if !own[i].StartDate.Equal(own[j].StartDate) {
			return own[i].StartDate.Before(own[j].StartDate)
		}
		return own[i].ID < own[j].ID
	})

	maxEnd := make([]time.Time, len(own))
	for i, r := range own {
		maxEnd[i] = r.EndDate
		if i > 0 && maxEnd[i-1].After(r.EndDate) {
			maxEnd[i] = maxEnd[i-1]
		}
	}

	return &RuleIndex{hotelID: hotelID, rules: own, maxEnd: maxEnd}
}

// Len returns the number of indexed rules.
func (x *RuleIndex) Len() int { return len(x.rules) }

// Lookup returns the rule pricing the night, or nil. ambiguous is true when
// another covering rule has the same span as the winner.
func (x *RuleIndex) Lookup(night time.Time) (rule *domain.SeasonalRule, ambiguous bool) {
	night = domain.DateOf(night)

	// first rule starting after the night; everything before it is a candidate
	upper := sort.Search(len(x.rules), func(i int) bool {
		return x.rules[i].StartDate.After(night)
	})

	var best *domain.SeasonalRule
	for i := upper - 1; i >= 0; i-- {
		if x.maxEnd[i].Before(night) {
			break
		}
		candidate := &x.rules[i]
		if candidate.EndDate.Before(night) {
			continue
		}
		if best == nil {
			best = candidate
			continue
		}
		if candidate.SpanDays() == best.SpanDays() {
			ambiguous = true
		}
		if preferred(candidate, best) {
			if candidate.SpanDays() != best.SpanDays() {
				ambiguous = false
			}
			best = candidate
		}
	}

	if best == nil {
		return nil, false
	}
	out := *best
	return &out, ambiguous
}

// preferred reports whether a should win over b: tightest span first, then
// the most recently created rule, then the higher id so the order is total.
func preferred(a, b *domain.SeasonalRule) bool {
	if sa, sb := a.SpanDays(), b.SpanDays(); sa != sb {
		return sa < sb
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// Resolve maps every night in [checkIn, checkOut) to its governing rule, in
// calendar order. The check-out night is not billed.
func (x *RuleIndex) Resolve(checkIn, checkOut time.Time) []ResolvedNight {
	checkIn = domain.DateOf(checkIn)
	checkOut = domain.DateOf(checkOut)
	if !checkOut.After(checkIn) {
		return nil
	}

	nights := make([]ResolvedNight, 0, domain.DaysBetween(checkIn, checkOut))
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		rule, ambiguous := x.Lookup(d)
		nights = append(nights, ResolvedNight{Date: d, Rule: rule, Ambiguous: ambiguous})
	}
	return nights
}

// ResolveNights validates the range and resolves each night against the hotel's rules.
func ResolveNights(hotelID string, checkIn, checkOut time.Time, rules []domain.SeasonalRule) ([]ResolvedNight, error) {
	if !domain.DateOf(checkOut).After(domain.DateOf(checkIn)) {
		return nil, domain.NewInvalidDateRangeError(checkIn.Format(domain.DateLayout) + ".." + checkOut.Format(domain.DateLayout))
	}
	return NewRuleIndex(hotelID, rules).Resolve(checkIn, checkOut), nil
}
