package service

import (
	"context"
	"fmt"
	"math"

	"bondcache/internal/models"
	"bondcache/internal/validate"
)

// YearsToMaturity returns the decimal years from asOf (today when empty)
// to the bond's maturity, rounded to two places. Matured bonds return 0.
func (s *Service) YearsToMaturity(ctx context.Context, isin, asOf string) (float64, error) {
	bond, err := s.fetchValidated(ctx, isin)
	if err != nil {
		return 0, err
	}

	maturity, ok := validate.ParseDate(bond.StringField("maturity_date"))
	if !ok {
		return 0, fmt.Errorf("%w: no maturity date available", ErrInvalidInput)
	}

	calcDate := s.now()
	if asOf != "" {
		calcDate, ok = validate.ParseDate(asOf)
		if !ok {
			return 0, fmt.Errorf("%w: invalid date format %q", ErrInvalidInput, asOf)
		}
	}

	if !maturity.After(calcDate) {
		return 0, nil
	}

	days := maturity.Sub(calcDate).Hours() / 24
	return math.Round(days/365.25*100) / 100, nil
}

// MaturityRange returns [ISIN, maturity date] rows for bonds maturing
// within the inclusive date range, optionally filtered by country.
func (s *Service) MaturityRange(ctx context.Context, fromDate, toDate, country string) ([][]string, error) {
	if _, ok := validate.ParseDate(fromDate); !ok {
		return nil, fmt.Errorf("%w: invalid from date %q", ErrInvalidInput, fromDate)
	}
	if _, ok := validate.ParseDate(toDate); !ok {
		return nil, fmt.Errorf("%w: invalid to date %q", ErrInvalidInput, toDate)
	}

	query := models.ListQuery{
		MaturityFrom: fromDate,
		MaturityTo:   toDate,
		Limit:        defaultListLimit,
	}
	if country != "" {
		query.Country = validate.NormalizeCountry(country)
	}

	bonds, err := s.listBondsCached(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(bonds) == 0 {
		return nil, fmt.Errorf("%w: no bonds maturing in range", ErrNoResults)
	}

	rows := make([][]string, 0, len(bonds))
	for _, b := range bonds {
		rows = append(rows, []string{b.ISIN(), b.StringField("maturity_date")})
	}
	return rows, nil
}

// CouponFrequencyText returns the bond's payment frequency as display text
// ("Annual", "Semi-annual", ...). Zero-coupon bonds report "Zero coupon".
func (s *Service) CouponFrequencyText(ctx context.Context, isin string) (string, error) {
	bond, err := s.fetchValidated(ctx, isin)
	if err != nil {
		return "", err
	}

	if rate, ok := bond.NumberField("coupon_rate"); ok && rate == 0 {
		return "Zero coupon", nil
	}

	freq, _ := bond.NumberField("coupon_frequency")
	if name, ok := models.CouponFrequencyNames[int(freq)]; ok {
		return name, nil
	}
	return fmt.Sprintf("%dx per year", int(freq)), nil
}

// IsIndexLinked reports whether the bond is inflation-linked.
func (s *Service) IsIndexLinked(ctx context.Context, isin string) (bool, error) {
	bond, err := s.fetchValidated(ctx, isin)
	if err != nil {
		return false, err
	}
	return bond.StringField("security_type") == models.SecurityTypeIndexLinked, nil
}
