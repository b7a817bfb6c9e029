package service

import (
	"context"
	"fmt"
	"strings"

	"bondcache/internal/models"
	"bondcache/internal/validate"
)

// Lineage returns source attribution for a bond as display text. With a
// field name it names the source of that one field; otherwise it
// summarizes the contributing sources.
func (s *Service) Lineage(ctx context.Context, isin, field string) (string, error) {
	isin = validate.NormalizeISIN(isin)

	lineage, err := s.api.GetLineage(ctx, isin)
	if err != nil {
		return "", fmt.Errorf("lineage for %s: %w", isin, err)
	}

	if field != "" {
		field = strings.ToLower(strings.TrimSpace(field))
		src, ok := lineage.FieldSources[field]
		if !ok {
			return "", fmt.Errorf("%w: no lineage for field %s", ErrUnknownField, field)
		}
		return fmt.Sprintf("%s (confidence: %.0f%%)", src.SourceName, src.Confidence*100), nil
	}

	return fmt.Sprintf("Sources: %s | Confidence: %.0f%%",
		strings.Join(lineage.ContributingSources, ", "),
		lineage.ReconciliationConfidence*100), nil
}

// History returns a bond's change records as a table with a header row.
func (s *Service) History(ctx context.Context, isin string, limit int) ([][]string, error) {
	isin = validate.NormalizeISIN(isin)
	if limit <= 0 {
		limit = 10
	}

	history, err := s.api.GetHistory(ctx, isin, limit)
	if err != nil {
		return nil, fmt.Errorf("history for %s: %w", isin, err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: no history for %s", ErrNoResults, isin)
	}

	rows := make([][]string, 0, len(history)+1)
	rows = append(rows, []string{"Date", "Type", "Field", "Old Value", "New Value"})
	for _, record := range history {
		rows = append(rows, []string{
			record.ChangedAt,
			record.ChangeType,
			record.FieldName,
			record.OldValue,
			record.NewValue,
		})
	}
	return rows, nil
}

// CorporateActions returns recent corporate actions as a table with a
// header row. The MATURED type is answered from the forward-looking
// maturities endpoint using daysAhead.
func (s *Service) CorporateActions(ctx context.Context, actionType string, daysAhead int) ([][]string, error) {
	if daysAhead <= 0 {
		daysAhead = 30
	}
	actionType = strings.ToUpper(strings.TrimSpace(actionType))

	var actions []models.CorporateAction
	var err error
	if actionType == "MATURED" {
		actions, err = s.api.UpcomingMaturities(ctx, daysAhead)
	} else {
		actions, err = s.api.CorporateActions(ctx, models.ActionsQuery{
			ActionType: actionType,
			Limit:      100,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("corporate actions: %w", err)
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: no corporate actions found", ErrNoResults)
	}

	rows := make([][]string, 0, len(actions)+1)
	rows = append(rows, []string{"ISIN", "Type", "Effective Date", "Notes"})
	for _, action := range actions {
		rows = append(rows, []string{
			action.ISIN,
			action.ActionType,
			action.EffectiveDate,
			action.Notes,
		})
	}
	return rows, nil
}
