package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"bondcache/internal/cache"
	"bondcache/internal/client"
	"bondcache/internal/interfaces/mock"
	"bondcache/internal/models"
)

const gilt = "GB00BYZW3G56"

func giltBond() models.Bond {
	return models.Bond{
		"isin":             gilt,
		"name":             "1.5% Treasury Gilt 2047",
		"country":          "GB",
		"issuer":           "United Kingdom",
		"security_type":    "NOMINAL",
		"currency":         "GBP",
		"coupon_rate":      0.015,
		"coupon_frequency": 2,
		"maturity_date":    "2047-07-22",
	}
}

func newTestService(t *testing.T) (*Service, *mock.MockBondAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockBondAPI(ctrl)
	svc := New(api, cache.New(10, time.Minute), cache.NewNoOpQueryCache(), zap.NewNop())
	return svc, api
}

func TestService_FetchBond_CachesResult(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetBond(gomock.Any(), gilt).Return(giltBond(), nil).Times(1)

	first, err := svc.FetchBond(context.Background(), gilt)
	require.NoError(t, err)

	second, err := svc.FetchBond(context.Background(), gilt)
	require.NoError(t, err)

	assert.Equal(t, first.ISIN(), second.ISIN())

	stats := svc.CacheStats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestService_FetchBond_NoNegativeCaching(t *testing.T) {
	svc, api := newTestService(t)

	upstreamDown := errors.New("request timed out")
	api.EXPECT().GetBond(gomock.Any(), gilt).Return(nil, upstreamDown)
	api.EXPECT().GetBond(gomock.Any(), gilt).Return(nil, upstreamDown)
	api.EXPECT().GetBond(gomock.Any(), gilt).Return(giltBond(), nil)

	_, err := svc.FetchBond(context.Background(), gilt)
	assert.Error(t, err)
	assert.Equal(t, 0, svc.CacheStats().Size, "failed lookups must not populate the cache")

	_, err = svc.FetchBond(context.Background(), gilt)
	assert.Error(t, err)
	assert.Equal(t, 0, svc.CacheStats().Size)

	bond, err := svc.FetchBond(context.Background(), gilt)
	require.NoError(t, err)
	assert.Equal(t, gilt, bond.ISIN())
	assert.Equal(t, 1, svc.CacheStats().Size, "only the successful result is stored")

	// Served from cache now, no further upstream calls expected
	_, err = svc.FetchBond(context.Background(), gilt)
	require.NoError(t, err)
}

func TestService_FetchBond_NotFound(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetBond(gomock.Any(), "XX0000000009").Return(nil, client.ErrNotFound)

	_, err := svc.FetchBond(context.Background(), "XX0000000009")

	assert.ErrorIs(t, err, ErrBondNotFound)
	assert.Equal(t, 0, svc.CacheStats().Size)
}

func TestService_StaticField(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  interface{}
	}{
		{"plain field", "issuer", "United Kingdom"},
		{"coupon scaled to percent", "coupon_rate", 1.5},
		{"alias coupon", "coupon", 1.5},
		{"alias maturity", "maturity", "2047-07-22"},
		{"alias type", "type", "NOMINAL"},
		{"case and whitespace folded", " Coupon ", 1.5},
		{"known but absent field", "cusip", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api := newTestService(t)
			api.EXPECT().GetBond(gomock.Any(), gilt).Return(giltBond(), nil)

			got, err := svc.StaticField(context.Background(), gilt, tt.field)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_StaticField_Errors(t *testing.T) {
	t.Run("empty arguments", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.StaticField(context.Background(), "", "coupon")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid isin skips upstream", func(t *testing.T) {
		svc, _ := newTestService(t) // no GetBond expectation: must not be called
		_, err := svc.StaticField(context.Background(), "not-an-isin", "coupon")
		assert.ErrorIs(t, err, ErrInvalidISIN)
	})

	t.Run("unknown field", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().GetBond(gomock.Any(), gilt).Return(giltBond(), nil)
		_, err := svc.StaticField(context.Background(), gilt, "yield_to_worst")
		assert.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestService_StaticField_NormalizesISIN(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetBond(gomock.Any(), gilt).Return(giltBond(), nil)

	got, err := svc.StaticField(context.Background(), "  gb00byzw3g56 ", "currency")

	require.NoError(t, err)
	assert.Equal(t, "GBP", got)
}

func TestService_Info(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetBond(gomock.Any(), gilt).Return(giltBond(), nil)

	rows, err := svc.Info(context.Background(), gilt, true)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ISIN", rows[0][0])
	assert.Equal(t, gilt, rows[1][0])

	// Coupon column is scaled to percent
	assert.Equal(t, "Coupon %", rows[0][6])
	assert.Equal(t, 1.5, rows[1][6])

	// Absent fields render as empty strings
	assert.Equal(t, "", rows[1][len(rows[1])-1])
}

func TestService_Info_NoHeaders(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetBond(gomock.Any(), gilt).Return(giltBond(), nil)

	rows, err := svc.Info(context.Background(), gilt, false)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, gilt, rows[0][0])
}

func TestService_List(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().ListBonds(gomock.Any(), models.ListQuery{
		Country:      "GB",
		SecurityType: "INDEX_LINKED",
		Limit:        500,
	}).Return([]models.Bond{
		{"isin": "GB00B3LZBF68"},
		{"isin": "GB00BYY5F581"},
	}, nil)

	isins, err := svc.List(context.Background(), "gb", "index_linked", 0)

	require.NoError(t, err)
	assert.Equal(t, []string{"GB00B3LZBF68", "GB00BYY5F581"}, isins)
}

func TestService_List_Errors(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.List(context.Background(), "", "", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), "XX", "", 0)
	assert.ErrorIs(t, err, ErrUnknownCountry)

	_, err = svc.List(context.Background(), "GB", "CONVERTIBLE", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_EmptyResult(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().ListBonds(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.List(context.Background(), "NL", "", 0)

	assert.ErrorIs(t, err, ErrNoResults)
}

func TestService_List_LimitClamped(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().ListBonds(gomock.Any(), models.ListQuery{Country: "US", Limit: 1000}).
		Return([]models.Bond{{"isin": "US912810TM58"}}, nil)

	_, err := svc.List(context.Background(), "US", "", 5000)

	require.NoError(t, err)
}

func TestService_List_ServedFromQueryCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockBondAPI(ctrl)
	queryCache := mock.NewMockQueryCache(ctrl)
	svc := New(api, cache.New(10, time.Minute), queryCache, zap.NewNop())

	cached, err := json.Marshal([]models.Bond{{"isin": "DE0001102580"}})
	require.NoError(t, err)
	queryCache.EXPECT().Get(gomock.Any()).Return(cached, true)
	// api.ListBonds must not be called

	isins, err := svc.List(context.Background(), "DE", "", 0)

	require.NoError(t, err)
	assert.Equal(t, []string{"DE0001102580"}, isins)
}

func TestService_List_PopulatesQueryCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockBondAPI(ctrl)
	queryCache := mock.NewMockQueryCache(ctrl)
	svc := New(api, cache.New(10, time.Minute), queryCache, zap.NewNop())

	queryCache.EXPECT().Get(gomock.Any()).Return(nil, false)
	api.EXPECT().ListBonds(gomock.Any(), gomock.Any()).Return([]models.Bond{{"isin": "FR0013154028"}}, nil)
	queryCache.EXPECT().Set(gomock.Any(), gomock.Any())

	_, err := svc.List(context.Background(), "FR", "", 0)

	require.NoError(t, err)
}

func TestService_Search(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().ListBonds(gomock.Any(), models.ListQuery{
		Country:      "US",
		SecurityType: "INDEX_LINKED",
		Limit:        500,
	}).Return([]models.Bond{{"isin": "US912810TM58"}}, nil)

	isins, err := svc.Search(context.Background(), []SearchFilter{
		{Field: "country", Value: "us"},
		{Field: "security_type", Value: "index_linked"},
		{Field: "", Value: "ignored"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"US912810TM58"}, isins)
}

func TestService_Search_Errors(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Search(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Search(context.Background(), []SearchFilter{{Field: "rating", Value: "AAA"}})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestService_Count(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetDatabaseStats(gomock.Any()).Return(&models.DatabaseStats{
		TotalBonds: 1200,
		ByCountry:  map[string]int{"US": 400, "GB": 300},
	}, nil).Times(3)

	total, err := svc.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1200, total)

	us, err := svc.Count(context.Background(), "us")
	require.NoError(t, err)
	assert.Equal(t, 400, us)

	unknown, err := svc.Count(context.Background(), "ZZ")
	require.NoError(t, err)
	assert.Equal(t, 0, unknown)
}

func TestService_Refresh_ClearsCache(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetBond(gomock.Any(), gilt).Return(giltBond(), nil)
	api.EXPECT().TriggerRefresh(gomock.Any(), models.RefreshRequest{Country: "GB"}).
		Return(&models.RefreshResponse{Message: "Refresh queued"}, nil)

	_, err := svc.FetchBond(context.Background(), gilt)
	require.NoError(t, err)
	require.Equal(t, 1, svc.CacheStats().Size)

	msg, err := svc.Refresh(context.Background(), "gb")

	require.NoError(t, err)
	assert.Equal(t, "Refresh queued", msg)
	assert.Equal(t, 0, svc.CacheStats().Size)
}

func TestService_Refresh_FullWhenNoCountry(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().TriggerRefresh(gomock.Any(), models.RefreshRequest{Full: true}).
		Return(&models.RefreshResponse{}, nil)

	msg, err := svc.Refresh(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "Refresh started", msg)
}

func TestService_ClearCache(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetBond(gomock.Any(), gilt).Return(giltBond(), nil)

	_, err := svc.FetchBond(context.Background(), gilt)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.ClearCache())
	assert.Equal(t, 0, svc.ClearCache())
}

func TestService_FormatCacheStats(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetBond(gomock.Any(), gilt).Return(giltBond(), nil)

	_, err := svc.FetchBond(context.Background(), gilt) // miss
	require.NoError(t, err)
	_, err = svc.FetchBond(context.Background(), gilt) // hit
	require.NoError(t, err)

	assert.Equal(t, "Size: 1/10 | Hit Rate: 50% | TTL: 60s", svc.FormatCacheStats())
}

func TestService_APIStatus(t *testing.T) {
	svc, api := newTestService(t)

	api.EXPECT().Health(gomock.Any()).Return(nil)
	assert.Equal(t, "Connected", svc.APIStatus(context.Background()))

	api.EXPECT().Health(gomock.Any()).Return(errors.New("connection refused"))
	assert.Equal(t, "Disconnected: connection refused", svc.APIStatus(context.Background()))
}

func TestService_ValidateISIN(t *testing.T) {
	svc, _ := newTestService(t)

	assert.True(t, svc.ValidateISIN("GB00BYZW3G56"))
	assert.True(t, svc.ValidateISIN("xs0104440986"))
	assert.False(t, svc.ValidateISIN("ZZ00BYZW3G56"))
	assert.False(t, svc.ValidateISIN(""))
}

func TestService_Lineage(t *testing.T) {
	svc, api := newTestService(t)
	lineage := &models.Lineage{
		ContributingSources:      []string{"Bundesbank", "Tradeweb"},
		ReconciliationConfidence: 0.97,
		FieldSources: map[string]models.FieldSource{
			"coupon_rate": {SourceName: "Bundesbank", Confidence: 0.99},
		},
	}
	api.EXPECT().GetLineage(gomock.Any(), "DE0001102580").Return(lineage, nil).Times(2)

	summary, err := svc.Lineage(context.Background(), "de0001102580", "")
	require.NoError(t, err)
	assert.Equal(t, "Sources: Bundesbank, Tradeweb | Confidence: 97%", summary)

	fieldSrc, err := svc.Lineage(context.Background(), "DE0001102580", "coupon_rate")
	require.NoError(t, err)
	assert.Equal(t, "Bundesbank (confidence: 99%)", fieldSrc)
}

func TestService_Lineage_UnknownField(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetLineage(gomock.Any(), "DE0001102580").Return(&models.Lineage{}, nil)

	_, err := svc.Lineage(context.Background(), "DE0001102580", "coupon_rate")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestService_History(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetHistory(gomock.Any(), "DE0001102580", 10).Return([]models.ChangeRecord{
		{ChangedAt: "2026-08-01", ChangeType: "UPDATE", FieldName: "coupon_rate", OldValue: "0.01", NewValue: "0.015"},
	}, nil)

	rows, err := svc.History(context.Background(), "de0001102580", 0)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Date", "Type", "Field", "Old Value", "New Value"}, rows[0])
	assert.Equal(t, "coupon_rate", rows[1][2])
}

func TestService_History_Empty(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetHistory(gomock.Any(), "DE0001102580", 10).Return(nil, nil)

	_, err := svc.History(context.Background(), "DE0001102580", 10)

	assert.ErrorIs(t, err, ErrNoResults)
}

func TestService_CorporateActions(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().CorporateActions(gomock.Any(), models.ActionsQuery{ActionType: "CALLED", Limit: 100}).
		Return([]models.CorporateAction{
			{ISIN: "US912810TM58", ActionType: "CALLED", EffectiveDate: "2026-09-15"},
		}, nil)

	rows, err := svc.CorporateActions(context.Background(), "called", 0)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "US912810TM58", rows[1][0])
}

func TestService_CorporateActions_MaturedUsesMaturitiesEndpoint(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().UpcomingMaturities(gomock.Any(), 60).Return([]models.CorporateAction{
		{ISIN: "GB00BYZW3G56", ActionType: "MATURED", EffectiveDate: "2026-10-01"},
	}, nil)

	rows, err := svc.CorporateActions(context.Background(), "MATURED", 60)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "MATURED", rows[1][1])
}

func TestService_Help(t *testing.T) {
	svc, _ := newTestService(t)

	overview, err := svc.Help("")
	require.NoError(t, err)
	assert.NotEmpty(t, overview)

	fields, err := svc.Help("fields")
	require.NoError(t, err)
	assert.Equal(t, []string{"Field", "Description"}, fields[0])
	assert.Equal(t, len(models.FieldDescriptions)+1, len(fields))

	countries, err := svc.Help("countries")
	require.NoError(t, err)
	assert.Equal(t, len(models.CountryNames)+1, len(countries))

	functions, err := svc.Help("FUNCTIONS")
	require.NoError(t, err)
	assert.Greater(t, len(functions), 10)

	_, err = svc.Help("nope")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
