package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_relay/internal/feature/market/domain/entity"
	"market_relay/internal/feature/market/usecase"
	"market_relay/internal/shared/apperr"
	"market_relay/internal/shared/record"
)

// mockMarketSource はMarketSourceインターフェースのモック実装です。
type mockMarketSource struct {
	status    record.Record
	statusErr error
	bars      []record.Record
	barsErr   error
	daily     map[string]record.Record
	symbols   []record.Record
	asked     []string
}

func (m *mockMarketSource) MarketStatus(context.Context) (record.Record, error) {
	return m.status, m.statusErr
}

func (m *mockMarketSource) IntraHistory(_ context.Context, symbol string) ([]record.Record, error) {
	m.asked = append(m.asked, symbol)
	return m.bars, m.barsErr
}

func (m *mockMarketSource) DailyIndex(_ context.Context, key string) (record.Record, error) {
	m.asked = append(m.asked, key)
	if rec, ok := m.daily[key]; ok {
		return rec, nil
	}
	return nil, apperr.ErrUpstreamFetch
}

func (m *mockMarketSource) Symbols(context.Context) ([]record.Record, error) {
	return m.symbols, nil
}

type stubLive struct {
	data record.Record
	err  error
}

func (s stubLive) NepseLive(context.Context) (record.Record, error) { return s.data, s.err }

var bars = []record.Record{
	{
		"id": json.Number("101"), "date": "2024-01-15T11:15:00+05:45", "symbol": "NEPSE",
		"open": json.Number("2040.1"), "high": json.Number("2050"), "low": json.Number("2035.5"),
		"close": json.Number("2045.12"), "curr_volume": json.Number("10"), "volume": json.Number("1000"),
		"curr_amount": json.Number("5"), "amount": json.Number("500"),
	},
	{"id": json.Number("102"), "date": "not a date", "symbol": "NEPSE", "close": json.Number("2046")},
}

func TestMarketUsecase_State(t *testing.T) {
	t.Parallel()

	src := &mockMarketSource{
		status: record.Record{"is_open": true, "as_of": "2024-01-15", "as_of_live_unix": json.Number("1705296000"), "extra": "dropped"},
		bars:   bars,
	}

	got, err := usecase.NewMarketUsecase(src, nil).State(context.Background())
	require.NoError(t, err)

	assert.Equal(t, true, got.IsOpen)
	assert.Equal(t, "2024-01-15", got.AsOf)
	assert.Nil(t, got.AsOfWeekly)
	assert.Equal(t, json.Number("1705296000"), got.AsOfLiveUnix)
	assert.Equal(t, "11:15:00", got.Bar.Date)
	assert.Equal(t, json.Number("2045.12"), got.Bar.Close)
	assert.Equal(t, []string{"NEPSE"}, src.asked)
}

func TestMarketUsecase_State_Errors(t *testing.T) {
	t.Parallel()

	_, err := usecase.NewMarketUsecase(&mockMarketSource{status: record.Record{}}, nil).State(context.Background())
	assert.ErrorIs(t, err, apperr.ErrNoData)

	_, err = usecase.NewMarketUsecase(&mockMarketSource{statusErr: apperr.ErrUpstreamFetch}, nil).State(context.Background())
	assert.ErrorIs(t, err, apperr.ErrUpstreamFetch)
}

func TestMarketUsecase_IntradayChart(t *testing.T) {
	t.Parallel()

	got, err := usecase.NewMarketUsecase(&mockMarketSource{bars: bars}, nil).IntradayChart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.ChartPoint{
		{ID: json.Number("101"), Close: json.Number("2045.12"), Date: "11:15:00", Symbol: "NEPSE"},
		{ID: json.Number("102"), Close: json.Number("2046"), Date: "not a date", Symbol: "NEPSE"},
	}, got)
}

func TestMarketUsecase_IsOpen(t *testing.T) {
	t.Parallel()

	got, err := usecase.NewMarketUsecase(&mockMarketSource{status: record.Record{"is_open": true}}, nil).IsOpen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, true, got)

	got, err = usecase.NewMarketUsecase(&mockMarketSource{status: record.Record{}}, nil).IsOpen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, false, got)
}

func TestMarketUsecase_IndexChart(t *testing.T) {
	t.Parallel()

	src := &mockMarketSource{daily: map[string]record.Record{
		"nepse":       {"data": []any{"x"}, "point_change": json.Number("-12.5")},
		"hydropowind": {"point_change": json.Number("3")},
	}}
	uc := usecase.NewMarketUsecase(src, nil)

	got, err := uc.IndexChart(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, entity.IndexChart{Data: []any{"x"}, PointChange: json.Number("-12.5")}, got)

	got, err = uc.IndexChart(context.Background(), "Hydro")
	require.NoError(t, err)
	assert.Equal(t, []any{}, got.Data)

	_, err = uc.IndexChart(context.Background(), "crypto")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, []string{"nepse", "hydropowind"}, src.asked)
}

func TestMarketUsecase_CloseSummary(t *testing.T) {
	t.Parallel()

	live := stubLive{data: record.Record{
		"indexValue":       json.Number("2045.678"),
		"difference":       json.Number("-12.344"),
		"percentChange":    json.Number("-0.6"),
		"turnover":         json.Number("3456789012.5"),
		"noOfTransactions": json.Number("55000"),
		"noOfGainers":      json.Number("120"),
		"noOfLosers":       json.Number("80"),
		"asOfDateString":   "As of Jan 15, 2024 3:00 PM",
	}}

	got, err := usecase.NewMarketUsecase(nil, live).CloseSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.CloseSummary{
		Index:         json.Number("2045.68"),
		Change:        json.Number("-12.34"),
		PercentChange: json.Number("-0.6"),
		Turnover:      json.Number("3456789012.5"),
		Transactions:  json.Number("55000"),
		Advanced:      json.Number("120"),
		Declined:      json.Number("80"),
		Unchanged:     json.Number("0"),
		Date:          "As of Jan 15, 2024 3:00 PM",
	}, got)
}

func TestMarketUsecase_CloseSummary_Defaults(t *testing.T) {
	t.Parallel()

	got, err := usecase.NewMarketUsecase(nil, stubLive{data: record.Record{}}).CloseSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, json.Number("0"), got.Index)
	assert.Equal(t, "", got.Date)

	_, err = usecase.NewMarketUsecase(nil, stubLive{data: record.Record{"indexValue": "high"}}).CloseSummary(context.Background())
	assert.ErrorIs(t, err, apperr.ErrParse)
}

// TestMarketUsecase_CloseSummary_Rounding は小数第2位で0から遠ざかる方向に丸めることを検証します。
// 2.675のような二進浮動小数点で表せない値も十進のまま丸めます。
func TestMarketUsecase_CloseSummary_Rounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want json.Number
	}{
		{name: "half rounds up", in: json.Number("2.675"), want: "2.68"},
		{name: "negative half rounds away from zero", in: json.Number("-2.675"), want: "-2.68"},
		{name: "1.005", in: json.Number("1.005"), want: "1.01"},
		{name: "below half rounds down", in: json.Number("2.6749"), want: "2.67"},
		{name: "float64 input", in: 2.675, want: "2.68"},
		{name: "integer", in: json.Number("2045"), want: "2045"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			live := stubLive{data: record.Record{"indexValue": tt.in, "difference": tt.in, "percentChange": tt.in}}
			got, err := usecase.NewMarketUsecase(nil, live).CloseSummary(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Index)
			assert.Equal(t, tt.want, got.Change)
			assert.Equal(t, tt.want, got.PercentChange)
		})
	}
}

func TestMarketUsecase_Companies(t *testing.T) {
	t.Parallel()

	src := &mockMarketSource{symbols: []record.Record{
		{"symbol": "NABIL", "name": "Nabil Bank", "sector": "Banking"},
		{"symbol": "NOPE"},
		{"name": "Nameless"},
		{"symbol": "NICA", "name": "NIC Asia"},
	}}

	got, err := usecase.NewMarketUsecase(src, nil).Companies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.Company{
		{Symbol: "NABIL", Name: "Nabil Bank"},
		{Symbol: "NICA", Name: "NIC Asia"},
	}, got)

	_, err = usecase.NewMarketUsecase(&mockMarketSource{}, nil).Companies(context.Background())
	assert.ErrorIs(t, err, apperr.ErrNoData)
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want any
	}{
		{"2024-01-15T11:15:00+05:45", "11:15:00"},
		{"2024-01-15T11:15:00.123456", "11:15:00"},
		{"2024-01-15 14:59:59", "14:59:59"},
		{"2024-01-15T05:30:00Z", "05:30:00"},
		{"2024-01-15", "00:00:00"},
		{"yesterday", "yesterday"},
		{nil, nil},
		{json.Number("5"), json.Number("5")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, usecase.FormatClock(tt.in), "%v", tt.in)
	}
}
