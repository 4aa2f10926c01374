package collector

import (
	"time"

	"EconTrack/internal/fred"
	"EconTrack/internal/model"
)

// MockSeriesSource returns controllable fixed data for development and testing.
type MockSeriesSource struct {
	Observations map[string][]model.Observation
	Infos        map[string]fred.SeriesInfo
	Errs         map[string]error
}

func (m *MockSeriesSource) Series(seriesID string, _, _ time.Time) ([]model.Observation, error) {
	if err := m.Errs[seriesID]; err != nil {
		return nil, err
	}
	if obs, ok := m.Observations[seriesID]; ok {
		return obs, nil
	}
	return generateMockObservations(4.0, 30), nil
}

func (m *MockSeriesSource) Info(seriesID string) (fred.SeriesInfo, error) {
	if err := m.Errs[seriesID]; err != nil {
		return fred.SeriesInfo{}, err
	}
	if info, ok := m.Infos[seriesID]; ok {
		return info, nil
	}
	return fred.SeriesInfo{ID: seriesID, Frequency: "Daily", Units: "Percent"}, nil
}

// MockMarketSource returns controllable fixed bars for development and testing.
type MockMarketSource struct {
	Bars map[string][]model.Bar
	Errs map[string]error
}

func (m *MockMarketSource) History(ticker, _, _ string) ([]model.Bar, error) {
	if err := m.Errs[ticker]; err != nil {
		return nil, err
	}
	if bars, ok := m.Bars[ticker]; ok {
		return bars, nil
	}
	return generateMockBars(5000, 30), nil
}

func generateMockObservations(base float64, count int) []model.Observation {
	obs := make([]model.Observation, count)
	for i := 0; i < count; i++ {
		v := base * (1 + float64(i-count/2)*0.001)
		obs[i] = model.Observation{
			Date:  time.Now().AddDate(0, 0, -(count - i)),
			Value: model.Float(v),
		}
	}
	return obs
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
