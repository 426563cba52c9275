package weather

import "testing"

func f(v float64) *float64 { return &v }

func TestClassifyTemperature(t *testing.T) {
	cases := []struct {
		in   *float64
		want TemperatureClass
	}{
		{nil, TemperatureModerate},
		{f(-5), TemperatureCold},
		{f(17.999), TemperatureCold},
		{f(18), TemperatureModerate},
		{f(27.999), TemperatureModerate},
		{f(28), TemperatureHot},
		{f(35.2), TemperatureHot},
	}
	for _, tc := range cases {
		if got := ClassifyTemperature(tc.in); got != tc.want {
			t.Fatalf("ClassifyTemperature(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestClassifyHumidity(t *testing.T) {
	cases := []struct {
		in   *float64
		want HumidityClass
	}{
		{nil, HumidityModerate},
		{f(10), HumidityLow},
		{f(39.999), HumidityLow},
		{f(40), HumidityModerate},
		{f(69.999), HumidityModerate},
		{f(70), HumidityHigh},
		{f(95), HumidityHigh},
	}
	for _, tc := range cases {
		if got := ClassifyHumidity(tc.in); got != tc.want {
			t.Fatalf("ClassifyHumidity(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestClassifyKeepsActualReadings(t *testing.T) {
	cond := Classify(f(32), f(80))
	if cond.Temperature != TemperatureHot || cond.Humidity != HumidityHigh {
		t.Fatalf("unexpected classes: %+v", cond)
	}
	if cond.ActualTemperature == nil || *cond.ActualTemperature != 32 {
		t.Fatalf("actual temperature not preserved: %+v", cond)
	}
	if cond.ActualHumidity == nil || *cond.ActualHumidity != 80 {
		t.Fatalf("actual humidity not preserved: %+v", cond)
	}
}
