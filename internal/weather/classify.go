package weather

// Bucket boundaries in degrees Celsius and percent relative humidity.
// Each boundary is inclusive on the lower bound of its bucket.
const (
	coldBelowC = 18.0
	hotFromC   = 28.0

	lowBelowPct = 40.0
	highFromPct = 70.0
)

// ClassifyTemperature quantizes a reading into hot/moderate/cold.
// nil is a valid input meaning "unknown" and maps to the neutral bucket.
func ClassifyTemperature(celsius *float64) TemperatureClass {
	switch {
	case celsius == nil:
		return TemperatureModerate
	case *celsius < coldBelowC:
		return TemperatureCold
	case *celsius >= hotFromC:
		return TemperatureHot
	default:
		return TemperatureModerate
	}
}

// ClassifyHumidity quantizes a reading into high/moderate/low.
// nil maps to the neutral bucket.
func ClassifyHumidity(percent *float64) HumidityClass {
	switch {
	case percent == nil:
		return HumidityModerate
	case *percent < lowBelowPct:
		return HumidityLow
	case *percent >= highFromPct:
		return HumidityHigh
	default:
		return HumidityModerate
	}
}

// Classify builds the full Conditions record from raw readings.
func Classify(celsius, percent *float64) Conditions {
	return Conditions{
		Temperature:       ClassifyTemperature(celsius),
		Humidity:          ClassifyHumidity(percent),
		ActualTemperature: celsius,
		ActualHumidity:    percent,
	}
}
