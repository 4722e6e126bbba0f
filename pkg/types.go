package demandProfiler

import (
	"gonum.org/v1/gonum/mat"
)

// set global constants
const hrs int = 168   // hours per week
const dayHrs int = 24 // hours per day
const wkDays int = 7  // days per week

// Profile type
type Profile struct {
	Buckets [][]float64 // raw net demand samples, one sequence per hour-of-week
}

// ProfileStats type
type ProfileStats struct {
	Means *mat.Dense // mean net demand per hour-of-week in kWh
	Stds  *mat.Dense // population standard deviation per hour-of-week in kWh
}

// DataRow type
type DataRow struct {
	Timeslot    string  // timeslot serial, carried but unused
	DayOfWeek   int     // day of week in [1,7]
	HourOfDay   int     // hour of day in [0,23]
	Production  float64 // customer production in kWh
	Consumption float64 // customer consumption in kWh, negative when present
}

// TariffTx type
type TariffTx struct {
	Timeslot int     // timeslot serial
	TxType   string  // transaction type, PRODUCE or CONSUME
	KWh      float64 // transaction quantity in kWh
}
