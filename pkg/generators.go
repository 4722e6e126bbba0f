package demandProfiler

import (
	"gonum.org/v1/gonum/mat"
)

// NewProfile generator
func NewProfile() *Profile {

	// allocate empty bucket sequences
	buckets := make([][]float64, hrs)
	for b := 0; b < hrs; b++ {
		buckets[b] = make([]float64, 0)
	}

	// return output
	return &Profile{
		Buckets: buckets,
	}
}

// NewProfileStats generator
func NewProfileStats() *ProfileStats {

	// allocate empty hourly stat vectors
	var (
		means = mat.NewDense(hrs, 1, nil)
		stds  = mat.NewDense(hrs, 1, nil)
	)

	// return output
	return &ProfileStats{
		Means: means,
		Stds:  stds,
	}
}

// NewTariffTx generator
func NewTariffTx(
	timeslot int,
	txType string,
	kWh float64) *TariffTx {

	// return output
	return &TariffTx{
		Timeslot: timeslot,
		TxType:   txType,
		KWh:      kWh,
	}
}
