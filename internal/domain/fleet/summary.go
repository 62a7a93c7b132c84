package fleet

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
)

// Summary aggregates fuel figures over a fleet.
// Vehicles with an unknown tank capacity only contribute to Count.
type Summary struct {
	Count               int
	Measured            int
	TotalCapacity       float64
	TotalFuel           float64
	MeanPercentFilled   float64
	StdDevPercentFilled float64
}

// Summarize computes fleet totals and the spread of fill levels
func Summarize(vehicles []*vehicle.Vehicle) Summary {
	summary := Summary{Count: len(vehicles)}

	capacities := make([]float64, 0, len(vehicles))
	fuels := make([]float64, 0, len(vehicles))
	percents := make([]float64, 0, len(vehicles))
	for _, v := range vehicles {
		litres, known := v.Tank().Capacity().Litres()
		if !known {
			continue
		}
		capacities = append(capacities, litres)
		fuels = append(fuels, v.Tank().Fuel())
		percents = append(percents, v.Tank().PercentFilled())
	}

	summary.Measured = len(percents)
	if summary.Measured == 0 {
		return summary
	}

	summary.TotalCapacity = floats.Sum(capacities)
	summary.TotalFuel = floats.Sum(fuels)
	summary.MeanPercentFilled = stat.Mean(percents, nil)
	if summary.Measured > 1 {
		summary.StdDevPercentFilled = stat.StdDev(percents, nil)
	}

	return summary
}
