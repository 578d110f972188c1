package sorting

import (
	"time"

	"github.com/EstruturaDados/free-fire/pkg/models"
)

// now is swapped in tests
var now = time.Now

// Measure runs fn over items and returns the elapsed wall-clock time in seconds.
func Measure(fn Func, items []models.Component, comparisons *int64) float64 {
	start := now()
	fn(items, comparisons)
	return now().Sub(start).Seconds()
}
