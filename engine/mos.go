// SPDX-License-Identifier: EPL-2.0

package engine

import "math"

const (
	minMOS = 1.0
	maxMOS = 5.0

	// mosDecay puts a distance of 0.05 at MOS 3.
	mosDecay = 13.862943611198904
)

// MOSFromZimtohrli maps a distance to a mean opinion score in [1, 5].
// It never increases as the distance grows; 0 maps to 5.
func MOSFromZimtohrli(distance float64) float64 {
	switch {
	case math.IsNaN(distance):
		return minMOS
	case distance <= 0:
		return maxMOS
	}

	return minMOS + (maxMOS-minMOS)*math.Exp(-mosDecay*distance)
}

// Quality is a human readable MOS bucket.
type Quality string

const (
	QualityExcellent Quality = "Excellent"
	QualityGood      Quality = "Good"
	QualityFair      Quality = "Fair"
	QualityPoor      Quality = "Poor"
	QualityBad       Quality = "Bad"
)

// QualityOf buckets a MOS.
func QualityOf(mos float64) Quality {
	switch {
	case mos >= 4.5:
		return QualityExcellent
	case mos >= 4.0:
		return QualityGood
	case mos >= 3.0:
		return QualityFair
	case mos >= 2.0:
		return QualityPoor
	default:
		return QualityBad
	}
}
