package palette

import "math"

// HueStep returns how many degrees the hue moves per palette step for a
// colour whose HSL hue is h. Greens and blues move furthest, reds least.
func HueStep(h float64) float64 {
	switch {
	case h >= 60 && h <= 240:
		return 2.5
	case (h >= 0 && h < 60) || (h > 300 && h <= 360):
		return 1.5
	default:
		return 2
	}
}

// ShiftHue moves hue h by distance steps toward the light or dark end of a
// ramp. Inside [60,240] lighter tints rotate backwards and darker shades
// forwards; outside that band the directions swap. The result is wrapped into
// [0,360) and rounded half-up.
func ShiftHue(h float64, light bool, distance int) float64 {
	step := HueStep(h) * float64(distance)

	var shifted float64
	if h >= 60 && h <= 240 {
		if light {
			shifted = h - step
		} else {
			shifted = h + step
		}
	} else {
		if light {
			shifted = h + step
		} else {
			shifted = h - step
		}
	}

	if shifted < 0 {
		shifted += 360
	} else if shifted >= 360 {
		shifted -= 360
	}
	return math.Floor(shifted + 0.5)
}

// LightSaturation desaturates s (an HSV percentage) for a tint distance steps
// lighter than the seed. Saturations at or below 9 are left alone.
func LightSaturation(s float64, distance int) float64 {
	if s <= 9 {
		return clampPercent(s)
	}
	return clampPercent(s - (s-9)/5.5*math.Pow(float64(distance), 1.05))
}

// DarkSaturation raises s toward min(100, s+30) for a shade distance steps
// darker than the seed.
func DarkSaturation(s float64, distance int) float64 {
	ceiling := math.Min(100, s+30)
	return clampPercent(s + (ceiling-s)/4.2*math.Pow(float64(distance), 0.95))
}

// LightValue raises the HSV value v toward 100 for a tint distance steps
// lighter than the seed.
func LightValue(v float64, distance int) float64 {
	return math.Min(100, v+(100-v)/5.2*math.Pow(float64(distance), 0.9))
}

// DarkValue lowers v toward a floor of 30 for a shade distance steps darker
// than the seed. Values already at or below 30 are left alone.
func DarkValue(v float64, distance int) float64 {
	if v <= 30 {
		return v
	}
	return math.Max(30, v-(v-30)/4.2*math.Pow(float64(distance), 1.05))
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
