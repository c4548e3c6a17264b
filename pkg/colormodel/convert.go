package colormodel

import "math"

// D65 reference white and the sRGB<->XYZ matrices, at the four-digit
// precision the reference palettes were tuned against.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883

	labEpsilon = 0.008856
	labKappa   = 7.787
)

// HSV returns the hue/saturation/value view of c.
func (c Color) HSV() HSV {
	r, g, b := c.R/255, c.G/255, c.B/255
	v := max(r, g, b)
	diff := v - min(r, g, b)
	if diff == 0 {
		return HSV{H: 0, S: 0, V: v * 100}
	}

	diffc := func(x float64) float64 {
		return (v-x)/6/diff + 1.0/2
	}
	rd, gd, bd := diffc(r), diffc(g), diffc(b)

	var h float64
	switch v {
	case r:
		h = bd - gd
	case g:
		h = 1.0/3 + rd - bd
	default:
		h = 2.0/3 + gd - rd
	}
	if h < 0 {
		h++
	} else if h > 1 {
		h--
	}
	return HSV{H: h * 360, S: diff / v * 100, V: v * 100}
}

// Color converts the coordinates to a Color with FromHSV.
func (h HSV) Color() Color {
	return FromHSV(h.H, h.S, h.V)
}

// HSL converts the coordinates straight to HSL. Unlike going through a Color,
// the hue is kept when saturation is zero.
func (h HSV) HSL() HSL {
	s, v := clampPercent(h.S)/100, clampPercent(h.V)/100
	vmin := max(v, 0.01)
	l := (2 - s) * v
	lmin := (2 - s) * vmin

	sl := s * vmin
	if lmin <= 1 {
		sl /= lmin
	} else {
		sl /= 2 - lmin
	}
	if math.IsNaN(sl) {
		sl = 0
	}
	return HSL{H: WrapHue(h.H), S: sl * 100, L: l / 2 * 100}
}

// Format renders the coordinates. FormatHSL is derived with HSV.HSL; the
// other formats go through Color.
func (h HSV) Format(f Format) string {
	if f == FormatHSL {
		return formatHSL(h.HSL(), 1)
	}
	return h.Color().Format(f)
}

// HSL returns the hue/saturation/lightness view of c.
func (c Color) HSL() HSL {
	r, g, b := c.R/255, c.G/255, c.B/255
	lo, hi := min(r, g, b), max(r, g, b)
	delta := hi - lo

	var h float64
	switch {
	case hi == lo:
		h = 0
	case r == hi:
		h = (g - b) / delta
	case g == hi:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h = min(h*60, 360)
	if h < 0 {
		h += 360
	}

	l := (lo + hi) / 2
	var s float64
	switch {
	case hi == lo:
		s = 0
	case l <= 0.5:
		s = delta / (hi + lo)
	default:
		s = delta / (2 - hi - lo)
	}
	return HSL{H: h, S: s * 100, L: l * 100}
}

// Lab returns the CIE-Lab view of c.
func (c Color) Lab() Lab {
	x, y, z := rgbToXYZ(c.R, c.G, c.B)
	x /= whiteX
	y /= whiteY
	z /= whiteZ

	x, y, z = labCompress(x), labCompress(y), labCompress(z)
	return Lab{
		L: 116*y - 16,
		A: 500 * (x - y),
		B: 200 * (y - z),
	}
}

// LabToRGB converts CIE-Lab coordinates to sRGB channels on a 0-255 scale
// without clamping, so callers can tell whether the colour is in gamut.
func LabToRGB(l, a, b float64) (r, g, bl float64) {
	y := (l + 16) / 116
	x := a/500 + y
	z := y - b/200

	x = labUncompress(x) * whiteX
	y = labUncompress(y) * whiteY
	z = labUncompress(z) * whiteZ

	return xyzToRGB(x, y, z)
}

// InGamut reports whether all three channels round into [0,255].
func InGamut(r, g, b float64) bool {
	for _, ch := range [3]float64{r, g, b} {
		if math.IsNaN(ch) {
			return false
		}
		rc := round(ch)
		if rc < 0 || rc > 255 {
			return false
		}
	}
	return true
}

func rgbToXYZ(r, g, b float64) (x, y, z float64) {
	r, g, b = linearize(r/255), linearize(g/255), linearize(b/255)
	x = r*0.4124 + g*0.3576 + b*0.1805
	y = r*0.2126 + g*0.7152 + b*0.0722
	z = r*0.0193 + g*0.1192 + b*0.9505
	return x * 100, y * 100, z * 100
}

func xyzToRGB(x, y, z float64) (r, g, b float64) {
	x, y, z = x/100, y/100, z/100
	r = x*3.2406 + y*-1.5372 + z*-0.4986
	g = x*-0.9689 + y*1.8758 + z*0.0415
	b = x*0.0557 + y*-0.2040 + z*1.0570
	return delinearize(r) * 255, delinearize(g) * 255, delinearize(b) * 255
}

func linearize(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

func delinearize(c float64) float64 {
	if c > 0.0031308 {
		return 1.055*math.Pow(c, 1.0/2.4) - 0.055
	}
	return c * 12.92
}

func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Pow(t, 1.0/3)
	}
	return labKappa*t + 16.0/116
}

func labUncompress(t float64) float64 {
	cube := math.Pow(t, 3)
	if cube > labEpsilon {
		return cube
	}
	return (t - 16.0/116) / labKappa
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	h /= 60
	s /= 100
	v /= 100

	hi := int(math.Floor(h)) % 6
	f := h - math.Floor(h)
	p := 255 * v * (1 - s)
	q := 255 * v * (1 - s*f)
	t := 255 * v * (1 - s*(1-f))
	v *= 255

	switch hi {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	h /= 360
	s /= 100
	l /= 100

	if s == 0 {
		val := l * 255
		return val, val, val
	}

	var t2 float64
	if l < 0.5 {
		t2 = l * (1 + s)
	} else {
		t2 = l + s - l*s
	}
	t1 := 2*l - t2

	var out [3]float64
	for i := range out {
		t3 := h + 1.0/3*-float64(i-1)
		if t3 < 0 {
			t3++
		}
		if t3 > 1 {
			t3--
		}

		var val float64
		switch {
		case 6*t3 < 1:
			val = t1 + (t2-t1)*6*t3
		case 2*t3 < 1:
			val = t2
		case 3*t3 < 2:
			val = t1 + (t2-t1)*(2.0/3-t3)*6
		default:
			val = t1
		}
		out[i] = val * 255
	}
	return out[0], out[1], out[2]
}
