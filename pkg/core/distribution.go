package core

// Distribution1D is a piecewise-constant 1D probability distribution over [0,1)
type Distribution1D struct {
	Func    []float64 // Unnormalized function values, one per cell
	CDF     []float64 // Cumulative distribution, len(Func)+1 entries
	FuncInt float64   // Integral of Func over [0,1)
}

// NewDistribution1D builds a distribution from unnormalized function values
func NewDistribution1D(f []float64) *Distribution1D {
	n := len(f)
	d := &Distribution1D{
		Func: append([]float64(nil), f...),
		CDF:  make([]float64, n+1),
	}

	for i := 1; i <= n; i++ {
		d.CDF[i] = d.CDF[i-1] + d.Func[i-1]/float64(n)
	}

	d.FuncInt = d.CDF[n]
	if d.FuncInt == 0 {
		// Degenerate function: fall back to the uniform distribution
		for i := 1; i <= n; i++ {
			d.CDF[i] = float64(i) / float64(n)
		}
	} else {
		for i := 1; i <= n; i++ {
			d.CDF[i] /= d.FuncInt
		}
	}

	return d
}

// Count returns the number of cells in the distribution
func (d *Distribution1D) Count() int {
	return len(d.Func)
}

// SampleContinuous maps a uniform random number to a value in [0,1) distributed
// proportionally to Func, returning the value, its pdf and the cell index
func (d *Distribution1D) SampleContinuous(u float64) (value, pdf float64, offset int) {
	offset = d.findInterval(u)

	du := u - d.CDF[offset]
	if width := d.CDF[offset+1] - d.CDF[offset]; width > 0 {
		du /= width
	}

	if d.FuncInt > 0 {
		pdf = d.Func[offset] / d.FuncInt
	} else {
		pdf = 1
	}

	value = (float64(offset) + du) / float64(d.Count())
	return value, pdf, offset
}

// PDF returns the probability density at a value in [0,1)
func (d *Distribution1D) PDF(value float64) float64 {
	n := d.Count()
	i := int(value * float64(n))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	if d.FuncInt == 0 {
		return 1
	}
	return d.Func[i] / d.FuncInt
}

// findInterval locates the largest CDF index with CDF[i] <= u via binary search
func (d *Distribution1D) findInterval(u float64) int {
	lo, hi := 0, len(d.CDF)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if d.CDF[mid] <= u {
			lo = mid
		} else {
			hi = mid
		}
	}
	if lo > d.Count()-1 {
		lo = d.Count() - 1
	}
	return lo
}

// Distribution2D is a piecewise-constant 2D probability distribution over
// [0,1)², built from a row-major grid of unnormalized values. Used by the
// environment light to importance-sample bright texture regions.
type Distribution2D struct {
	conditional []*Distribution1D // One conditional distribution per row
	marginal    *Distribution1D   // Marginal distribution over rows
}

// NewDistribution2D builds a distribution from values[row][column]
func NewDistribution2D(values [][]float64) *Distribution2D {
	d := &Distribution2D{
		conditional: make([]*Distribution1D, len(values)),
	}

	marginalFunc := make([]float64, len(values))
	for v, row := range values {
		d.conditional[v] = NewDistribution1D(row)
		marginalFunc[v] = d.conditional[v].FuncInt
	}
	d.marginal = NewDistribution1D(marginalFunc)

	return d
}

// SampleContinuous maps a uniform 2D sample to a point in [0,1)² distributed
// proportionally to the grid values, returning the point and its pdf
func (d *Distribution2D) SampleContinuous(sample Vec2) (Vec2, float64) {
	v, pdfV, row := d.marginal.SampleContinuous(sample.Y)
	u, pdfU, _ := d.conditional[row].SampleContinuous(sample.X)
	return NewVec2(u, v), pdfU * pdfV
}

// PDF returns the probability density at a point in [0,1)²
func (d *Distribution2D) PDF(p Vec2) float64 {
	row := int(p.Y * float64(len(d.conditional)))
	if row < 0 {
		row = 0
	}
	if row >= len(d.conditional) {
		row = len(d.conditional) - 1
	}
	return d.conditional[row].PDF(p.X) * d.marginal.PDF(p.Y)
}
