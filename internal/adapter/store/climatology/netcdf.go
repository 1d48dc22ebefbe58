// Package climatology provides surface temperature lookups from a gridded
// NetCDF climatology (e.g. an ERA5 2 m temperature mean).
package climatology

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/fhs/go-netcdf/netcdf"

	"go.ngs.io/geocorr/internal/adapter/interp"
)

// DefaultVarName is the ERA5 name of the 2 m temperature variable.
const DefaultVarName = "t2m"

const celsiusOffset = 273.15

// Store serves surface temperatures from a NetCDF grid. The grid is read once
// and shared by all callers.
type Store struct {
	path    string
	varName string
	grid    *interp.Grid
	mu      sync.RWMutex // Protect grid.
}

// NewStore creates a store for the given file and variable name. An empty
// variable name tries common temperature names.
func NewStore(path, varName string) *Store {
	return &Store{
		path:    path,
		varName: varName,
	}
}

// Load reads the grid if it is not loaded yet.
func (s *Store) Load() error {
	_, err := s.loadGrid()
	return err
}

// TemperatureAt returns the interpolated surface temperature in kelvin.
func (s *Store) TemperatureAt(lat, lon float64) (float64, error) {
	grid, err := s.loadGrid()
	if err != nil {
		return 0, err
	}

	temp, err := grid.At(lon, lat)
	if err != nil {
		return 0, fmt.Errorf("failed to interpolate temperature at (%.4f, %.4f): %w", lat, lon, err)
	}
	return temp, nil
}

func (s *Store) loadGrid() (*interp.Grid, error) {
	// Check cache first.
	s.mu.RLock()
	if s.grid != nil {
		grid := s.grid
		s.mu.RUnlock()
		return grid, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grid != nil {
		return s.grid, nil
	}

	grid, err := readGrid(s.path, s.varName)
	if err != nil {
		return nil, fmt.Errorf("failed to load climatology %s: %w", s.path, err)
	}
	s.grid = grid
	return grid, nil
}

// readGrid reads a temperature field from a NetCDF file. The data variable may
// be [lat, lon], [lon, lat] or [time, lat, lon]; a time axis is averaged.
func readGrid(path, varName string) (*interp.Grid, error) {
	nc, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to open NetCDF file: %w", err)
	}
	defer func() { _ = nc.Close() }()

	latData, err := readAxis(nc, "latitude", "lat", "y")
	if err != nil {
		return nil, err
	}
	lonData, err := readAxis(nc, "longitude", "lon", "x")
	if err != nil {
		return nil, err
	}

	dataNames := []string{DefaultVarName, "t2", "tas", "temperature", "air", "t"}
	if varName != "" {
		dataNames = []string{varName}
	}
	dataVar, err := findVar(nc, dataNames)
	if err != nil {
		return nil, fmt.Errorf("temperature variable not found (tried: %v)", dataNames)
	}

	dims, err := dataVar.Dims()
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions: %w", err)
	}
	shape := make([]int, len(dims))
	total := 1
	for i, d := range dims {
		n, err := d.Len()
		if err != nil {
			return nil, fmt.Errorf("failed to get dimension %d length: %w", i, err)
		}
		shape[i] = int(n)
		total *= int(n)
	}

	flat, err := readFlat(dataVar, total)
	if err != nil {
		return nil, fmt.Errorf("failed to read temperature: %w", err)
	}
	applyPacking(dataVar, flat)

	nLat, nLon := len(latData), len(lonData)
	var values [][]float64
	switch {
	case len(shape) == 2 && shape[0] == nLat && shape[1] == nLon:
		values = reshape(flat, nLat, nLon)
	case len(shape) == 2 && shape[0] == nLon && shape[1] == nLat:
		values = transpose(reshape(flat, nLon, nLat))
	case len(shape) == 3 && shape[1] == nLat && shape[2] == nLon:
		values = meanOverTime(flat, shape[0], nLat, nLon)
	default:
		return nil, fmt.Errorf("dimension mismatch: data is %v, axes are lat=%d lon=%d", shape, nLat, nLon)
	}

	if isCelsius(dataVar) {
		for _, row := range values {
			for j := range row {
				row[j] += celsiusOffset
			}
		}
	}

	grid := &interp.Grid{Lon: lonData, Lat: latData, Values: values}
	if nLat > 1 && latData[0] > latData[nLat-1] {
		grid = grid.Flip()
	}
	if nLon > 1 {
		step := lonData[1] - lonData[0]
		grid.Periodic = lonData[nLon-1]-lonData[0]+step >= 360-1e-6
	}

	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}
	return grid, nil
}

func findVar(nc netcdf.Dataset, names []string) (netcdf.Var, error) {
	for _, name := range names {
		if v, err := nc.Var(name); err == nil {
			return v, nil
		}
	}
	return netcdf.Var{}, fmt.Errorf("none of %v found", names)
}

func readAxis(nc netcdf.Dataset, names ...string) ([]float64, error) {
	v, err := findVar(nc, names)
	if err != nil {
		return nil, fmt.Errorf("coordinate variable not found (tried: %v)", names)
	}
	dims, err := v.Dims()
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions: %w", err)
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("expected 1D coordinate variable, got %dD", len(dims))
	}
	n, err := dims[0].Len()
	if err != nil {
		return nil, err
	}
	return readFlat(v, int(n))
}

// readFlat reads all values of a variable as float64.
func readFlat(v netcdf.Var, n int) ([]float64, error) {
	t, err := v.Type()
	if err != nil {
		return nil, fmt.Errorf("failed to get var type: %w", err)
	}

	out := make([]float64, n)
	switch t {
	case netcdf.DOUBLE:
		if err := v.ReadFloat64s(out); err != nil {
			return nil, err
		}
	case netcdf.FLOAT:
		tmp := make([]float32, n)
		if err := v.ReadFloat32s(tmp); err != nil {
			return nil, err
		}
		for i, val := range tmp {
			out[i] = float64(val)
		}
	case netcdf.INT:
		tmp := make([]int32, n)
		if err := v.ReadInt32s(tmp); err != nil {
			return nil, err
		}
		for i, val := range tmp {
			out[i] = float64(val)
		}
	case netcdf.SHORT:
		tmp := make([]int16, n)
		if err := v.ReadInt16s(tmp); err != nil {
			return nil, err
		}
		for i, val := range tmp {
			out[i] = float64(val)
		}
	default:
		return nil, fmt.Errorf("unsupported data type: %v", t)
	}
	return out, nil
}

// applyPacking replaces fill values with NaN and applies scale_factor and
// add_offset.
func applyPacking(v netcdf.Var, data []float64) {
	fill, hasFill := attrFloat(v, "_FillValue")
	missing, hasMissing := attrFloat(v, "missing_value")
	scale, hasScale := attrFloat(v, "scale_factor")
	offset, _ := attrFloat(v, "add_offset")
	if !hasScale || scale == 0 {
		scale = 1
	}

	for i, x := range data {
		if (hasFill && x == fill) || (hasMissing && x == missing) {
			data[i] = math.NaN()
			continue
		}
		data[i] = x*scale + offset
	}
}

// attrFloat returns a numeric attribute as float64 if present.
func attrFloat(v netcdf.Var, name string) (float64, bool) {
	a := v.Attr(name)
	if n, err := a.Len(); err != nil || n == 0 {
		return 0, false
	}

	buf64 := make([]float64, 1)
	if err := a.ReadFloat64s(buf64); err == nil {
		return buf64[0], true
	}
	buf32 := make([]float32, 1)
	if err := a.ReadFloat32s(buf32); err == nil {
		return float64(buf32[0]), true
	}
	bufi := make([]int32, 1)
	if err := a.ReadInt32s(bufi); err == nil {
		return float64(bufi[0]), true
	}
	bufs := make([]int16, 1)
	if err := a.ReadInt16s(bufs); err == nil {
		return float64(bufs[0]), true
	}
	return 0, false
}

// isCelsius reports whether the units attribute names degrees Celsius.
func isCelsius(v netcdf.Var) bool {
	a := v.Attr("units")
	n, err := a.Len()
	if err != nil || n == 0 {
		return false
	}
	buf := make([]byte, n)
	if err := a.ReadBytes(buf); err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimRight(string(buf), "\x00 ")) {
	case "degc", "deg_c", "celsius", "degrees_celsius", "c", "°c":
		return true
	}
	return false
}

func reshape(flat []float64, nRows, nCols int) [][]float64 {
	values := make([][]float64, nRows)
	for i := 0; i < nRows; i++ {
		values[i] = flat[i*nCols : (i+1)*nCols]
	}
	return values
}

func transpose(data [][]float64) [][]float64 {
	if len(data) == 0 {
		return data
	}
	out := make([][]float64, len(data[0]))
	for i := range out {
		out[i] = make([]float64, len(data))
		for j := range data {
			out[i][j] = data[j][i]
		}
	}
	return out
}

// meanOverTime averages a [time, lat, lon] array over its first axis,
// skipping missing values.
func meanOverTime(flat []float64, nTime, nLat, nLon int) [][]float64 {
	values := make([][]float64, nLat)
	for i := 0; i < nLat; i++ {
		values[i] = make([]float64, nLon)
		for j := 0; j < nLon; j++ {
			sum, count := 0.0, 0
			for k := 0; k < nTime; k++ {
				x := flat[(k*nLat+i)*nLon+j]
				if math.IsNaN(x) {
					continue
				}
				sum += x
				count++
			}
			if count == 0 {
				values[i][j] = math.NaN()
			} else {
				values[i][j] = sum / float64(count)
			}
		}
	}
	return values
}
