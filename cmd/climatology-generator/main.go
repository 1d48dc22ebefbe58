// Command climatology-generator writes a surface temperature grid in the
// NetCDF layout read by the climatology store. Cell values are inverse
// distance weighted from station temperatures in a catalog, falling back to a
// zonal-mean profile where no station is near.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/fhs/go-netcdf/netcdf"

	"go.ngs.io/geocorr/internal/adapter/store/csv"
	"go.ngs.io/geocorr/internal/domain"
)

// RegionalGrid defines the geographic bounds and resolution.
type RegionalGrid struct {
	LatMin     float64
	LatMax     float64
	LonMin     float64
	LonMax     float64
	Resolution float64 // Degrees.
}

// Size returns the number of latitude and longitude points.
func (g RegionalGrid) Size() (nLat, nLon int) {
	return int(math.Round((g.LatMax-g.LatMin)/g.Resolution)) + 1,
		int(math.Round((g.LonMax-g.LonMin)/g.Resolution)) + 1
}

// Validate checks that the grid has a positive resolution and ordered bounds.
func (g RegionalGrid) Validate() error {
	if !(g.Resolution > 0) {
		return fmt.Errorf("resolution must be positive, got %v", g.Resolution)
	}
	if g.LatMin > g.LatMax || g.LonMin > g.LonMax {
		return fmt.Errorf("invalid bounds: lat %v..%v, lon %v..%v", g.LatMin, g.LatMax, g.LonMin, g.LonMax)
	}
	return nil
}

// sample is a station temperature used for weighting.
type sample struct {
	lat, lon, tempK float64
}

// influenceKm is the distance beyond which a station no longer contributes.
const influenceKm = 1500.0

const earthRadiusKm = 6371.0

func main() {
	// Command line flags.
	stationsPath := flag.String("stations", "", "Station catalog CSV with temperature_k values (optional)")
	outPath := flag.String("out", "./data/t2m_climatology.nc", "Output NetCDF file")
	region := flag.String("region", "global", "Region: global or custom")
	latMin := flag.Float64("lat-min", -90.0, "Minimum latitude (custom region)")
	latMax := flag.Float64("lat-max", 90.0, "Maximum latitude (custom region)")
	lonMin := flag.Float64("lon-min", 0.0, "Minimum longitude (custom region)")
	lonMax := flag.Float64("lon-max", 359.0, "Maximum longitude (custom region)")
	resolution := flag.Float64("resolution", 1.0, "Grid resolution in degrees")

	flag.Parse()

	// Define grid based on region.
	var grid RegionalGrid
	switch *region {
	case "global":
		grid = RegionalGrid{
			LatMin:     -90.0,
			LatMax:     90.0,
			LonMin:     0.0,
			LonMax:     360.0 - *resolution,
			Resolution: *resolution,
		}
	case "custom":
		grid = RegionalGrid{
			LatMin:     *latMin,
			LatMax:     *latMax,
			LonMin:     *lonMin,
			LonMax:     *lonMax,
			Resolution: *resolution,
		}
	default:
		log.Fatalf("Unknown region: %s (use global or custom)", *region)
	}
	if err := grid.Validate(); err != nil {
		log.Fatalf("Invalid grid: %v", err)
	}

	var samples []sample
	if *stationsPath != "" {
		catalog, err := csv.LoadStationFile(*stationsPath)
		if err != nil {
			log.Fatalf("Failed to read station catalog: %v", err)
		}
		samples = stationSamples(catalog.Stations())
		log.Printf("Loaded %d station temperatures from %s", len(samples), *stationsPath)
	}

	nLat, nLon := grid.Size()
	log.Printf("Grid: %.1f°-%.1f°N, %.1f°-%.1f°E, resolution: %.2f° (%d × %d points)",
		grid.LatMin, grid.LatMax, grid.LonMin, grid.LonMax, grid.Resolution, nLat, nLon)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	lat, lon, values := buildGrid(grid, samples)
	if err := writeNetCDF(*outPath, lat, lon, values); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}

	log.Printf("Generated %s (~%.1f MB)", *outPath, float64(nLat*nLon*8)/1024/1024)
}

// stationSamples keeps the stations that carry a temperature.
func stationSamples(stations []domain.Station) []sample {
	out := make([]sample, 0, len(stations))
	for _, st := range stations {
		if st.TemperatureK == nil {
			continue
		}
		out = append(out, sample{lat: st.LatitudeDeg, lon: st.LongitudeDeg, tempK: *st.TemperatureK})
	}
	return out
}

// zonalMeanK approximates the annual zonal-mean 2 m temperature.
func zonalMeanK(latDeg float64) float64 {
	s := math.Sin(domain.Deg2Rad(latDeg))
	return 301.15 - 48.0*s*s
}

// buildGrid evaluates every cell. Values are laid out [lat][lon] flattened.
func buildGrid(grid RegionalGrid, samples []sample) (lat, lon, values []float64) {
	nLat, nLon := grid.Size()

	lat = make([]float64, nLat)
	for i := range lat {
		lat[i] = grid.LatMin + float64(i)*grid.Resolution
	}
	lon = make([]float64, nLon)
	for j := range lon {
		lon[j] = grid.LonMin + float64(j)*grid.Resolution
	}

	values = make([]float64, nLat*nLon)
	for i := range lat {
		for j := range lon {
			values[i*nLon+j] = cellTemperature(lat[i], lon[j], samples)
		}
	}
	return lat, lon, values
}

// cellTemperature blends nearby station anomalies (relative to the zonal
// mean) onto the zonal mean with inverse-square distance weights.
func cellTemperature(lat, lon float64, samples []sample) float64 {
	base := zonalMeanK(lat)

	var wSum, aSum float64
	for _, s := range samples {
		d := distanceKm(lat, lon, s.lat, s.lon)
		if d >= influenceKm {
			continue
		}
		if d < 1 {
			return s.tempK
		}
		// Taper so the weight reaches zero at the influence radius.
		taper := 1 - d/influenceKm
		w := taper * taper / (d * d)
		wSum += w
		aSum += w * (s.tempK - zonalMeanK(s.lat))
	}
	if wSum == 0 {
		return base
	}
	return base + aSum/wSum
}

// distanceKm is the great-circle distance on a spherical Earth.
func distanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1, p2 := domain.Deg2Rad(lat1), domain.Deg2Rad(lat2)
	dp := p2 - p1
	dl := domain.Deg2Rad(lon2 - lon1)
	a := math.Sin(dp/2)*math.Sin(dp/2) + math.Cos(p1)*math.Cos(p2)*math.Sin(dl/2)*math.Sin(dl/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

// writeNetCDF writes the grid as a t2m variable with CF-style units.
func writeNetCDF(path string, lat, lon, data []float64) (err error) {
	ds, err := netcdf.CreateFile(path, netcdf.CLOBBER|netcdf.NETCDF4)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	// Close flushes the file; its error matters once the data is written.
	defer func() {
		if cerr := ds.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	// Create dimensions.
	latDim, err := ds.AddDim("latitude", uint64(len(lat)))
	if err != nil {
		return err
	}
	lonDim, err := ds.AddDim("longitude", uint64(len(lon)))
	if err != nil {
		return err
	}

	// Create variables.
	latVar, err := ds.AddVar("latitude", netcdf.DOUBLE, []netcdf.Dim{latDim})
	if err != nil {
		return err
	}
	lonVar, err := ds.AddVar("longitude", netcdf.DOUBLE, []netcdf.Dim{lonDim})
	if err != nil {
		return err
	}
	dataVar, err := ds.AddVar("t2m", netcdf.DOUBLE, []netcdf.Dim{latDim, lonDim})
	if err != nil {
		return err
	}

	for v, units := range map[netcdf.Var]string{
		latVar:  "degrees_north",
		lonVar:  "degrees_east",
		dataVar: "K",
	} {
		if err := v.Attr("units").WriteBytes([]byte(units)); err != nil {
			return fmt.Errorf("failed to write units: %w", err)
		}
	}

	if err := ds.EndDef(); err != nil {
		return err
	}

	if err := latVar.WriteFloat64s(lat); err != nil {
		return fmt.Errorf("failed to write latitude: %w", err)
	}
	if err := lonVar.WriteFloat64s(lon); err != nil {
		return fmt.Errorf("failed to write longitude: %w", err)
	}
	if err := dataVar.WriteFloat64s(data); err != nil {
		return fmt.Errorf("failed to write t2m: %w", err)
	}

	return nil
}
