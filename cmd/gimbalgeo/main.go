// Command gimbalgeo replays a raw gimbal telemetry packet log, resolves each
// record, and reports where the camera was looking: image position, image
// velocity, and (optionally) the true terrain intersection. The geolocated
// track is written out as GeoJSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"gimbalgeo/pkg/config"
	"gimbalgeo/pkg/geolocate"
	"gimbalgeo/pkg/logging"
	"gimbalgeo/pkg/telemetry"
	"gimbalgeo/pkg/terrain"
	"gimbalgeo/pkg/version"
)

var (
	configPath = flag.String("config", "gimbalgeo.yaml", "Path to a YAML config file")
	initConfig = flag.Bool("init-config", false, "Generate default config file and exit")
)

func main() {
	flag.Parse()

	if *initConfig {
		if err := config.GenerateDefault(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config file generated:", *configPath)
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "gimbalgeo failed: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("gimbalgeo starting", "version", version.Version, "input", cfg.Input.Path)

	elev := elevationModel(&cfg.Terrain)

	in, err := os.Open(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("failed to open packet log: %w", err)
	}
	defer in.Close()

	fc, err := replay(in, cfg, elev)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal GeoJSON: %w", err)
	}
	if err := os.WriteFile(cfg.Output.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write track: %w", err)
	}

	slog.Info("Track written", "path", cfg.Output.Path, "features", len(fc.Features))
	return nil
}

// replay decodes every packet in the stream and collects the geolocated
// track. Undecodable packets are counted and skipped.
func replay(in io.Reader, cfg *config.Config, elev geolocate.ElevationFunc) (*geojson.FeatureCollection, error) {
	var (
		buf      geolocate.Buffer
		fc       = geojson.NewFeatureCollection()
		reader   = telemetry.NewReader(in)
		skipped  int
		minDelta = time.Duration(cfg.Rate.MinInterval)
	)

	for {
		pkt, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		geo, ok := geolocate.Decode(pkt)
		if !ok {
			skipped++
			continue
		}
		buf.Push(geo)

		f := geojson.NewFeature(orb.Point{deg(geo.ImagePosLLA.Lon), deg(geo.ImagePosLLA.Lat)})
		f.Properties["time"] = geo.Time.Format(time.RFC3339Nano)
		f.Properties["altitude_m"] = geo.ImagePosLLA.Alt
		f.Properties["slant_range_m"] = geo.SlantRange

		if vel, ok := geolocate.ImageVelocity(&buf, geo.SlantRange, minDelta); ok {
			f.Properties["image_speed_mps"] = math.Hypot(vel.X, vel.Y)
		}

		if elev != nil {
			if pos, rng, ok := geolocate.TerrainIntersection(geo, elev); ok {
				f.Properties["terrain_lat_deg"] = deg(pos.Lat)
				f.Properties["terrain_lon_deg"] = deg(pos.Lon)
				f.Properties["terrain_alt_m"] = pos.Alt
				f.Properties["terrain_range_m"] = rng
			} else {
				slog.Debug("No terrain intersection", "time", geo.Time)
			}
		}

		fc.Append(f)
	}

	if skipped > 0 {
		slog.Warn("Skipped undecodable packets", "count", skipped)
	}
	return fc, nil
}

func elevationModel(cfg *config.TerrainConfig) geolocate.ElevationFunc {
	switch cfg.Model {
	case "flat":
		return terrain.Flat(cfg.FlatHeight)
	default:
		return nil
	}
}

func deg(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}
