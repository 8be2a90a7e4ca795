// Package stationstore caches resolved ClimateStation records in S3 so a
// calculation run does not need to re-parse an EPW file or re-fetch a
// station on every invocation. It is an external collaborator: the
// calculation core never imports this package directly.
package stationstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/e10lab/din18599/internal/logging"
	"github.com/e10lab/din18599/internal/model"
)

// stationDoc is the cache's on-disk/on-object JSON shape, matching
// stationio's pre-resolved station format.
type stationDoc struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	LatitudeDeg  float64 `json:"latitude_deg"`
	LongitudeDeg float64 `json:"longitude_deg"`
	ElevationM   float64 `json:"elevation_m"`
	Monthly      []struct {
		TeC     float64 `json:"te_c"`
		GhKWhM2 float64 `json:"gh_kwh_m2"`
	} `json:"monthly"`
}

// Store is an S3-backed cache of resolved climate stations, keyed by
// object key (typically the station id plus a ".json" suffix).
type Store struct {
	bucket string
	client *s3.Client
}

// New builds a Store against the given bucket/region, loading AWS
// credentials the standard way (environment or ~/.aws/credentials).
func New(ctx context.Context, bucket, region string) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &Store{bucket: bucket, client: s3.NewFromConfig(cfg)}, nil
}

// Get fetches and decodes a cached station. A missing object is reported
// as a plain wrapped error; the CLI commands that call Get return that
// error as is and do not re-parse a source file.
func (s *Store) Get(ctx context.Context, key string) (model.ClimateStation, error) {
	logging.Info("stationstore: fetching %q from bucket %q", key, s.bucket)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return model.ClimateStation{}, fmt.Errorf("fetching station cache object %q: %w", key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return model.ClimateStation{}, fmt.Errorf("reading station cache object %q: %w", key, err)
	}

	station, err := decodeStationDoc(body)
	if err != nil {
		return model.ClimateStation{}, fmt.Errorf("decoding station cache object %q: %w", key, err)
	}
	return station, nil
}

// decodeStationDoc parses the cache's JSON shape into a ClimateStation.
func decodeStationDoc(body []byte) (model.ClimateStation, error) {
	var doc stationDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return model.ClimateStation{}, err
	}
	if len(doc.Monthly) != 12 {
		return model.ClimateStation{}, fmt.Errorf("expected 12 monthly records, got %d", len(doc.Monthly))
	}

	station := model.ClimateStation{
		ID: doc.ID, Name: doc.Name,
		LatitudeDeg: doc.LatitudeDeg, LongitudeDeg: doc.LongitudeDeg, ElevationM: doc.ElevationM,
	}
	for i, m := range doc.Monthly {
		station.Monthly[i] = model.MonthlyClimate{TeC: m.TeC, GhKWhM2: m.GhKWhM2}
	}
	return station, nil
}

// encodeStationDoc renders a ClimateStation into the cache's JSON shape.
func encodeStationDoc(station model.ClimateStation) ([]byte, error) {
	doc := stationDoc{
		ID: station.ID, Name: station.Name,
		LatitudeDeg: station.LatitudeDeg, LongitudeDeg: station.LongitudeDeg, ElevationM: station.ElevationM,
	}
	for _, m := range station.Monthly {
		doc.Monthly = append(doc.Monthly, struct {
			TeC     float64 `json:"te_c"`
			GhKWhM2 float64 `json:"gh_kwh_m2"`
		}{TeC: m.TeC, GhKWhM2: m.GhKWhM2})
	}
	return json.Marshal(doc)
}

// Put encodes and uploads a station record, so a later run's Get can skip
// re-parsing whatever source file produced it.
func (s *Store) Put(ctx context.Context, key string, station model.ClimateStation) error {
	logging.Info("stationstore: writing %q to bucket %q", key, s.bucket)

	body, err := encodeStationDoc(station)
	if err != nil {
		return fmt.Errorf("encoding station cache object %q: %w", key, err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		return fmt.Errorf("writing station cache object %q: %w", key, err)
	}
	return nil
}
