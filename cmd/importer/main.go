package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"autoservis_spz/internal/domain/entities"
	"autoservis_spz/internal/infrastructure/spreadsheet"

	_ "github.com/joho/godotenv/autoload"
)

// Importer for the legacy zakazky.xlsm workbook. It reads both sheets and
// posts them to the running API's admin import routes in chunks, then
// triggers the plate backfill so imported orders get linked to vehicles.
//
// Chunking happens here on purpose: the import operations themselves take
// whatever batch they are given, and a whole workbook in one call would
// push against the store's request limits.

const chunkSize = 100

func main() {
	var (
		file     = flag.String("file", "zakazky.xlsm", "path to the legacy workbook")
		apiURL   = flag.String("api", "http://localhost:8080/v1", "base URL of the running API")
		backfill = flag.Bool("backfill", true, "run the vehicle-link backfill after importing")
	)
	flag.Parse()

	wb, err := spreadsheet.Open(*file)
	if err != nil {
		log.Fatalf("failed to open workbook %s: %v", *file, err)
	}
	defer wb.Close()

	vehicles, err := wb.Vehicles()
	if err != nil {
		log.Fatalf("failed to read vehicle sheet: %v", err)
	}
	orders, err := wb.Orders()
	if err != nil {
		log.Fatalf("failed to read order sheet: %v", err)
	}
	log.Printf("workbook loaded: %d vehicles, %d orders", len(vehicles), len(orders))

	client := &http.Client{Timeout: 60 * time.Second}

	for start := 0; start < len(vehicles); start += chunkSize {
		chunk := vehicles[start:min(start+chunkSize, len(vehicles))]
		var res struct {
			Imported int `json:"imported"`
			Updated  int `json:"updated"`
			Errors   int `json:"errors"`
		}
		if err := post(client, *apiURL+"/admin/import/vehicles", map[string]any{"vehicles": chunk}, &res); err != nil {
			log.Fatalf("vehicle chunk %d failed: %v", start/chunkSize, err)
		}
		log.Printf("vehicles %d-%d: %d imported, %d updated, %d errors", start, start+len(chunk), res.Imported, res.Updated, res.Errors)
	}

	for start := 0; start < len(orders); start += chunkSize {
		chunk := orders[start:min(start+chunkSize, len(orders))]
		var res struct {
			Count int `json:"count"`
		}
		if err := post(client, *apiURL+"/admin/import/orders", map[string]any{"orders": toImportPayload(chunk)}, &res); err != nil {
			log.Fatalf("order chunk %d failed: %v", start/chunkSize, err)
		}
		log.Printf("orders %d-%d: %d inserted", start, start+len(chunk), res.Count)
	}

	if *backfill {
		var res struct {
			Updated int `json:"updated"`
			Skipped int `json:"skipped"`
			Total   int `json:"total"`
		}
		if err := post(client, *apiURL+"/admin/backfill/vehicle-links", map[string]any{}, &res); err != nil {
			log.Fatalf("backfill failed: %v", err)
		}
		log.Printf("backfill: %d linked, %d skipped, %d total", res.Updated, res.Skipped, res.Total)
	}
}

func post(client *http.Client, url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := os.Getenv("IMPORTER_BEARER_TOKEN"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s: %s", resp.Status, msg)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// toImportPayload strips the entity-only fields (id, vehicleId) so the
// wire payload matches the import contract: legacy rows never carry a
// vehicle link, backfill adds it later.
func toImportPayload(orders []entities.Order) []map[string]any {
	out := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		o.ID = ""
		o.VehicleID = ""
		raw, err := json.Marshal(o)
		if err != nil {
			log.Fatalf("failed to encode order %d: %v", o.OrderNumber, err)
		}
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			log.Fatalf("failed to decode order %d: %v", o.OrderNumber, err)
		}
		delete(m, "id")
		out = append(out, m)
	}
	return out
}
