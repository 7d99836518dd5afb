package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// Seeder posts demo data through the public API so it exercises the same
// validation and cost derivation as the console.

type location struct {
	Lat float64
	Lng float64
}

// Towns the demo crews operate out of. Seeded requests cluster around
// these with a little jitter.
var serviceAreas = []struct {
	Name string
	Base location
}{
	{"Coimbatore", location{11.0168, 76.9558}},
	{"Erode", location{11.3410, 77.7172}},
	{"Tiruppur", location{11.1085, 77.3411}},
	{"Salem", location{11.6643, 78.1460}},
	{"Karur", location{10.9601, 78.0766}},
	{"Namakkal", location{11.2189, 78.1674}},
	{"Pollachi", location{10.6589, 77.0084}},
	{"Dindigul", location{10.3624, 77.9695}},
}

var customerFirstNames = []string{
	"Ravi", "Sam", "Kumar", "Priya", "Anand", "Meena", "Suresh", "Lakshmi",
	"Vijay", "Devi", "Karthik", "Selvi", "Mani", "Geetha", "Raja", "Kavitha",
}

var customerSurnames = []string{
	"Kumar", "Raj", "Selvam", "Murugan", "Pandian", "Subramani", "Velu", "Natarajan",
}

var vehicleNames = []string{"Rig 1", "Rig 2", "Support Truck", "Compressor Unit"}

var productNames = []string{
	"PVC Casing 7in", "PVC Casing 10in", "MS Casing 7in", "Bore Cap", "Gravel Pack",
}

var employeeNames = []string{"Ravi", "Sam", "Kumar", "Anand"}

var requestTypes = []string{"New Borewell", "Rebore", "Flushing", "Camera Scan"}

var statuses = []string{"PENDING", "IN_PROGRESS", "COMPLETED", "CANCELLED"}

var casingTypes = []string{"PVC", "MS"}

func jitterLocation(base location, meters float64) location {
	latMetersPerDeg := 111320.0
	lngMetersPerDeg := 111320.0 * math.Cos(base.Lat*math.Pi/180)
	dLat := (rand.Float64()*2 - 1) * (meters / latMetersPerDeg)
	dLng := (rand.Float64()*2 - 1) * (meters / lngMetersPerDeg)
	return location{Lat: base.Lat + dLat, Lng: base.Lng + dLng}
}

func randomCustomer() string {
	return customerFirstNames[rand.Intn(len(customerFirstNames))] + " " +
		customerSurnames[rand.Intn(len(customerSurnames))]
}

func randomPhone() string {
	return fmt.Sprintf("9%09d", rand.Intn(1000000000))
}

// randomDate picks a day within the past `days` days, formatted the way
// the API stores dates.
func randomDate(now time.Time, days int) string {
	d := now.AddDate(0, 0, -rand.Intn(days))
	return d.Format("2006-01-02")
}

// randomRequest builds a plausible drilling request. Cost fields are
// left for the server to derive.
func randomRequest(now time.Time) map[string]interface{} {
	area := serviceAreas[rand.Intn(len(serviceAreas))]
	pos := jitterLocation(area.Base, 8000)

	drillingDepth := float64(200 + rand.Intn(900))
	drillingRate := float64(60 + rand.Intn(60))
	casingDepth := drillingDepth * (0.2 + rand.Float64()*0.3)
	casingRate := float64(250 + rand.Intn(200))

	req := map[string]interface{}{
		"customer_name":  randomCustomer(),
		"phone":          randomPhone(),
		"location":       area.Name,
		"latitude":       pos.Lat,
		"longitude":      pos.Lng,
		"date":           randomDate(now, 120),
		"type":           requestTypes[rand.Intn(len(requestTypes))],
		"vehicle":        vehicleNames[rand.Intn(len(vehicleNames))],
		"status":         statuses[rand.Intn(len(statuses))],
		"drilling_depth": drillingDepth,
		"drilling_rate":  drillingRate,
		"casing_depth":   math.Round(casingDepth),
		"casing_rate":    casingRate,
		"casing_type":    casingTypes[rand.Intn(len(casingTypes))],
	}

	// Some bores take the wider 10in casing for the top section.
	if rand.Intn(3) == 0 {
		req["casing10_depth"] = float64(20 + rand.Intn(60))
		req["casing10_rate"] = float64(400 + rand.Intn(200))
	}
	return req
}

var authToken string

func authorizedPost(url string, body interface{}) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func login(apiURL, username, password string) (string, error) {
	resp, err := authorizedPost(apiURL+"/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed with status: %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if result.Token == "" {
		return "", fmt.Errorf("login response missing token")
	}
	return result.Token, nil
}

func seedReference(apiURL, path string, names []string) {
	for _, name := range names {
		resp, err := authorizedPost(apiURL+path, map[string]string{"name": name})
		if err != nil {
			log.WithError(err).WithField("name", name).Error("Failed to create reference record")
			continue
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			log.WithFields(log.Fields{"name": name, "status": resp.StatusCode}).
				Warn("Reference record not created")
			continue
		}
		log.WithFields(log.Fields{"path": path, "name": name}).Info("Created reference record")
	}
}

func seedRequests(apiURL string, count int) int {
	created := 0
	now := time.Now()
	for i := 0; i < count; i++ {
		resp, err := authorizedPost(apiURL+"/requests", randomRequest(now))
		if err != nil {
			log.WithError(err).Error("Failed to create request")
			continue
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			log.WithField("status", resp.StatusCode).Warn("Request not created")
			continue
		}
		created++
	}
	return created
}

func main() {
	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	count := 50
	if val := os.Getenv("SEED_COUNT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			count = n
		}
	}

	authToken = os.Getenv("SEED_AUTH_TOKEN")
	if authToken == "" {
		username := os.Getenv("SEED_USERNAME")
		password := os.Getenv("SEED_PASSWORD")
		if username == "" || password == "" {
			log.Fatal("Set SEED_AUTH_TOKEN, or SEED_USERNAME and SEED_PASSWORD, to authenticate")
		}
		token, err := login(apiURL, username, password)
		if err != nil {
			log.WithError(err).Fatal("Login failed")
		}
		authToken = token
	}

	log.WithFields(log.Fields{
		"api_url": apiURL,
		"count":   count,
	}).Info("Starting seed")

	seedReference(apiURL, "/vehicles", vehicleNames)
	seedReference(apiURL, "/products", productNames)
	seedReference(apiURL, "/employees", employeeNames)

	created := seedRequests(apiURL, count)
	if created == 0 {
		log.Error("No requests created. Check credentials and that the API is reachable.")
		os.Exit(1)
	}
	log.WithField("created_requests", created).Info("Seed completed")
}
