// Package main provides a local HTTP server for development and testing.
// It exposes the quote calculation API the frontend wizard calls, plus the
// catalog and stored-quote endpoints used by the admin dashboard.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"boiler-quote-engine/internal/config"
	"boiler-quote-engine/internal/models"
	"boiler-quote-engine/internal/services/database"
	"boiler-quote-engine/internal/services/engine"
	sesservice "boiler-quote-engine/internal/services/ses"
	"boiler-quote-engine/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/cors"
)

// Server holds all dependencies
type Server struct {
	db        *database.DB
	catalog   *database.CatalogStore
	quoteRepo *database.QuoteRepository
	engine    *engine.Service
	mailer    *sesservice.Service
	config    *config.Config
}

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AcceptQuoteRequest is the payload for accepting a quote.
type AcceptQuoteRequest struct {
	CustomerName  string                 `json:"customer_name"`
	CustomerEmail string                 `json:"customer_email"`
	CustomerPhone string                 `json:"customer_phone"`
	Profile       models.PropertyProfile `json:"profile"`
	SelectedTier  models.QuoteTier       `json:"selected_tier"`
	TotalPrice    int64                  `json:"total_price"`
	BoilerType    models.BoilerTopology  `json:"boiler_type"`
}

// AcceptQuoteResponse confirms a stored quote.
type AcceptQuoteResponse struct {
	ID       int64  `json:"id"`
	QuoteRef string `json:"quote_ref"`
}

// PresignedURLRequest represents the request for presigned URL
type PresignedURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

// PresignedURLResponse contains the presigned URL data
type PresignedURLResponse struct {
	URL     string `json:"url"`
	Key     string `json:"key"`
	Expires int    `json:"expires"`
}

func main() {
	// Initialize logger first
	if err := utils.InitLogger(getEnvOrDefault("LOG_LEVEL", "info")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load config from environment: %v", err)
		cfg = &config.Config{}
	}

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		log.Printf("Warning: Could not connect to database: %v", err)
		log.Println("Server will run with baseline pricing only")
	}

	server := &Server{
		db:     db,
		config: cfg,
	}

	if db != nil {
		server.catalog = database.NewCatalogStore(db)
		server.quoteRepo = database.NewQuoteRepository(db)
		server.engine = engine.NewService(server.catalog)
	} else {
		server.engine = engine.NewService(engine.UnavailableCatalog{})
	}

	if mailer, err := sesservice.NewService(context.Background()); err != nil {
		log.Printf("Warning: Email notifications disabled: %v", err)
	} else {
		server.mailer = mailer
	}

	// Setup routes
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", server.healthHandler)
	mux.HandleFunc("/api/health", server.healthHandler)

	// Quote calculation
	mux.HandleFunc("/api/calculate-intelligent-quote", server.calculateQuoteHandler)

	// Accepted quotes (list + create)
	mux.HandleFunc("/api/quotes", server.quotesHandler)

	// Pricing catalog (admin dashboard)
	mux.HandleFunc("/api/boilers", server.boilersHandler)
	mux.HandleFunc("/api/labour-costs", server.labourCostsHandler)
	mux.HandleFunc("/api/sundries", server.sundriesHandler)
	mux.HandleFunc("/api/locations", server.locationsHandler)

	// Presigned URL endpoint (for property photo uploads)
	mux.HandleFunc("/api/presigned-url", server.presignedURLHandler)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	port := getEnvOrDefault("PORT", "8080")
	addr := fmt.Sprintf("0.0.0.0:%s", port)

	log.Printf("Boiler Quote Engine API Server")
	log.Printf("Listening on http://localhost:%s", port)
	log.Printf("Health: http://localhost:%s/health", port)
	log.Println("")

	log.Printf("Starting HTTP server on %s...", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	dbStatus := "disconnected"
	if s.db != nil {
		if err := s.db.HealthCheck(r.Context()); err == nil {
			dbStatus = "connected"
		}
	}

	response := Response{
		Success: true,
		Message: "Boiler Quote Engine API is running",
		Data: map[string]interface{}{
			"status":    "healthy",
			"database":  dbStatus,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   "1.0.0",
		},
	}

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) calculateQuoteHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var profile models.PropertyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := s.engine.CalculateQuote(r.Context(), &profile)
	if err != nil {
		log.Printf("Quote calculation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to calculate quote",
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

func (s *Server) quotesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listQuotes(w, r)
	case http.MethodPost:
		s.acceptQuote(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listQuotes(w http.ResponseWriter, r *http.Request) {
	if s.quoteRepo == nil {
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Data:    []models.QuoteRecord{},
		})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	quotes, err := s.quoteRepo.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("Error fetching quotes: %v", err)
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch quotes",
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    quotes,
	})
}

func (s *Server) acceptQuote(w http.ResponseWriter, r *http.Request) {
	if s.quoteRepo == nil {
		writeJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   "Database not available",
		})
		return
	}

	var req AcceptQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	record := &models.QuoteRecordCreate{
		QuoteRef:      newQuoteRef(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Profile:       req.Profile,
		SelectedTier:  req.SelectedTier,
		TotalPrice:    req.TotalPrice,
		BoilerType:    req.BoilerType,
	}

	id, err := s.quoteRepo.Create(r.Context(), record)
	if err != nil {
		log.Printf("Error storing quote: %v", err)
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if s.mailer != nil && record.CustomerEmail != "" {
		go s.emailQuoteSummary(record)
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quote accepted",
		Data: AcceptQuoteResponse{
			ID:       id,
			QuoteRef: record.QuoteRef,
		},
	})
}

// emailQuoteSummary re-runs the engine for the stored profile and sends the
// customer the three-tier summary. Best effort; failures are only logged.
func (s *Server) emailQuoteSummary(record *models.QuoteRecordCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := s.engine.CalculateQuote(ctx, &record.Profile)
	if err != nil {
		log.Printf("Error recalculating quote for email %s: %v", record.QuoteRef, err)
		return
	}

	params := sesservice.BuildQuoteEmailParams(record.CustomerName, record.CustomerEmail, record.QuoteRef, result)
	if _, err := s.mailer.SendQuoteSummary(ctx, params); err != nil {
		log.Printf("Error sending quote summary %s: %v", record.QuoteRef, err)
	}
}

func (s *Server) boilersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.catalog == nil {
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Data:    []models.BoilerOffering{},
		})
		return
	}

	boilers, err := s.catalog.GetBoilers(r.Context())
	if err != nil {
		log.Printf("Error fetching boilers: %v", err)
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch boilers",
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    boilers,
	})
}

func (s *Server) labourCostsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.catalog == nil {
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Data:    []models.LabourCost{},
		})
		return
	}

	costs, err := s.catalog.GetLabourCosts(r.Context())
	if err != nil {
		log.Printf("Error fetching labour costs: %v", err)
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch labour costs",
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    costs,
	})
}

func (s *Server) sundriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.catalog == nil {
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Data:    []models.SundryCost{},
		})
		return
	}

	sundries, err := s.catalog.GetSundries(r.Context())
	if err != nil {
		log.Printf("Error fetching sundries: %v", err)
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch sundries",
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    sundries,
	})
}

func (s *Server) locationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.catalog == nil {
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Data:    []models.LocationMultiplier{},
		})
		return
	}

	// Optional ?postcode= lookup for the wizard's live multiplier preview.
	if postcode := r.URL.Query().Get("postcode"); postcode != "" {
		location, err := s.catalog.GetLocationByPostcode(r.Context(), postcode)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, Response{
				Success: false,
				Error:   "Failed to look up postcode",
			})
			return
		}
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Data:    location,
		})
		return
	}

	locations, err := s.catalog.GetLocations(r.Context())
	if err != nil {
		log.Printf("Error fetching locations: %v", err)
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch locations",
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    locations,
	})
}

func (s *Server) presignedURLHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PresignedURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	// For local development, return a mock URL; the deployed stack serves
	// real S3 presigned URLs from the lambda handler.
	key := fmt.Sprintf("photos/%d_%s", time.Now().Unix(), req.Filename)

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data: PresignedURLResponse{
			URL:     fmt.Sprintf("http://localhost:%s/api/upload?key=%s", getEnvOrDefault("PORT", "8080"), key),
			Key:     key,
			Expires: 3600,
		},
	})
}

// newQuoteRef generates a short customer-facing quote reference.
func newQuoteRef() string {
	return "BQ-" + strings.ToUpper(uuid.New().String()[:8])
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
