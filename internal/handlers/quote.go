// Package handlers provides API Gateway handlers for the boiler quote engine.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	appConfig "boiler-quote-engine/internal/config"
	"boiler-quote-engine/internal/models"
	"boiler-quote-engine/internal/services/database"
	"boiler-quote-engine/internal/services/engine"
	"boiler-quote-engine/internal/utils"
)

// QuoteHandler handles intelligent quote calculation requests.
type QuoteHandler struct {
	db     *database.DB
	engine *engine.Service
}

// NewQuoteHandler creates a new quote handler. When the database is
// unreachable the handler still works; the engine degrades to baseline
// pricing.
func NewQuoteHandler() (*QuoteHandler, error) {
	cfg, err := appConfig.Load()
	if err != nil {
		return nil, err
	}

	h := &QuoteHandler{}

	db, err := database.New(cfg)
	if err != nil {
		utils.GetLogger().Warn("Database unavailable, quotes will use baseline pricing", zap.Error(err))
		h.engine = engine.NewService(engine.UnavailableCatalog{})
		return h, nil
	}

	h.db = db
	h.engine = engine.NewService(database.NewCatalogStore(db))
	return h, nil
}

// Handle processes a quote calculation request.
func (h *QuoteHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := utils.GetLogger()

	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,Authorization",
		"Access-Control-Allow-Methods": "POST,OPTIONS",
		"Content-Type":                 "application/json",
	}

	if request.HTTPMethod == "OPTIONS" {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    headers,
		}, nil
	}

	var profile models.PropertyProfile
	if err := json.Unmarshal([]byte(request.Body), &profile); err != nil {
		return errorResponse(headers, http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.engine.CalculateQuote(ctx, &profile)
	if err != nil {
		logger.Error("Quote calculation failed", zap.Error(err))
		return errorResponse(headers, http.StatusInternalServerError, "Failed to calculate quote")
	}

	body, _ := json.Marshal(result)

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    headers,
		Body:       string(body),
	}, nil
}

// Close cleans up resources.
func (h *QuoteHandler) Close() {
	if h.db != nil {
		h.db.Close()
	}
}
