package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	s3service "boiler-quote-engine/internal/services/s3"
	"boiler-quote-engine/internal/utils"
)

// allowedPhotoTypes maps permitted photo extensions to their content type.
var allowedPhotoTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".heic": "image/heic",
}

// PresignedURLHandler handles requests for presigned property-photo upload
// URLs. Customers photograph their current boiler and flue position during
// the quote wizard; the browser uploads directly to S3.
type PresignedURLHandler struct {
	storage *s3service.Service
}

// NewPresignedURLHandler creates a new presigned URL handler.
func NewPresignedURLHandler() (*PresignedURLHandler, error) {
	storage, err := s3service.NewService(context.Background())
	if err != nil {
		return nil, err
	}

	return &PresignedURLHandler{storage: storage}, nil
}

// PresignedURLResponse is the response structure for presigned URL requests.
type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	S3Key     string `json:"s3Key"`
	ExpiresIn int    `json:"expiresIn"`
}

// Handle processes the API Gateway request for generating presigned URLs.
func (h *PresignedURLHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := utils.GetLogger()

	// CORS headers
	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,Authorization",
		"Access-Control-Allow-Methods": "GET,OPTIONS",
		"Content-Type":                 "application/json",
	}

	if request.HTTPMethod == "OPTIONS" {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    headers,
		}, nil
	}

	filename := request.QueryStringParameters["filename"]
	if filename == "" {
		filename = "photo_" + uuid.New().String()[:8] + ".jpg"
	}

	contentType, ok := photoContentType(filename)
	if !ok {
		return errorResponse(headers, http.StatusBadRequest, "Only JPEG, PNG, WebP or HEIC photos are allowed")
	}

	// Partition keys by date so surveyor review works day by day.
	timestamp := time.Now().UTC().Format("2006/01/02")
	s3Key := "photos/" + timestamp + "/" + uuid.New().String() + "_" + sanitizeFilename(filename)

	result, err := h.storage.GeneratePresignedUploadURL(ctx, s3Key, contentType, 60)
	if err != nil {
		logger.Error("Failed to generate presigned URL", zap.Error(err))
		return errorResponse(headers, http.StatusInternalServerError, "Failed to generate upload URL")
	}

	response := PresignedURLResponse{
		UploadURL: result.URL,
		S3Key:     result.Key,
		ExpiresIn: 3600,
	}

	body, _ := json.Marshal(response)

	logger.Info("Generated presigned URL", zap.String("s3Key", s3Key))

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    headers,
		Body:       string(body),
	}, nil
}

// photoContentType resolves the content type for a photo filename.
func photoContentType(filename string) (string, bool) {
	dot := strings.LastIndex(filename, ".")
	if dot < 0 {
		return "", false
	}
	contentType, ok := allowedPhotoTypes[strings.ToLower(filename[dot:])]
	return contentType, ok
}

// sanitizeFilename removes unsafe characters from filename. Consecutive dots
// are collapsed so ".." traversal sequences cannot survive into the object
// key.
func sanitizeFilename(filename string) string {
	safe := ""
	var prev rune
	for _, r := range filename {
		switch {
		case r == '.':
			if prev != '.' {
				safe += "."
			}
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_':
			safe += string(r)
		}
		prev = r
	}
	if len(safe) > 100 {
		safe = safe[:100]
	}
	return safe
}

// errorResponse creates an error response.
func errorResponse(headers map[string]string, statusCode int, message string) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(map[string]string{
		"error":   http.StatusText(statusCode),
		"message": message,
	})

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(body),
	}, nil
}
