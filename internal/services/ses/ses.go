// Package ses provides quote email delivery via AWS SES.
package ses

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"

	appConfig "boiler-quote-engine/internal/config"
	"boiler-quote-engine/internal/models"
	"boiler-quote-engine/internal/utils"
)

// Service handles SES email operations
type Service struct {
	client    *ses.Client
	fromEmail string
}

// EmailParams represents parameters for sending an email
type EmailParams struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
	ReplyTo  string
}

// QuoteEmailParams contains data for the quote summary email.
type QuoteEmailParams struct {
	CustomerName  string
	CustomerEmail string
	QuoteRef      string
	Options       []QuoteOptionInfo
	TotalPounds   string
	ValidDays     int
}

// QuoteOptionInfo is one tier as rendered in the email.
type QuoteOptionInfo struct {
	Tier        string
	Boiler      string
	Warranty    string
	PricePounds string
	Recommended bool
}

// SendEmailResult contains the result of sending an email
type SendEmailResult struct {
	MessageID string
	SentAt    time.Time
}

// NewService creates a new SES service
func NewService(ctx context.Context) (*Service, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	appCfg, err := appConfig.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load app config: %w", err)
	}

	client := ses.NewFromConfig(cfg)

	return &Service{
		client:    client,
		fromEmail: appCfg.SESSenderEmail,
	}, nil
}

// SendEmail sends a basic email
func (s *Service) SendEmail(ctx context.Context, params EmailParams) (*SendEmailResult, error) {
	input := &ses.SendEmailInput{
		Source: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{params.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(params.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}

	if params.HTMLBody != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(params.HTMLBody),
			Charset: aws.String("UTF-8"),
		}
	}

	if params.TextBody != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(params.TextBody),
			Charset: aws.String("UTF-8"),
		}
	}

	if params.ReplyTo != "" {
		input.ReplyToAddresses = []string{params.ReplyTo}
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		utils.Logger.Error("Failed to send email",
			zap.String("to", params.To),
			zap.String("subject", params.Subject),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	utils.Logger.Info("Email sent successfully",
		zap.String("to", params.To),
		zap.String("subject", params.Subject),
		zap.String("messageId", *result.MessageId),
	)

	return &SendEmailResult{
		MessageID: *result.MessageId,
		SentAt:    time.Now(),
	}, nil
}

// SendQuoteSummary sends the customer their tiered boiler quote.
func (s *Service) SendQuoteSummary(ctx context.Context, params QuoteEmailParams) (*SendEmailResult, error) {
	htmlBody, err := s.renderQuoteSummaryHTML(params)
	if err != nil {
		return nil, fmt.Errorf("failed to render email template: %w", err)
	}

	textBody := s.renderQuoteSummaryText(params)

	subject := fmt.Sprintf("Your boiler installation quote %s", params.QuoteRef)

	return s.SendEmail(ctx, EmailParams{
		To:       params.CustomerEmail,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	})
}

// BuildQuoteEmailParams creates email params from a calculated quote.
func BuildQuoteEmailParams(customerName, customerEmail, quoteRef string, result *models.QuoteResult) QuoteEmailParams {
	options := make([]QuoteOptionInfo, 0, len(result.Quotes))
	for _, q := range result.Quotes {
		options = append(options, QuoteOptionInfo{
			Tier:        string(q.Tier),
			Boiler:      fmt.Sprintf("%s %s", q.BoilerMake, q.BoilerModel),
			Warranty:    q.Warranty,
			PricePounds: FormatPence(q.BasePrice),
			Recommended: q.IsRecommended,
		})
	}

	return QuoteEmailParams{
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		QuoteRef:      quoteRef,
		Options:       options,
		TotalPounds:   FormatPence(result.PriceBreakdown.TotalPrice),
		ValidDays:     30,
	}
}

// FormatPence renders an integer pence amount as pounds, e.g. 358800 ->
// "£3,588.00".
func FormatPence(pence int64) string {
	pounds := pence / 100
	remainder := pence % 100

	// Group thousands.
	digits := fmt.Sprintf("%d", pounds)
	var grouped bytes.Buffer
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}

	return fmt.Sprintf("£%s.%02d", grouped.String(), remainder)
}

// renderQuoteSummaryHTML renders the HTML email template
func (s *Service) renderQuoteSummaryHTML(params QuoteEmailParams) (string, error) {
	tmpl := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #1e6fd9 0%, #123d78 100%); color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
        .quote-card { background: white; border-radius: 8px; padding: 20px; margin: 15px 0; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .quote-card h3 { margin: 0 0 10px 0; color: #1e6fd9; }
        .quote-card .boiler { color: #666; font-size: 14px; margin-bottom: 10px; }
        .quote-card .price { font-size: 22px; font-weight: bold; color: #333; }
        .quote-card .warranty { font-size: 13px; color: #999; }
        .recommended-badge { display: inline-block; background: #28a745; color: white; padding: 5px 12px; border-radius: 20px; font-weight: bold; font-size: 12px; }
        .footer { text-align: center; margin-top: 30px; color: #999; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Your Boiler Installation Quote</h1>
        <p>Hi {{.CustomerName}}, your quote reference is {{.QuoteRef}}</p>
    </div>
    <div class="content">
        <p>Based on your property details, here are your fixed-price installation options. All prices include VAT, labour and materials.</p>

        {{range .Options}}
        <div class="quote-card">
            <h3>{{.Tier}}{{if .Recommended}} <span class="recommended-badge">Recommended</span>{{end}}</h3>
            <p class="boiler">{{.Boiler}}</p>
            <p class="price">{{.PricePounds}}</p>
            <p class="warranty">{{.Warranty}} warranty</p>
        </div>
        {{end}}

        <p>This quote is valid for {{.ValidDays}} days. Reply to this email to book your installation or ask any questions.</p>
    </div>
    <div class="footer">
        <p>All installations are carried out by Gas Safe registered engineers.</p>
        <p>You received this because you requested a boiler quote.</p>
    </div>
</body>
</html>`

	t, err := template.New("quote_summary").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, params); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// renderQuoteSummaryText renders plain text version
func (s *Service) renderQuoteSummaryText(params QuoteEmailParams) string {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Hi %s,\n\n", params.CustomerName))
	buf.WriteString(fmt.Sprintf("Your boiler installation quote (ref %s) is ready.\n\n", params.QuoteRef))

	for _, opt := range params.Options {
		marker := ""
		if opt.Recommended {
			marker = " (Recommended)"
		}
		buf.WriteString(fmt.Sprintf("%s%s\n", opt.Tier, marker))
		buf.WriteString(fmt.Sprintf("  %s\n", opt.Boiler))
		buf.WriteString(fmt.Sprintf("  %s inc. VAT, %s warranty\n\n", opt.PricePounds, opt.Warranty))
	}

	buf.WriteString(fmt.Sprintf("This quote is valid for %d days. Reply to this email to book your installation.\n", params.ValidDays))

	return buf.String()
}
