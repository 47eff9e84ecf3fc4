package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/lumbunggroup/lumbung-backend/config"
	"github.com/lumbunggroup/lumbung-backend/logger"
	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailDeliveryService hands contact submissions to the company inbox
// through Resend. It implements contact.Deliverer.
type EmailDeliveryService struct {
	config    *config.EmailConfig
	recipient string
	schema    *contact.FormSchema
	client    *resend.Client
	metrics   *EmailMetrics
	tmpl      *template.Template
	log       *zap.SugaredLogger
}

func NewEmailDeliveryService(cfg *config.EmailConfig, recipient string, schema *contact.FormSchema) *EmailDeliveryService {
	return NewEmailDeliveryServiceWithRegistry(cfg, recipient, schema, prometheus.DefaultRegisterer)
}

func NewEmailDeliveryServiceWithRegistry(cfg *config.EmailConfig, recipient string, schema *contact.FormSchema, reg prometheus.Registerer) *EmailDeliveryService {
	return newEmailDeliveryService(cfg, recipient, schema, reg, logger.GetLogger())
}

func newEmailDeliveryService(cfg *config.EmailConfig, recipient string, schema *contact.FormSchema, reg prometheus.Registerer, log *zap.SugaredLogger) *EmailDeliveryService {
	log.Infow("Initializing email delivery",
		"from", cfg.FromAddress,
		"recipient", logger.MaskEmail(recipient),
		"apikey", logger.MaskSensitiveString(cfg.ResendAPIKey, 3, 3))

	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lumbung_contact_email_send_duration_seconds",
			Help:    "Time taken to send contact emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lumbung_contact_email_errors_total",
			Help: "Total number of contact email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lumbung_contact_emails_sent_total",
			Help: "Total number of contact emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailDeliveryService{
		config:    cfg,
		recipient: recipient,
		schema:    schema,
		client:    resend.NewClient(cfg.ResendAPIKey),
		metrics:   metrics,
		tmpl:      template.Must(template.New("contact").Parse(contactEmailTemplate)),
		log:       log,
	}
}

type contactEmailField struct {
	Label string
	Value string
}

type contactEmailData struct {
	Subject  string
	Category string
	Fields   []contactEmailField
	Message  string
}

// Deliver sends one submission. values are expected to have passed
// validation and are sent as written; the HTML rendition escapes them.
func (s *EmailDeliveryService) Deliver(ctx context.Context, values contact.FormValues) error {
	startTime := time.Now()
	log := s.log
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	data := s.buildEmailData(values)

	var htmlContent bytes.Buffer
	if err := s.tmpl.Execute(&htmlContent, data); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to execute contact email template", "error", err)
		return fmt.Errorf("failed to execute template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{s.recipient},
		ReplyTo: plain(values.Get(contact.FieldEmail)),
		Subject: data.Subject,
		Html:    htmlContent.String(),
		Text:    plainTextBody(data),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send contact email",
			"error", err,
			"reply_to", logger.MaskEmail(params.ReplyTo),
			"category", values.Get(contact.FieldCategory))
		return fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Contact email sent",
		"id", sent.Id,
		"reply_to", logger.MaskEmail(params.ReplyTo),
		"category", values.Get(contact.FieldCategory))

	return nil
}

func (s *EmailDeliveryService) buildEmailData(values contact.FormValues) contactEmailData {
	category := plain(values.Get(contact.FieldCategory))
	if field, ok := s.schema.Field(contact.FieldCategory); ok {
		category = field.OptionLabel(category)
	}

	subject := strings.Join(strings.Fields(plain(values.Get(contact.FieldSubject))), " ")
	data := contactEmailData{
		Subject:  fmt.Sprintf("[Contact] %s - %s", category, subject),
		Category: category,
		Message:  plain(values.Get(contact.FieldMessage)),
	}

	for _, field := range s.schema.Fields() {
		if field.Key == contact.FieldMessage {
			continue
		}
		value := plain(values.Get(field.Key))
		if field.Key == contact.FieldCategory {
			value = category
		}
		if value == "" {
			value = "-"
		}
		data.Fields = append(data.Fields, contactEmailField{Label: field.Label, Value: value})
	}
	return data
}

func plain(value string) string {
	return strings.TrimSpace(value)
}

func plainTextBody(data contactEmailData) string {
	var b strings.Builder
	for _, f := range data.Fields {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}
	b.WriteString("\n")
	b.WriteString(data.Message)
	b.WriteString("\n")
	return b.String()
}

const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Subject}}</title>
    <style>
        body {
            font-family: 'sans-serif';
            background-color: #f7f7f7;
            color: #333333;
            margin: 0;
            padding: 20px;
        }
        .container {
            max-width: 600px;
            margin: 20px auto;
            background-color: #ffffff;
            padding: 30px;
            border-radius: 12px;
        }
        h1 {
            color: #1B5E20;
            font-size: 22px;
        }
        th {
            text-align: left;
            padding-right: 16px;
            color: #777777;
        }
        .message {
            margin-top: 24px;
            white-space: pre-wrap;
            line-height: 1.6;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>New {{.Category}} message</h1>
        <table>
            {{range .Fields}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
            {{end}}
        </table>
        <div class="message">{{.Message}}</div>
    </div>
</body>
</html>`
