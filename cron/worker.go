package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"shutterdesk/config"
	"shutterdesk/models"
	"shutterdesk/services/tasks"
	"shutterdesk/utils"

	"github.com/hibiken/asynq"
)

// InitEmailWorker runs the async email worker in background.
func InitEmailWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendClientEmail, handleClientEmailTask)

	go func() {
		log.Println("[EmailWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[EmailWorker] failed to start worker: %v", err)
		}
	}()
}

func handleClientEmailTask(ctx context.Context, task *asynq.Task) error {
	var p models.EmailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[EmailWorker] invalid payload: %v", err)
		return err
	}

	body := p.Body
	if p.Document != nil {
		body = renderDocumentText(p.Document, p.Body)
	}

	if err := utils.SendMail(p.To, p.Subject, body); err != nil {
		log.Printf("[EmailWorker] failed to send email for session %s: %v", p.SessionID, err)
		return err
	}
	log.Printf("[EmailWorker] sent %q to %s (session %s)", p.Subject, p.To, p.SessionID)
	return nil
}

// renderDocumentText flattens a generated document into a plain-text email
// body. Printable layout belongs to the rendering surface, not here.
func renderDocumentText(doc *models.Document, intro string) string {
	var b strings.Builder
	if intro != "" {
		b.WriteString(intro)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "%s\n\n", doc.Title)
	fmt.Fprintf(&b, "Client: %s (%s)\n", doc.ClientName, doc.ClientEmail)
	fmt.Fprintf(&b, "Session: %s on %s at %s, %s\n\n", doc.SessionType, doc.Date, doc.Time, doc.Location)
	for _, item := range doc.LineItems {
		fmt.Fprintf(&b, "  %d x %-30s $%.2f\n", item.Quantity, item.Description, item.LineTotal)
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f\n", doc.Total)
	if doc.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", doc.Notes)
	}
	return b.String()
}
