package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"goblog/internal/logger"
	"goblog/internal/model"
	"goblog/internal/repository"
)

// AuditPersistWorker drains the audit queue and writes entries to the store,
// keeping audit writes off the request path.
type AuditPersistWorker struct {
	conn      *amqp.Connection
	repo      *repository.AuditRepository
	queueName string
	log       *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewAuditPersistWorker(conn *amqp.Connection, repo *repository.AuditRepository, queueName string, log *logger.Logger) *AuditPersistWorker {
	return &AuditPersistWorker{
		conn:      conn,
		repo:      repo,
		queueName: queueName,
		log:       log,
	}
}

func (w *AuditPersistWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume audit queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				if err := w.handleDelivery(d.Body); err != nil {
					w.log.Errorf("audit worker: %v", err)
					_ = d.Nack(false, false)
					continue
				}
				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

// handleDelivery decodes and persists one queued audit entry. A non-nil
// error means the delivery must be rejected.
func (w *AuditPersistWorker) handleDelivery(body []byte) error {
	var entry model.AuditEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return fmt.Errorf("decode audit entry failed: %w", err)
	}
	if err := w.repo.Create(&entry); err != nil {
		return fmt.Errorf("persist audit entry failed: %w", err)
	}
	return nil
}

func (w *AuditPersistWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
