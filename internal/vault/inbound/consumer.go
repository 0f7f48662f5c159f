package inbound

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/otpvault/internal/pkg/instrument"
	"github.com/shandysiswandi/otpvault/internal/pkg/messaging"
	"github.com/shandysiswandi/otpvault/internal/pkg/pacing"
)

// ConsumerConfig drives the chat command consumer.
type ConsumerConfig struct {
	// Subject is the broker subject/topic carrying inbound commands.
	Subject string
	// ReplySubject is the fallback reply destination for brokers without a
	// per-message reply address.
	ReplySubject string
	// Queue is the queue group (NATS) or channel (NSQ) name.
	Queue string
	// Concurrency is the number of parallel command handlers.
	Concurrency int
}

// Consumer reads chat commands from the broker, dispatches them, and
// publishes paced replies.
type Consumer struct {
	messaging messaging.Messaging
	processor *Processor
	pacer     pacing.Pacer
	cfg       ConsumerConfig
	ins       instrument.Instrumentation
}

// NewConsumer constructs the command consumer.
func NewConsumer(m messaging.Messaging, p *Processor, pacer pacing.Pacer, cfg ConsumerConfig, ins instrument.Instrumentation) *Consumer {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}

	return &Consumer{
		messaging: m,
		processor: p,
		pacer:     pacer,
		cfg:       cfg,
		ins:       ins,
	}
}

// Run blocks consuming commands until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	return c.messaging.Consume(ctx, c.cfg.Subject, c.handle,
		messaging.WithQueueGroup(c.cfg.Queue),
		messaging.WithChannel(c.cfg.Queue),
		messaging.WithConcurrency(c.cfg.Concurrency),
		messaging.WithAutoAck(true),
	)
}

func (c *Consumer) handle(ctx context.Context, msg messaging.Message) error {
	ctx, span := c.ins.Tracer("vault.inbound.consumer").Start(ctx, "Handle")
	defer span.End()

	command, args := ParseMessage(string(msg.Body()))
	reply := c.processor.Dispatch(ctx, command, args)
	if reply == "" {
		return nil
	}

	dest := msg.ReplyTo()
	if dest == "" {
		dest = c.cfg.ReplySubject
	}
	if dest == "" {
		slog.WarnContext(ctx, "no reply destination for command", "command", command)
		return nil
	}

	if err := c.pacer.Wait(ctx, dest); err != nil {
		return err
	}

	if _, err := c.messaging.Publish(ctx, dest, messaging.OutgoingMessage{Body: []byte(reply)}); err != nil {
		slog.ErrorContext(ctx, "failed to publish command reply", "command", command, "reply_to", dest, "error", err)
		return err
	}

	slog.InfoContext(ctx, "command reply sent", "command", command, "reply_to", dest)
	return nil
}
