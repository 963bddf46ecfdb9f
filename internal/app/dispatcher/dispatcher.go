// Package dispatcher routes inbound chat events to their handlers and sends
// the composed responses through the transport.
package dispatcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mercellinas/mia-bot/internal/catalog"
	"github.com/mercellinas/mia-bot/internal/domain"
	"github.com/mercellinas/mia-bot/internal/observability"
)

// Replier produces MIA's answer to a free-text prompt.
type Replier interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

type Dispatcher struct {
	replies   Replier
	transport domain.Transport
	sessions  domain.SessionLog
	tips      catalog.Picker[string]

	now      func() time.Time
	readFile func(string) ([]byte, error)
}

func New(
	replies Replier,
	transport domain.Transport,
	sessions domain.SessionLog,
	tips catalog.Picker[string],
) *Dispatcher {
	return &Dispatcher{
		replies:   replies,
		transport: transport,
		sessions:  sessions,
		tips:      tips,
		now:       time.Now,
		readFile:  os.ReadFile,
	}
}

// Dispatch handles one event to completion.
func (d *Dispatcher) Dispatch(ctx context.Context, ev domain.ChatEvent) error {
	switch ev := ev.(type) {
	case domain.StartCommand:
		return d.HandleStart(ctx, ev)
	case domain.TextMessage:
		return d.HandleText(ctx, ev)
	case domain.ButtonTap:
		return d.HandleButton(ctx, ev)
	default:
		observability.LoggerFromContext(ctx).Warn("ignoring unknown event", "type", fmt.Sprintf("%T", ev))
		return nil
	}
}

// HandleStart greets the user with one button per catalog style.
func (d *Dispatcher) HandleStart(ctx context.Context, ev domain.StartCommand) error {
	styles := catalog.Styles()
	buttons := make([]domain.Button, 0, len(styles))
	for _, s := range styles {
		buttons = append(buttons, domain.Button{Label: s.Name, Payload: s.Name})
	}

	return d.transport.SendText(ctx, ev.ChatID, catalog.WelcomeText(), buttons)
}

// HandleText logs the message, then answers it with a reply and a tip.
// The log entry is recorded even when the reply fails.
func (d *Dispatcher) HandleText(ctx context.Context, ev domain.TextMessage) error {
	if err := d.sessions.Append(ev.UserID, domain.LogEntry{Timestamp: d.now(), Text: ev.Text}); err != nil {
		return fmt.Errorf("logging message: %w", err)
	}

	reply, err := d.replies.GenerateReply(ctx, ev.Text)
	if err != nil {
		return err
	}

	tip := d.tips.Pick(catalog.Tips())
	return d.transport.SendText(ctx, ev.ChatID, reply+"\n\n"+catalog.TipPrefix+tip, nil)
}

// HandleButton acknowledges the tap, shows the style's photo when the style
// exists, then sends a bonus tip. Unknown styles only get the tip.
func (d *Dispatcher) HandleButton(ctx context.Context, ev domain.ButtonTap) error {
	if err := d.transport.Acknowledge(ctx, ev.CallbackID); err != nil {
		return err
	}

	if style, ok := catalog.Lookup(ev.StyleName); ok {
		data, err := d.readFile(style.ImagePath)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrAssetMissing, style.ImagePath, err)
		}

		photo := domain.Photo{Name: filepath.Base(style.ImagePath), Data: data}
		if err := d.transport.SendPhoto(ctx, ev.ChatID, photo, catalog.Caption(style.Name)); err != nil {
			return err
		}
	} else {
		observability.LoggerFromContext(ctx).Debug("style not in catalog", "style", ev.StyleName)
	}

	tip := d.tips.Pick(catalog.Tips())
	return d.transport.SendText(ctx, ev.ChatID, catalog.BonusTipPrefix+tip, nil)
}

// Run handles events until the channel is closed or ctx is done, each in its
// own goroutine. Handler errors are logged and counted, never retried.
// Run returns once every started handler has finished.
func (d *Dispatcher) Run(ctx context.Context, events <-chan domain.ChatEvent) {
	var wg sync.WaitGroup
	defer wg.Wait()

	// Handlers already started finish their turn after shutdown begins.
	handlerCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				d.handle(handlerCtx, ev)
			}()
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, ev domain.ChatEvent) {
	ctx = observability.WithRequestID(ctx, uuid.NewString())
	log := observability.LoggerFromContext(ctx).With(
		"event", ev.Kind(),
		"user_id", ev.Sender(),
	)
	observability.EventsTotal.WithLabelValues(ev.Kind()).Inc()

	start := time.Now()
	if err := d.Dispatch(ctx, ev); err != nil {
		observability.HandlerErrors.WithLabelValues(ev.Kind()).Inc()
		log.Error("event handling failed", "error", err)
		return
	}
	log.Info("event handled", "duration", time.Since(start))
}
