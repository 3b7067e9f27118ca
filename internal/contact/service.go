package contact

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Log is the append-only archive of contact messages.
type Log interface {
	AppendMessage(msg Message) error
}

type Outcome struct {
	Message Message
	// Delivered is true when the relay accepted the message.
	Delivered bool
	// MailtoURL is set when delivery did not happen; opening it lets the
	// visitor send the message from their own mail client.
	MailtoURL string
	// ArchiveErr is non-nil when the message could not be appended to the log.
	ArchiveErr error
}

type Service struct {
	log    Log
	relay  Relay
	owner  string
	now    func() time.Time
	logger *zap.Logger
}

// NewService wires the archive and relay. relay may be nil, in which case
// every submission falls back to a mailto link addressed to owner.
func NewService(log Log, relay Relay, owner string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		log:    log,
		relay:  relay,
		owner:  owner,
		now:    time.Now,
		logger: logger,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Submit(ctx context.Context, sub Submission) (Outcome, error) {
	sub = sub.Normalize()
	if err := sub.Validate(); err != nil {
		return Outcome{}, err
	}

	msg := sub.stamp(s.now())
	out := Outcome{Message: msg}

	if s.log != nil {
		if err := s.log.AppendMessage(msg); err != nil {
			s.logger.Error("failed to archive contact message", zap.Error(err))
			out.ArchiveErr = err
		}
	}

	if s.relay == nil {
		out.MailtoURL = MailtoURL(s.owner, msg)
		return out, nil
	}

	if err := s.relay.Send(ctx, msg); err != nil {
		s.logger.Warn("contact relay failed, falling back to mailto",
			zap.Error(err),
			zap.String("inquiry_type", msg.Type))
		out.MailtoURL = MailtoURL(s.owner, msg)
		return out, nil
	}

	s.logger.Info("contact message delivered", zap.String("inquiry_type", msg.Type))
	out.Delivered = true
	return out, nil
}
