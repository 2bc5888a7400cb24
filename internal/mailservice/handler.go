package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/exp/rand"

	"bloglist/internal/common"
)

func NewMailService(mb common.MessageConsumer, host, username, password, sender, operator string, port int, logger *slog.Logger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:       mb,
		m:        NewMailer(host, port, username, password, sender, NewTemplate()),
		operator: operator,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SendSignupNotification consumes user.created events and mails the operator
// about each new account. Failed sends are retried with jittered exponential
// backoff before the delivery is dropped.
func (s *MailService) SendSignupNotification() {
	msgs, err := s.mb.Consume(common.UserCreatedKey, common.UserExchange, common.UserCreatedQueue)
	if err != nil {
		s.logger.Error("could not consume message", slog.String("error", err.Error()))
		return
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var data struct {
					Username string
				}

				err := json.Unmarshal(msg.Body, &data)
				if err != nil {
					s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
					continue
				}

				payload := struct {
					Username string
				}{
					Username: data.Username,
				}

				const maxRetries = 5
				const baseDelay = 500 * time.Millisecond

				var attempt int
				for attempt = 0; attempt < maxRetries; attempt++ {
					err = s.m.send(s.operator, payload, "signup_notification.html")
					if err == nil {
						s.logger.Info("signup notification sent", slog.String("username", data.Username))
						msg.Ack(false)
						break
					}

					delay := time.Duration(rand.Int63n(int64(baseDelay) << uint(attempt)))
					s.logger.Info("delaying signup notification", slog.String("username", data.Username), slog.Int("attempt", attempt), slog.Duration("delay", delay))
					time.Sleep(delay)
				}

				if attempt == maxRetries {
					s.logger.Error("could not send signup notification", slog.String("username", data.Username))
					msg.Ack(false)
				}

			case <-s.ctx.Done():
				s.logger.Info("stopping signup notification consumer")
				return
			}
		}
	}()
}

func (s *MailService) Close() {
	s.cancel()
}
