package service

import "ansadash/api/internal/logger"

// EmailSender delivers sign-in links. Actual delivery is out of scope for
// this repo; deployments plug in a real provider behind this interface.
type EmailSender interface {
	SendSigninLink(email, link string) error
}

type LogEmailSender struct {
	log logger.Logger
}

func NewLogEmailSender(l logger.Logger) *LogEmailSender {
	return &LogEmailSender{log: l}
}

func (s *LogEmailSender) SendSigninLink(email, link string) error {
	s.log.Info("signin link issued", "email", email, "link", link)
	return nil
}
