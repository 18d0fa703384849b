package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	IsConfigured() bool
	SendEMail(to, subject, message string) error
}

type Config struct {
	User       string
	Password   string
	Host       string
	Port       string
	From       string
	TLSEnabled bool
}

func Connect(cfg Config) {
	Instance = New(cfg)
}

func New(cfg Config) Provider {
	return &impl{cfg: cfg}
}

type impl struct {
	cfg Config
}

func (i impl) IsConfigured() bool {
	return i.cfg.User != "" && i.cfg.Host != "" && i.cfg.Port != ""
}

func (i impl) SendEMail(to, subject, message string) (err error) {
	logger := log.
		WithField("recipient", to).
		WithField("subject", subject)
	if !i.IsConfigured() {
		logger.Warn("письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	if to == "" {
		return errors.New("не указан адрес получателя")
	}
	from := i.cfg.From
	if from == "" {
		from = i.cfg.User
	}
	auth := sasl.NewPlainClient("", i.cfg.User, i.cfg.Password)
	body := strings.NewReader(buildMessage(from, to, subject, message))
	addr := i.cfg.Host + ":" + i.cfg.Port
	if i.cfg.TLSEnabled {
		err = smtp.SendMailTLS(addr, auth, from, []string{to}, body)
	} else {
		err = smtp.SendMail(addr, auth, from, []string{to}, body)
	}
	if err != nil {
		return errors.Wrap(err, "ошибка отправки письма")
	}
	logger.Info("письмо отправлено")
	return nil
}

func buildMessage(from, to, subject, message string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Оценка эффективности - %s\r\nMIME-version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		from, to, subject, message)
}
