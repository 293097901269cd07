package mail

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var ErrMailerDisabled = errors.New("smtp not configured")

const defaultTimeout = 5 * time.Second

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	AppURL      string
	AccessPath  string
	ProductName string
	Timeout     time.Duration
}

// AccessURL is the link the purchaser follows to open the e-book.
func (c Config) AccessURL(token string) string {
	return strings.TrimRight(c.AppURL, "/") + c.AccessPath + "?token=" + url.QueryEscape(token)
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// GomailNotifier sends the access e-mail over SMTP. One attempt per call,
// bounded by Config.Timeout.
type GomailNotifier struct {
	cfg    Config
	sender sender
	logger *zap.Logger
}

var _ interfaces.INotifier = (*GomailNotifier)(nil)

func NewGomailNotifier(cfg Config, logger *zap.Logger) *GomailNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	n := &GomailNotifier{cfg: cfg, logger: logger.Named("mail")}
	if cfg.Host == "" {
		n.logger.Warn("smtp host not set, access e-mails disabled")
		return n
	}
	n.sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return n
}

func (n *GomailNotifier) SendAccessEmail(ctx context.Context, to, customerName, accessToken string) error {
	if n.sender == nil {
		return &entities.NotifyError{To: to, Err: ErrMailerDisabled}
	}

	body, err := renderAccessEmail(accessEmailData{
		Name:      customerName,
		Product:   n.cfg.ProductName,
		AccessURL: n.cfg.AccessURL(accessToken),
	})
	if err != nil {
		return &entities.NotifyError{To: to, Err: err}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.cfg.From, brandName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", accessEmailSubject)
	m.SetBody("text/html", body)

	ctx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	// gomail has no dial deadline; the send goroutine outlives a timeout and
	// its result is dropped.
	done := make(chan error, 1)
	go func() { done <- n.sender.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return &entities.NotifyError{To: to, Err: err}
		}
		n.logger.Debug("access e-mail delivered")
		return nil
	case <-ctx.Done():
		return &entities.NotifyError{To: to, Err: ctx.Err()}
	}
}
