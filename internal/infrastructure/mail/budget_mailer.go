package mail

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/config"

	"gopkg.in/gomail.v2"
)

var (
	ErrMailDisabled     = errors.New("mail service disabled")
	ErrMissingRecipient = errors.New("budget has no customer email")
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// BudgetMailer e-mails budget PDFs to customers over SMTP.
type BudgetMailer struct {
	cfg    config.MailConfig
	dialer dialer
}

func NewBudgetMailer(cfg config.MailConfig) *BudgetMailer {
	return &BudgetMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendBudget sends b to its customer with pdf attached. gomail has no context
// support; ctx is only checked before dialing.
func (s *BudgetMailer) SendBudget(ctx context.Context, b entities.Budget, pdf []byte) error {
	if !s.cfg.Enabled {
		return ErrMailDisabled
	}
	if strings.TrimSpace(b.CustomerEmail) == "" {
		return ErrMissingRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.budgetMessage(b, pdf)
	if err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send budget email: %w", err)
	}
	return nil
}

func (s *BudgetMailer) budgetMessage(b entities.Budget, pdf []byte) (*gomail.Message, error) {
	var body strings.Builder
	if err := budgetTemplate.Execute(&body, budgetView{
		ID:    shortID(b.ID),
		Total: pricing.FormatBRL(b.Breakdown.Total),
		Notes: b.Notes,
	}); err != nil {
		return nil, fmt.Errorf("render budget email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.From, "AppTécnico"))
	m.SetHeader("To", b.CustomerEmail)
	m.SetHeader("Subject", "Seu orçamento "+shortID(b.ID))
	m.SetBody("text/html", body.String())
	if len(pdf) > 0 {
		m.Attach("orcamento-"+shortID(b.ID)+".pdf",
			gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(pdf)
				return err
			}),
		)
	}
	return m, nil
}

type budgetView struct {
	ID    string
	Total string
	Notes string
}

var budgetTemplate = template.Must(template.New("budget").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>Orçamento {{.ID}}</h2>
    <p>Segue em anexo o orçamento solicitado.</p>
    <p>Valor total: <strong>{{.Total}}</strong></p>
    {{if .Notes}}<p style="color: #666;">{{.Notes}}</p>{{end}}
</body>
</html>
`))

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
