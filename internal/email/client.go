package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/setraniainabruno/gestion-chambre-app/internal/application"
)

// Client sends operational mail over SMTP. The whole service runs fine
// without one; callers hold a nil *Client when SMTP is not configured.
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
	summaryTo string
}

// NewClient creates a new email client. summaryTo is the recipient of the
// daily derivation summaries.
func NewClient(host, portStr, user, password, fromName, fromEmail, summaryTo string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("port SMTP invalide: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
		summaryTo: summaryTo,
	}, nil
}

// SendEmail sends one HTML mail.
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("erreur de configuration de l'expéditeur: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("erreur de configuration du destinataire: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connexion à %s:%d (utilisateur=%s)", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("erreur de création du client SMTP (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("erreur d'envoi du courriel (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// SendDerivationSummary mails the list of status transitions a derivation
// pass applied. Implements application.DerivationNotifier.
func (c *Client) SendDerivationSummary(date time.Time, changes []application.StatusChange) error {
	if c.summaryTo == "" {
		return nil
	}
	subject := fmt.Sprintf("Mise à jour automatique des statuts — %s", date.Format("02/01/2006"))
	return c.SendEmail(c.summaryTo, subject, buildSummaryHTML(date, changes))
}

func buildSummaryHTML(date time.Time, changes []application.StatusChange) string {
	var rows strings.Builder
	for _, change := range changes {
		description := ""
		switch {
		case change.NouveauStatut != nil:
			description = fmt.Sprintf("Réservation %s → %s", change.ReservationID, *change.NouveauStatut)
		case change.NouveauStatutChambre != nil:
			description = fmt.Sprintf("Chambre %s → %s (réservation %s)", change.ChambreID, *change.NouveauStatutChambre, change.ReservationID)
		}
		rows.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 12px; border-bottom: 1px solid #e0e0e0;">%s</td>
			</tr>
		`, description))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Mise à jour des statuts</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
					<tr>
						<td style="background: linear-gradient(135deg, #3b82f6 0%%, #14b8a6 100%%); padding: 30px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 22px;">Statuts mis à jour le %s</h1>
							<p style="color: #ffffff; margin: 8px 0 0 0; font-size: 14px;">%d transition(s) appliquée(s)</p>
						</td>
					</tr>
					<tr>
						<td style="padding: 30px;">
							<table width="100%%" cellpadding="0" cellspacing="0" style="border: 1px solid #e0e0e0; border-radius: 8px; overflow: hidden;">
								<tbody>
									%s
								</tbody>
							</table>
						</td>
					</tr>
					<tr>
						<td style="background-color: #f8f9fa; padding: 20px; text-align: center; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0; color: #999; font-size: 12px;">
								Courriel automatique du tableau de bord — ne pas répondre
							</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
	`,
		date.Format("02/01/2006"),
		len(changes),
		rows.String(),
	)
}
