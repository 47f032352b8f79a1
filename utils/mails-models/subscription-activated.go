package mailsmodels

import (
	"fmt"
	"time"
)

// SubscriptionActivated construit l'email de confirmation d'activation ou
// de renouvellement d'un plan.
func SubscriptionActivated(planName, amount string, periodEnd time.Time) []byte {
	subject := "Subject: Assinatura ativada \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1B8754; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Assinatura ativada</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Seu pagamento do plano <strong>%s</strong> foi aprovado (R$ %s).</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p style="font-weight: bold; color: #1B8754; text-align:center;">Válido até %s</p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, planName, amount, periodEnd.Format("02/01/2006"))

	return []byte(subject + mime + body)
}
