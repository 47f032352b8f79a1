package mailsmodels

import (
	"fmt"
)

// TopUpConfirmation construit l'email de confirmation d'une recharge du
// solde interne du marchand.
func TopUpConfirmation(amount, newBalance string) []byte {
	subject := "Subject: Recarga de saldo confirmada \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1B8754; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Recarga confirmada</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Sua recarga de R$ %s foi aprovada.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p style="font-weight: bold; color: #1B8754; text-align:center;">Novo saldo: R$ %s</p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, amount, newBalance)

	return []byte(subject + mime + body)
}
