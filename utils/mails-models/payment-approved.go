package mailsmodels

import (
	"fmt"
)

// ChargeApproved construit l'email envoyé au marchand quand la recharge
// wallet d'un de ses clients est approuvée.
func ChargeApproved(customerName, contactID, amount, newBalance string) []byte {
	subject := "Subject: Pagamento aprovado \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	if customerName == "" {
		customerName = contactID
	}
	body := fmt.Sprintf(`
	<div style="background-color: #1B8754; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Pagamento aprovado</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">O cliente <strong>%s</strong> (%s) recarregou o saldo.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p style="font-weight: bold; color: #1B8754; text-align:center;">Valor: R$ %s — novo saldo: R$ %s</p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, customerName, contactID, amount, newBalance)

	return []byte(subject + mime + body)
}
