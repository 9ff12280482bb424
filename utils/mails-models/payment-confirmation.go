package mailsmodels

import (
	"fmt"

	"github.com/nafhansa/JobTracker-sub000/utils"
)

type PaymentEmailData struct {
	Email    string
	UserName string
	Plan     string
	Provider string
}

func PaymentConfirmation(payment PaymentEmailData) {
	subject := "Subject: Your JobTracker upgrade is active \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1D4ED8; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Welcome to Pro!</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p>Hi %s,</p>
						<p>Your <strong>%s</strong> plan is now active (paid via %s).</p>
						<p>Good luck with the applications!</p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, payment.UserName, payment.Plan, payment.Provider)

	message := []byte(subject + mime + body)
	utils.SendMail(payment.Email, message)
}
