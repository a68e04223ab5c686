package email

import "fmt"

// One builder per template. The dispatch boundary decides which one runs;
// templates themselves never inspect request flags.

func OTPEmail(code string) (subject, html string) {
	subject = "Your verification code"
	html = fmt.Sprintf(`<p>Your one-time verification code is:</p>
<h2 style="letter-spacing:4px">%s</h2>
<p>The code expires in 10 minutes. If you didn't request it, ignore this email.</p>`, code)
	return
}

func CredentialsEmail(name, username, password, loginURL string) (subject, html string) {
	subject = "Your trial account is ready"
	html = fmt.Sprintf(`<p>Hi %s,</p>
<p>Your trial dashboard account has been created.</p>
<p>Username: <b>%s</b><br>Password: <b>%s</b></p>
<p><a href="%s">Log in to your dashboard</a></p>`, name, username, password, loginURL)
	return
}

func WelcomeEmail(name, plan string) (subject, html string) {
	subject = "Welcome aboard"
	html = fmt.Sprintf(`<p>Hi %s,</p>
<p>Welcome! Your <b>%s</b> subscription is now active.</p>
<p>You can manage classes, events and students from your dashboard.</p>`, name, plan)
	return
}

func PaymentConfirmationEmail(name, plan, invoiceID string, amount float64) (subject, html string) {
	subject = "Payment received"
	html = fmt.Sprintf(`<p>Hi %s,</p>
<p>We've received your payment of <b>₹%.2f</b> for the <b>%s</b>.</p>
<p>Invoice reference: %s</p>`, name, amount, plan, invoiceID)
	return
}

func ContactEmail(name, fromEmail, message string) (subject, html string) {
	subject = fmt.Sprintf("Contact form: %s", name)
	html = fmt.Sprintf(`<p><b>From:</b> %s &lt;%s&gt;</p>
<p>%s</p>`, name, fromEmail, message)
	return
}
