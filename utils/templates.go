package utils

import "fmt"

// Mail carries a rendered email.
type Mail struct {
	Subject string
	Text    string
	HTML    string
}

func EmailVerificationMail(verificationLink string) Mail {
	body := fmt.Sprintf(`Open the link below on a new tab to verify your email <br/><br/> Verification Link: <a href="%s" target="_blank">%s</a>`, verificationLink, verificationLink)
	return Mail{Subject: "Email verification", Text: body, HTML: body}
}

func EmailVerificationWithPasswordMail(verificationLink, email, newPassword string) Mail {
	body := fmt.Sprintf(`Open the link below on a new tab to verify your email.<br/><br/> Verification Link: <a href="%s" target="_blank">%s</a> <br/><br/> Email: %s <br/><br/> Password: %s`, verificationLink, verificationLink, email, newPassword)
	return Mail{Subject: "Email changed! ⚠️", Text: body, HTML: body}
}

func PasswordResetMail(newPassword string) Mail {
	body := fmt.Sprintf(`Here's your new password <br/><br/> Password: %s`, newPassword)
	return Mail{Subject: "Password recovery", Text: body, HTML: body}
}

func CancelPaymentMail(courseTitle string) Mail {
	body := fmt.Sprintf(`Your payment for %s course has been cancelled <br/><br/>`, courseTitle)
	return Mail{Subject: "Payment cancelled", Text: body, HTML: body}
}

func CancelPaymentViaReferenceMail(reference string) Mail {
	body := fmt.Sprintf(`Your payment for courses with reference - %s has been cancelled <br/><br/>`, reference)
	return Mail{Subject: "Payment cancelled", Text: body, HTML: body}
}

func CompletePaymentMail(reference, sumTotal string) Mail {
	body := fmt.Sprintf(`Your payment for courses with reference - %s has been completed <br/><br/> Total Paid: %s`, reference, sumTotal)
	return Mail{Subject: "Payment complete for course(s)", Text: body, HTML: body}
}
