package utils

import (
	"academy/config"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
)

type mailerRequest struct {
	HostType  string `json:"host_type"`
	SMTPHost  string `json:"smtp_host"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FromEmail string `json:"from_email"`
	ToEmail   string `json:"to_email"`
	Subject   string `json:"subject"`
	Text      string `json:"text"`
	HTML      string `json:"html"`
}

type mailerResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// SendMail delivers a transactional email through the cloud mailer relay.
// A relay-reported failure comes back as an error so callers can abort before
// mutating state.
func SendMail(toEmail, subject, text, html string) error {
	cfg := config.AppConfig

	client := resty.New().SetTimeout(15 * time.Second)

	var result mailerResponse
	resp, err := client.R().
		SetHeader("mailer-access-key", cfg.MailerKey).
		SetBody(mailerRequest{
			HostType:  cfg.MailerHostType,
			SMTPHost:  cfg.SMTPHost,
			Username:  cfg.MailerUsername,
			Password:  cfg.MailerPassword,
			FromEmail: cfg.FromEmail,
			ToEmail:   toEmail,
			Subject:   subject,
			Text:      text,
			HTML:      html,
		}).
		SetResult(&result).
		Post(cfg.MailerURL + "/send")
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return errors.New("Unable to send email to user")
	}
	if !result.Success {
		if result.Message != "" {
			return errors.New(result.Message)
		}
		return errors.New("Unable to send email to user")
	}
	if len(result.Data) == 0 || string(result.Data) == "null" {
		return errors.New("Unable to send email to user")
	}

	return nil
}
