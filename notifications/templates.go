package notifications

import (
	"fmt"

	"github.com/steamupuz/steamup_backend/i18n"
	"github.com/steamupuz/steamup_backend/models"
)

type otpTemplate struct {
	Subject string
	Body    string
}

// Per-language OTP mail templates; %s is the code. Languages without an
// entry fall back to English.
var otpTemplates = map[string]map[models.OTPPurpose]otpTemplate{
	"en": {
		models.OTPPurposeVerify: {
			Subject: "SteamUp - Your OTP for email verification",
			Body:    "<p>Hello,</p><p>Your one-time password (OTP) for email verification is: <b>%s</b></p><p>This OTP will expire in 5 minutes.</p><p>Best regards,<br>The SteamUp Team</p>",
		},
		models.OTPPurposeReset: {
			Subject: "SteamUp - Your OTP for password reset",
			Body:    "<p>Hello,</p><p>Your one-time password (OTP) for password reset is: <b>%s</b></p><p>This OTP will expire in 5 minutes.</p><p>Best regards,<br>The SteamUp Team</p>",
		},
	},
	"uz": {
		models.OTPPurposeVerify: {
			Subject: "SteamUp - Email tasdiqlash kodi",
			Body:    "<p>Salom,</p><p>Emailni tasdiqlash uchun bir martalik kodingiz: <b>%s</b></p><p>Kod 5 daqiqadan so'ng eskiradi.</p><p>Hurmat bilan,<br>SteamUp jamoasi</p>",
		},
		models.OTPPurposeReset: {
			Subject: "SteamUp - Parolni tiklash kodi",
			Body:    "<p>Salom,</p><p>Parolni tiklash uchun bir martalik kodingiz: <b>%s</b></p><p>Kod 5 daqiqadan so'ng eskiradi.</p><p>Hurmat bilan,<br>SteamUp jamoasi</p>",
		},
	},
	"ru": {
		models.OTPPurposeVerify: {
			Subject: "SteamUp - Код подтверждения электронной почты",
			Body:    "<p>Здравствуйте,</p><p>Ваш одноразовый код для подтверждения почты: <b>%s</b></p><p>Код истечёт через 5 минут.</p><p>С уважением,<br>Команда SteamUp</p>",
		},
		models.OTPPurposeReset: {
			Subject: "SteamUp - Код для сброса пароля",
			Body:    "<p>Здравствуйте,</p><p>Ваш одноразовый код для сброса пароля: <b>%s</b></p><p>Код истечёт через 5 минут.</p><p>С уважением,<br>Команда SteamUp</p>",
		},
	},
}

func OTPEmailTemplate(purpose models.OTPPurpose, code, lang string) (subject, body string) {
	templates, ok := otpTemplates[lang]
	if !ok {
		templates = otpTemplates[i18n.DefaultLanguage]
	}
	tpl, ok := templates[purpose]
	if !ok {
		tpl = otpTemplates[i18n.DefaultLanguage][models.OTPPurposeVerify]
	}
	return tpl.Subject, fmt.Sprintf(tpl.Body, code)
}
