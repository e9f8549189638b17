package constant

import "time"

// Login methods recorded in sessions and history entries.
const (
	LoginMethodPassword = "web_form"
	LoginMethodSMS      = "sms"
)

// ClientLoginValidity is how long a persisted client login record is trusted
// before the user must authenticate again.
const ClientLoginValidity = 24 * time.Hour

// PhonePattern matches an 11-digit domestic mobile number.
const PhonePattern = `^1[3-9]\d{9}$`

// SMSCodeLength is the number of digits in a one-time code.
const SMSCodeLength = 6

const BearerScheme = "Bearer"

// DefaultHistoryLimit caps login-history listings when the caller does not
// pass a limit.
const DefaultHistoryLimit = 10
