package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// requiredMessages maps contact submission fields to their required-check text
var requiredMessages = map[string]string{
	"Name":    "Name is required",
	"Email":   "Email is required",
	"Subject": "Subject is required",
	"Message": "Message is required",
}

// ContactMessages translates validator failures on a contact submission into
// the human-readable strings the API returns. The validator walks fields in
// struct order and reports at most one failed tag per field, so the output
// order is stable: name, email, subject, message.
func ContactMessages(errs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			if msg, ok := requiredMessages[fe.Field()]; ok {
				messages = append(messages, msg)
				continue
			}
			messages = append(messages, fmt.Sprintf("%s is required", fe.Field()))
		case "contact_email":
			messages = append(messages, "Invalid email format")
		case "min":
			val, _ := fe.Value().(string)
			messages = append(messages, fmt.Sprintf(
				"Message must be at least %s characters long (currently %d characters)",
				fe.Param(), utf8.RuneCountInString(val)))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return messages
}
