package services

import (
	"github.com/rs/zerolog"
	"github.com/mtendere/educonsult-admin/internal/pkg/email"
)

// notifyAdmin sends a change notice and logs the failure instead of
// propagating it. Notification email never fails the triggering operation.
func notifyAdmin(mailer email.Service, logger zerolog.Logger, entity, action, summary string) {
	if err := mailer.SendAdminNotice(entity, action, summary); err != nil {
		logger.Warn().Err(err).Str("entity", entity).Str("action", action).
			Msg("Failed to send admin notification email")
	}
}
