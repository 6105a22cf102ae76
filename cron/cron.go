package cron

import (
	"fmt"
	"time"

	"github.com/iskiospa/iskio-api/models"
	"github.com/iskiospa/iskio-api/utils"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const cleanupSchedule = "@hourly"

// StartCronJobs registers the reminder and reset-token cleanup jobs and starts the scheduler.
func StartCronJobs(conn *gorm.DB, reminderSpec string) (*cron.Cron, error) {
	logrus.Info("Starting cron job scheduler...")
	c := cron.New(cron.WithLocation(utils.Location))

	if _, err := c.AddFunc(reminderSpec, func() {
		sent, err := SendReminders(conn, utils.Now())
		if err != nil {
			logrus.WithError(err).Error("Error sending appointment reminders")
			return
		}
		logrus.WithField("sent", sent).Info("Appointment reminders sent")
	}); err != nil {
		return nil, fmt.Errorf("failed to add reminder job: %w", err)
	}

	if _, err := c.AddFunc(cleanupSchedule, func() {
		removed, err := CleanupResets(conn, utils.Now())
		if err != nil {
			logrus.WithError(err).Error("Error cleaning password reset tokens")
			return
		}
		if removed > 0 {
			logrus.WithField("removed", removed).Info("Password reset tokens cleaned")
		}
	}); err != nil {
		return nil, fmt.Errorf("failed to add cleanup job: %w", err)
	}

	c.Start()
	logrus.WithField("reminder", reminderSpec).Info("Cron job scheduler started")
	return c, nil
}

// SendReminders emails every non-cancelled cita of the day after now.
func SendReminders(conn *gorm.DB, now time.Time) (int, error) {
	tomorrow := now.In(utils.Location).AddDate(0, 0, 1).Format(models.DateLayout)

	var citas []models.Cita
	err := conn.Preload("Servicio").
		Where("fecha = ? AND estado <> ?", tomorrow, models.EstadoCancelada).
		Order("hora asc").
		Find(&citas).Error
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, cita := range citas {
		if err := sendReminderEmail(cita); err != nil {
			logrus.WithFields(logrus.Fields{"cita_id": cita.ID, "to": cita.Correo}).WithError(err).Warn("Failed to send reminder")
			continue
		}
		sent++
	}
	return sent, nil
}

func sendReminderEmail(cita models.Cita) error {
	subject := fmt.Sprintf("Recordatorio: tu cita de mañana - %s", cita.Servicio.Nombre)
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Te recordamos tu cita agendada para mañana.</p>
		<ul>
			<li><strong>Servicio:</strong> %s</li>
			<li><strong>Fecha:</strong> %s</li>
			<li><strong>Hora:</strong> %s</li>
		</ul>
		<p>Si necesitas reagendar o cancelar, contáctanos lo antes posible.</p>
		<p>ISKIO Spa</p>
	`, cita.Nombre, cita.Servicio.Nombre, cita.Fecha, cita.Hora)

	return utils.Mail.Send(cita.Correo, subject, body)
}

// CleanupResets deletes used or expired password reset tokens.
func CleanupResets(conn *gorm.DB, now time.Time) (int64, error) {
	result := conn.Where("used = ? OR expires_at < ?", true, now).Delete(&models.PasswordReset{})
	return result.RowsAffected, result.Error
}
