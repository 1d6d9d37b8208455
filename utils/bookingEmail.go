package utils

import (
	"MediPlus/models"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendBookingConfirmationEmail sends the patient a confirmation of their
// appointment request. Callers treat failure as non-fatal: the appointment is
// already persisted when this runs.
func SendBookingConfirmationEmail(appointment *models.Appointment) error {
	fromEmail := os.Getenv("SMTP_USER")

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", appointment.PatientEmail)
	m.SetHeader("Subject", "Confirmation de votre demande de rendez-vous")

	m.SetBody("text/plain",
		"Bonjour "+appointment.PatientFirstName+",\n\n"+
			"Nous avons bien reçu votre demande de rendez-vous pour le service "+
			appointment.Service+" le "+appointment.AppointmentDate+" à "+
			appointment.AppointmentTime+".\n"+
			"Votre demande est en attente de confirmation par notre équipe.\n\n"+
			"L'équipe MediPlus")

	htmlBody := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Demande de rendez-vous</title>
		<style>
			body {
				font-family: Arial, sans-serif;
				background-color: #f4f4f4;
				margin: 0;
				padding: 0;
			}
			.container {
				background-color: #ffffff;
				margin: 20px auto;
				padding: 20px;
				border-radius: 8px;
				box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
				max-width: 600px;
			}
			h1 {
				color: #333333;
			}
			p {
				color: #666666;
			}
			.detail {
				font-weight: bold;
				color: #007bff;
			}
		</style>
	</head>
	<body>
		<div class="container">
			<h1>Demande de rendez-vous reçue</h1>
			<p>Bonjour ` + appointment.PatientFirstName + `,</p>
			<p>Nous avons bien reçu votre demande de rendez-vous:</p>
			<p class="detail">` + appointment.Service + ` — ` + appointment.AppointmentDate + ` à ` + appointment.AppointmentTime + `</p>
			<p>Votre demande est en attente de confirmation par notre équipe.</p>
		</div>
	</body>
	</html>
	`
	m.AddAlternative("text/html", htmlBody)

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		log.Printf("Invalid SMTP_PORT value: %v", err)
		return err
	}

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
