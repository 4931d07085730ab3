// Command remind assembles the upcoming-deadline digest and mails it to the
// configured recipients. It is meant to be run from cron; there is no
// in-process scheduler.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"ngo-erp-api/config"
	"ngo-erp-api/deadline"
	"ngo-erp-api/services"
	"ngo-erp-api/store"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	recipients := splitRecipients(os.Getenv("REMINDER_RECIPIENTS"))
	if len(recipients) == 0 {
		log.Fatal("REMINDER_RECIPIENTS is not set")
	}

	db, err := config.OpenDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	window := deadline.DefaultWindowDays
	if raw := os.Getenv("REMINDER_WINDOW_DAYS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			window = parsed
		}
	}

	reminders := services.NewReminderService(store.NewStores(db))

	today := time.Now()
	items, err := reminders.UpcomingDeadlines(context.Background(), today, window)
	if err != nil {
		log.Fatal("Failed to collect deadlines:", err)
	}

	body, count := services.BuildDigestHTML(items, today)
	if count == 0 {
		log.Println("Nothing overdue or due soon; no digest sent")
		return
	}

	subject := fmt.Sprintf("Deadline digest: %d item(s) need attention", count)
	if err := config.SendMail(recipients, subject, body); err != nil {
		log.Fatal("Failed to send digest:", err)
	}
	log.Printf("Digest with %d item(s) sent to %d recipient(s)", count, len(recipients))
}

func splitRecipients(raw string) []string {
	var out []string
	for _, addr := range strings.Split(raw, ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
