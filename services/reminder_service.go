// services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// DefaultReminderTemplate is filled with [CustomerName] and [DueDate].
const DefaultReminderTemplate = "Hi [CustomerName], your water purifier service is due on [DueDate]. Reply to this message to book a technician visit."

// Notifier delivers a text message and reports the channel it used.
type Notifier interface {
	Send(ctx context.Context, phone, body string) (channel string, err error)
}

// TwilioNotifier sends over WhatsApp when the number is in E.164 form and a
// WhatsApp sender is configured, otherwise over SMS.
type TwilioNotifier struct {
	client       *twilio.RestClient
	from         string
	whatsAppFrom string
}

func NewTwilioNotifier(accountSid, authToken, from, whatsAppFrom string) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from:         from,
		whatsAppFrom: whatsAppFrom,
	}
}

func (n *TwilioNotifier) Send(_ context.Context, phone, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)

	channel := "sms"
	if strings.HasPrefix(phone, "+") && n.whatsAppFrom != "" {
		channel = "whatsapp"
		params.SetTo("whatsapp:" + phone)
		params.SetFrom("whatsapp:" + n.whatsAppFrom)
	} else {
		params.SetTo(phone)
		params.SetFrom(n.from)
	}

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return channel, err
	}
	if resp.Sid == nil {
		return channel, fmt.Errorf("twilio: no message sid returned")
	}
	return channel, nil
}

// ReminderResult tallies one reminder run.
type ReminderResult struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// ReminderService texts active customers whose service is due. A customer is
// reminded at most once per next-service date.
type ReminderService struct {
	store    *Store
	notifier Notifier
	log      logrus.FieldLogger
	template string

	mu       sync.Mutex
	reminded map[string]civil.Date
	cron     *cron.Cron
}

func NewReminderService(store *Store, notifier Notifier, log logrus.FieldLogger) *ReminderService {
	return &ReminderService{
		store:    store,
		notifier: notifier,
		log:      log.WithField("module", "reminders"),
		template: DefaultReminderTemplate,
		reminded: make(map[string]civil.Date),
	}
}

// StartScheduler runs SendDueReminders on the cron schedule (e.g. "0 9 * * *").
func (s *ReminderService) StartScheduler(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		s.SendDueReminders(context.Background())
	}); err != nil {
		return fmt.Errorf("reminder schedule %q: %w", schedule, err)
	}
	c.Start()
	s.cron = c
	s.log.WithField("schedule", schedule).Info("reminder scheduler started")
	return nil
}

// StopScheduler stops the cron and waits for a running job to finish.
func (s *ReminderService) StopScheduler() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

func (s *ReminderService) SendDueReminders(ctx context.Context) ReminderResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res ReminderResult
	for _, v := range s.store.CustomerViews(FilterDue) {
		if v.Phone == "" || v.NextServiceDate == nil {
			res.Skipped++
			continue
		}
		if last, ok := s.reminded[v.ID]; ok && last == *v.NextServiceDate {
			res.Skipped++
			continue
		}

		body := strings.NewReplacer(
			"[CustomerName]", v.Name,
			"[DueDate]", v.NextServiceDate.String(),
		).Replace(s.template)

		log := s.log.WithFields(logrus.Fields{"customer": v.ID, "due": v.NextServiceDate.String()})
		channel, err := s.notifier.Send(ctx, v.Phone, body)
		if err != nil {
			log.WithError(err).WithField("channel", channel).Error("failed to send reminder")
			res.Failed++
			continue
		}
		s.reminded[v.ID] = *v.NextServiceDate
		log.WithField("channel", channel).Info("reminder sent")
		res.Sent++
	}

	s.log.WithFields(logrus.Fields{"sent": res.Sent, "failed": res.Failed, "skipped": res.Skipped}).
		Info("reminder run completed")
	return res
}
