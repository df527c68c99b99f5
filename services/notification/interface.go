package notification

import (
	"context"
	"fmt"
	"strings"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"beautycrave/models"
)

// NotificationService delivers booking confirmations to the studio owner.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// DefaultNotificationService pushes over FCM to the owner's registered
// devices. With no FCM client configured the confirmation summary is only
// logged, mirroring a disabled transport.
type DefaultNotificationService struct {
	FCM          *messaging.Client
	DeviceTokens []string
	Logger       *zap.Logger
}

func (svc *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, p models.ConfirmationPayload) error {
	title := fmt.Sprintf("New booking: %s", p.CustomerName)
	body := summarize(p)

	if svc.FCM == nil || len(svc.DeviceTokens) == 0 {
		svc.Logger.Info("confirmation (no push transport configured)",
			zap.String("slotId", p.SlotID),
			zap.String("summary", body))
		return nil
	}

	msg := &messaging.MulticastMessage{
		Tokens: svc.DeviceTokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"scheduleId": p.ScheduleID,
			"slotId":     p.SlotID,
			"phone":      p.CustomerPhone,
		},
	}
	resp, err := svc.FCM.SendEachForMulticast(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send confirmation push: %w", err)
	}
	if resp.FailureCount > 0 {
		svc.Logger.Warn("confirmation push partially failed",
			zap.Int("failures", resp.FailureCount),
			zap.Int("successes", resp.SuccessCount))
	}
	return nil
}

func summarize(p models.ConfirmationPayload) string {
	names := make([]string, 0, len(p.Services))
	for _, s := range p.Services {
		names = append(names, fmt.Sprintf("%s %s", s.Emoji, s.Name))
	}
	return fmt.Sprintf("%s, %s-%s: %s (%.0f kr)",
		p.Date.Format("Mon 2 Jan"),
		p.StartTime.Format("15:04"),
		p.EndTime.Format("15:04"),
		strings.Join(names, ", "),
		p.TotalPrice)
}
