package crontab

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autocart-server/store-api/internal/config"
	"autocart-server/store-api/internal/domain/conversation"
	"autocart-server/store-api/internal/infrastructure/logger"
	"autocart-server/store-api/internal/infrastructure/metrics"
	"autocart-server/store-api/internal/utils/platformerrors"

	"github.com/mileusna/crontab"
)

const (
	DefaultSweepIntervalMinutes = 60
	CronJobTimeout              = 10 * time.Minute // Timeout for each cron job execution
)

type Crontab struct {
	ctab                *crontab.Crontab
	conversationService *conversation.ConversationService
}

func NewCrontab(conversationService *conversation.ConversationService) *Crontab {
	return &Crontab{
		ctab:                crontab.New(),
		conversationService: conversationService,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	cfg := config.GetGlobal()
	if cfg != nil && cfg.RetentionEnabled {
		retention := time.Duration(cfg.RetentionDays) * 24 * time.Hour

		sweepInterval := cfg.RetentionSweepInterval
		if sweepInterval <= 0 {
			sweepInterval = DefaultSweepIntervalMinutes
		}

		// execute once on server start
		c.sweepConversations(ctx, retention)

		cronExpr := fmt.Sprintf("*/%d * * * *", sweepInterval)
		if err := c.ctab.AddJob(cronExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.sweepConversations(jobCtx, retention)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add retention sweep job")
		}
		log.Warn().Msgf("Conversation retention sweep scheduled: every %d minute(s)", sweepInterval)
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) sweepConversations(ctx context.Context, retention time.Duration) {
	log := logger.GetLogger()

	deleted, err := c.conversationService.PurgeExpired(ctx, retention)
	if err != nil {
		var platformErr *platformerrors.PlatformError
		if errors.As(err, &platformErr) {
			platformerrors.LogError(log, platformErr)
		} else {
			log.Error().Err(err).Msg("Failed to purge expired conversations")
		}
		return
	}
	if deleted == 0 {
		return
	}

	metrics.RetentionDeletedTotal.Add(float64(deleted))
	log.Info().Msgf("Purged %d expired conversations", deleted)
}
