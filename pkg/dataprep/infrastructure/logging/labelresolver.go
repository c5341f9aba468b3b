package logging

import (
	"context"
	"fmt"
	"time"

	"kgeyst.com/dataprep/pkg/common"
	"kgeyst.com/dataprep/pkg/dataprep/domain"
)

type labelResolverDecorator struct {
	wrappedLabelResolver domain.LabelResolver
	logger               common.Logger
}

func NewLabelResolverDecorator(wrappedLabelResolver domain.LabelResolver, logger common.Logger) domain.LabelResolver {
	return &labelResolverDecorator{
		wrappedLabelResolver: wrappedLabelResolver,
		logger:               logger,
	}
}

func (l *labelResolverDecorator) Resolve(ctx context.Context, apiBaseURL, key string) (domain.LabelResult, error) {
	t := time.Now()
	result, err := l.wrappedLabelResolver.Resolve(ctx, apiBaseURL, key)
	if err != nil {
		return result, err
	}
	l.logger.Info(fmt.Sprintf("GET %s/%s: %d, label %s (took %d ms)", apiBaseURL, key, result.StatusCode, describe(result), time.Since(t).Milliseconds()))
	return result, nil
}

func describe(result domain.LabelResult) string {
	if result.Outcome == domain.LabelFound {
		return fmt.Sprintf("'%s'", result.Label)
	}
	return result.Outcome.String()
}
