package services

import (
	"context"
	"time"

	"github.com/wellsight/wellsight-backend/internal/platform/logger"
	"github.com/wellsight/wellsight-backend/internal/repos"
	"github.com/wellsight/wellsight-backend/internal/types"
)

// AnalysisService serves the integrity analysis screens: report
// listings, operational events, well master data and attachments.
type AnalysisService struct {
	analysis repos.AnalysisRepo
	log      *logger.Logger
}

func NewAnalysisService(analysis repos.AnalysisRepo, baseLog *logger.Logger) *AnalysisService {
	return &AnalysisService{
		analysis: analysis,
		log:      baseLog.With("service", "AnalysisService"),
	}
}

func (s *AnalysisService) ListReports(ctx context.Context, wellID, wellboreID string) ([]types.AnalysisReportRow, error) {
	return s.analysis.ListReports(ctx, wellID, wellboreID)
}

func (s *AnalysisService) ListWellEvents(ctx context.Context, wellID string) ([]types.WellEventRow, error) {
	return s.analysis.ListWellEvents(ctx, wellID)
}

func (s *AnalysisService) GetWell(ctx context.Context, wellID string) (*types.WellRow, error) {
	well, err := s.analysis.GetWell(ctx, wellID)
	if err != nil {
		return nil, err
	}
	if well == nil {
		return nil, types.ErrNotFound
	}
	return well, nil
}

func (s *AnalysisService) ListDatums(ctx context.Context, wellID string) ([]types.DatumRow, error) {
	return s.analysis.ListDatums(ctx, wellID)
}

func (s *AnalysisService) ListAttachments(ctx context.Context, wellID, wellboreID string, asOf time.Time) ([]types.AttachmentRow, error) {
	return s.analysis.ListAttachments(ctx, wellID, wellboreID, asOf)
}
