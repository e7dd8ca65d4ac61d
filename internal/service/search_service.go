package service

import (
	"context"
	"log"

	"bytemart-search-be/internal/dto"
	"bytemart-search-be/internal/mapper"
	"bytemart-search-be/internal/pkg/logger"
	"bytemart-search-be/internal/pkg/serverutils"
	"bytemart-search-be/internal/repository/memory"
	"bytemart-search-be/pkg/catalog"
	"bytemart-search-be/pkg/events"
	pktNats "bytemart-search-be/pkg/nats"
	"bytemart-search-be/pkg/pipeline"

	"github.com/google/uuid"
)

type ISearchService interface {
	ProcessTurn(ctx context.Context, req *dto.SearchTurnRequest) (*dto.SearchTurnResponse, error)
	ResetSession(ctx context.Context, req *dto.ResetSessionRequest) error
	ShowSession(ctx context.Context, sessionID string) (*dto.ShowSessionResponse, error)
}

type searchService struct {
	sessionRepo  *memory.SessionRepository
	orchestrator *pipeline.Orchestrator
	snapshot     *catalog.Snapshot
	mapper       *mapper.CatalogMapper
	publisher    IPublisherService
	natsPub      *pktNats.Publisher
	logger       logger.ILogger
}

func NewSearchService(
	sessionRepo *memory.SessionRepository,
	orchestrator *pipeline.Orchestrator,
	snapshot *catalog.Snapshot,
	catalogMapper *mapper.CatalogMapper,
	publisher IPublisherService,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) ISearchService {
	return &searchService{
		sessionRepo:  sessionRepo,
		orchestrator: orchestrator,
		snapshot:     snapshot,
		mapper:       catalogMapper,
		publisher:    publisher,
		natsPub:      natsPub,
		logger:       sysLogger,
	}
}

func (s *searchService) ProcessTurn(ctx context.Context, req *dto.SearchTurnRequest) (*dto.SearchTurnResponse, error) {
	if req.SessionId == "" {
		req.SessionId = uuid.NewString()
	}
	sess, created := s.sessionRepo.GetOrCreate(req.SessionId)

	// A session nobody has seen before has no state to refine against.
	reset := req.Reset || created

	result, err := s.orchestrator.ProcessTurn(ctx, sess, pipeline.TurnRequest{
		UserID:           req.UserId,
		ModificationText: req.ModificationText,
		Reset:            reset,
		ImageRef:         req.ImageRef,
	})
	if err != nil {
		s.logger.Error("SearchService", "Turn failed", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		return nil, serverutils.BadRequest(err.Error())
	}
	s.sessionRepo.Save(sess)

	s.logger.Info("SearchService", "Turn completed", map[string]interface{}{
		"session_id": req.SessionId,
		"reset":      reset,
		"results":    len(result.Indices),
	})

	s.publishActivity(ctx, req, sess.CurrentText, len(result.Indices), reset)

	return s.buildResponse(req, sess.CurrentText, sess.BackBone, result), nil
}

func (s *searchService) ResetSession(ctx context.Context, req *dto.ResetSessionRequest) error {
	s.sessionRepo.Delete(req.SessionId)
	s.logger.Info("SearchService", "Session cleared", map[string]interface{}{
		"session_id": req.SessionId,
	})
	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.NewSessionClearedEvent(req.SessionId, req.UserId)); err != nil {
			log.Printf("[WARN] Failed to publish session cleared event: %v", err)
		}
	}
	return nil
}

func (s *searchService) ShowSession(_ context.Context, sessionID string) (*dto.ShowSessionResponse, error) {
	sess, found := s.sessionRepo.Get(sessionID)
	if !found {
		return nil, serverutils.NotFound("session not found")
	}
	sess.Mu.Lock()
	defer sess.Mu.Unlock()
	return &dto.ShowSessionResponse{
		SessionId:    sess.ID,
		CurrentText:  sess.CurrentText,
		BackBone:     sess.BackBone,
		LastQuery:    sess.LastQuery,
		CandidateIdx: append([]int(nil), sess.RetrievedIdx...),
	}, nil
}

func (s *searchService) publishActivity(ctx context.Context, req *dto.SearchTurnRequest, query string, results int, reset bool) {
	msg := dto.TurnActivityMessage{
		SessionId: req.SessionId,
		UserId:    req.UserId,
		Query:     query,
		Results:   results,
		Reset:     reset,
	}
	if err := s.publisher.Publish(msg); err != nil {
		log.Printf("[WARN] Failed to publish turn activity: %v", err)
	}
	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.NewTurnCompletedEvent(req.SessionId, req.UserId, query, results, reset)); err != nil {
			log.Printf("[WARN] Failed to publish turn completed event: %v", err)
		}
	}
}

func (s *searchService) buildResponse(req *dto.SearchTurnRequest, currentText, backBone string, result pipeline.TurnResult) *dto.SearchTurnResponse {
	limit := len(result.Indices)
	if req.Limit > 0 && req.Limit < limit {
		limit = req.Limit
	}

	items := make([]dto.SearchResultItem, 0, limit)
	for pos, idx := range result.Indices[:limit] {
		if idx < 0 || idx >= s.snapshot.Len() {
			continue
		}
		items = append(items, s.mapper.ToResultItem(s.snapshot.Items[idx], pos < result.Passed))
	}

	return &dto.SearchTurnResponse{
		SessionId:   req.SessionId,
		CurrentText: currentText,
		BackBone:    backBone,
		Tags:        result.Tags,
		Total:       len(result.Indices),
		Results:     items,
	}
}
