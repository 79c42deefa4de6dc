package service

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lk2023060901/callerguard-backend/internal/lookup/biz"
	apperrors "github.com/lk2023060901/callerguard-backend/internal/pkg/errors"
	"github.com/lk2023060901/callerguard-backend/internal/pkg/logger"
	"github.com/lk2023060901/callerguard-backend/internal/pkg/response"
)

// Analyzer 号码分析用例
type Analyzer interface {
	Analyze(ctx context.Context, rawPhone string) (*biz.AnalysisResult, error)
}

// LookupService 号码查询 HTTP 服务
type LookupService struct {
	uc     Analyzer
	logger *logger.Logger
}

// NewLookupService 创建号码查询服务
func NewLookupService(uc *biz.LookupUseCase, logger *logger.Logger) *LookupService {
	return newLookupService(uc, logger)
}

func newLookupService(uc Analyzer, log *logger.Logger) *LookupService {
	if log == nil {
		log = logger.L()
	}
	return &LookupService{
		uc:     uc,
		logger: log,
	}
}

// RegisterRoutes 注册路由
func (s *LookupService) RegisterRoutes(r gin.IRouter) {
	r.POST("/analyze", s.Analyze)
}

// Analyze 分析号码
// 上游调用与客户端连接解耦：客户端断开后请求仍会执行到完成或超时
func (s *LookupService) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.WithContext(c.Request.Context()).Warn("invalid analyze request", zap.Error(err))
		response.HandleError(c, "", apperrors.NewBadRequestError(err.Error()))
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	result, err := s.uc.Analyze(ctx, req.PhoneNumber)
	if err != nil {
		s.handleError(c, req.PhoneNumber, err)
		return
	}

	response.Success(c, toAnalyzeResponse(result))
}

// handleError 将业务错误映射为错误码
func (s *LookupService) handleError(c *gin.Context, rawPhone string, err error) {
	phone := biz.NormalizePhone(rawPhone).Normalized

	switch {
	case errors.Is(err, biz.ErrSearchUnavailable):
		response.HandleError(c, phone, apperrors.Wrap(err, apperrors.ErrLookupSearchUnavailable))
	case errors.Is(err, biz.ErrSummaryUnavailable):
		response.HandleError(c, phone, apperrors.Wrap(err, apperrors.ErrLookupSummaryUnavailable))
	default:
		s.logger.WithContext(c.Request.Context()).Error("unexpected lookup error",
			zap.String("phone_number", phone),
			zap.Error(err),
		)
		response.HandleError(c, phone, apperrors.Wrap(err, apperrors.ErrInternalServer))
	}
}
