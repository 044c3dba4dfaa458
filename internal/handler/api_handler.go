package handler

import (
	"skill-swap-service/api"
	"skill-swap-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*UserHandler
	*SkillHandler
	*SwapHandler
	*MatchHandler
	*FeedbackHandler
	*StatsHandler
}

func NewAPIHandler(
	userUseCase domain.UserUseCase,
	skillUseCase domain.SkillUseCase,
	swapUseCase domain.SwapUseCase,
	matchUseCase domain.MatchUseCase,
	feedbackUseCase domain.FeedbackUseCase,
	statsUseCase domain.StatsUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		UserHandler:     NewUserHandler(userUseCase, logger),
		SkillHandler:    NewSkillHandler(skillUseCase, logger),
		SwapHandler:     NewSwapHandler(swapUseCase, logger),
		MatchHandler:    NewMatchHandler(matchUseCase, logger),
		FeedbackHandler: NewFeedbackHandler(feedbackUseCase, logger),
		StatsHandler:    NewStatsHandler(statsUseCase, logger),
	}
}
