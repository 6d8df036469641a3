package sync

import (
	"clinix-ehr-bridge/internal/app/contracts"
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/dto/requests"
	"clinix-ehr-bridge/internal/pkg/exceptions"
	"clinix-ehr-bridge/internal/pkg/utils"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type SyncController struct {
	Log         *zap.Logger
	SyncUsecase contracts.SyncUsecase
}

func NewSyncController(logger *zap.Logger, syncUsecase contracts.SyncUsecase) *SyncController {
	return &SyncController{
		Log:         logger,
		SyncUsecase: syncUsecase,
	}
}

func (ctrl *SyncController) SyncTriageSession(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SyncFhir)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.SyncUsecase.SyncTriageSession(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SyncFhirSuccessMessage, response)
}
