package patients

import (
	"clinix-ehr-bridge/internal/app/contracts"
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/exceptions"
	"clinix-ehr-bridge/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientHistoryController struct {
	Log                   *zap.Logger
	PatientHistoryUsecase contracts.PatientHistoryUsecase
}

func NewPatientHistoryController(logger *zap.Logger, patientHistoryUsecase contracts.PatientHistoryUsecase) *PatientHistoryController {
	return &PatientHistoryController{
		Log:                   logger,
		PatientHistoryUsecase: patientHistoryUsecase,
	}
}

func (ctrl *PatientHistoryController) FetchPatientHistory(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("empty patient id"), constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.PatientHistoryUsecase.FetchPatientHistory(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientHistorySuccessMessage, response)
}
