package handler

import (
	analyticsdomain "asmabeauty-go/internal/domain/analytics"
	exportdomain "asmabeauty-go/internal/domain/export"
	recordsdomain "asmabeauty-go/internal/domain/records"
	"asmabeauty-go/pkg/logger"
)

type Handlers struct {
	Records   *recordsdomain.Service
	Analytics *analyticsdomain.Service
	Export    *exportdomain.Service
	log       logger.Logger
}

func New(records *recordsdomain.Service, analytics *analyticsdomain.Service, export *exportdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Records:   records,
		Analytics: analytics,
		Export:    export,
		log:       log,
	}
}
