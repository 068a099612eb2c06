package get_time_options

import (
	"context"

	getTimeOptions "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_time_options"
)

type GetTimeOptionsUseCase interface {
	Execute(ctx context.Context, req *getTimeOptions.Request) (*getTimeOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
