package delete_customer

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/customers/models"
)

type CustomerService interface {
	Delete(ctx context.Context, id int64) (*models.DeleteCustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
