package get_appointments

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// parseFilter собирает фильтр списка встреч из query-параметров
func parseFilter(query url.Values) (domain.AppointmentsFilter, error) {
	var filter domain.AppointmentsFilter

	if raw := query.Get("customerId"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid customerId: %v", err)
		}
		filter.CustomerID = &customerID
	}

	if raw := query.Get("contactId"); raw != "" {
		contactID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid contactId: %v", err)
		}
		filter.ContactID = &contactID
	}

	if raw := query.Get("type"); raw != "" {
		filter.Type = &raw
	}

	if raw := query.Get("month"); raw != "" {
		month, err := models.ParseMonth(raw)
		if err != nil {
			return filter, err
		}
		filter.Month = &month
	}

	return filter, nil
}
