package list_visits

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/visits/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// parseQuery читает фильтры status, date и hall, пустые параметры пропускаются
func parseQuery(q url.Values) (*models.ListVisitsRequest, error) {
	req := &models.ListVisitsRequest{}

	if status := q.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	if dateStr := q.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		req.Date = ptr.Ptr(date)
	}

	if hallStr := q.Get("hall"); hallStr != "" {
		hallID, err := strconv.ParseInt(hallStr, 10, 64)
		if err != nil || hallID <= 0 {
			return nil, fmt.Errorf("hall: invalid id %q", hallStr)
		}
		req.HallID = ptr.Ptr(hallID)
	}

	return req, nil
}
