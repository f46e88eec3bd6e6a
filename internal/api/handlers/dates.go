package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dateparse"
)

// ParseDate разбирает дату из запроса ("2019-03-19", "march 19, 2019")
func ParseDate(s string) (time.Time, error) {
	t, err := dateparse.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
	}
	return t, nil
}

// ParseDateQuery читает параметры start и end; end необязателен
func ParseDateQuery(r *http.Request) (start, end time.Time, err error) {
	query := r.URL.Query()

	start, err = ParseDate(query.Get("start"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start: %w", err)
	}

	if raw := query.Get("end"); raw != "" {
		end, err = ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end: %w", err)
		}
	}
	return start, end, nil
}
