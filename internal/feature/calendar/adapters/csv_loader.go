package adapters

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"tick_store/internal/feature/calendar/domain/entity"
	"tick_store/internal/shared/dates"
)

// LoadCalendarCSV parses a wide-format holiday calendar.
//
// The expected header is `date,day,<EXCHANGE>,<EXCHANGE>,...` with one column
// per exchange. Cell values give the trading hours for that exchange on that
// date: "closed", an early-close time such as "13:00" (normalized to "half"),
// or empty when the exchange is open as usual (no row is produced).
func LoadCalendarCSV(r io.Reader) ([]entity.Holiday, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read calendar header: %w", err)
	}
	if len(header) < 3 || header[0] != "date" || header[1] != "day" {
		return nil, fmt.Errorf("unexpected calendar header %v, want date,day,<exchanges...>", header)
	}
	exchanges := header[2:]

	var holidays []entity.Holiday
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read calendar line %d: %w", line, err)
		}

		date, err := dates.Parse(record[0])
		if err != nil {
			return nil, fmt.Errorf("calendar line %d: parse date %q: %w", line, record[0], err)
		}
		day := record[1]

		for i, exchange := range exchanges {
			hours := strings.TrimSpace(record[2+i])
			if hours == "" {
				continue // open as usual
			}
			if hours != entity.HoursClosed {
				hours = entity.HoursHalf
			}
			holidays = append(holidays, entity.Holiday{
				Exchange: strings.ToUpper(exchange),
				Date:     date,
				Hours:    hours,
				Day:      day,
			})
		}
	}

	return holidays, nil
}
