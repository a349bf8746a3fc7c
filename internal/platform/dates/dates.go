package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// Layouts aceptados, en orden de preferencia.
// Las fechas sin hora ni zona se interpretan como medianoche UTC.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// Normalize parsea input como fecha calendario y devuelve el timestamp
// canónico: RFC3339 en UTC. Falla con ErrInvalidDate si ningún layout
// matchea. Es idempotente: normalizar una salida de Normalize devuelve
// exactamente el mismo string.
func Normalize(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidDate)
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t.UTC().Format(time.RFC3339), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDate, input)
}
