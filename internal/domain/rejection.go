package domain

import (
	"errors"
	"fmt"
)

// RejectionReason классифицирует отказ транслятора.
type RejectionReason string

const (
	// ReasonMalformedTime — start или end не разбираются в ожидаемом формате.
	ReasonMalformedTime RejectionReason = "malformed_time"
	// ReasonOutsideWindow — событие вне настроенного рабочего окна.
	ReasonOutsideWindow RejectionReason = "outside_window"
	// ReasonInvalidRange — окончание события раньше начала.
	ReasonInvalidRange RejectionReason = "invalid_range"
)

// Границы рабочего окна для ReasonOutsideWindow.
const (
	BoundaryOpen  = "open"
	BoundaryClose = "close"
)

// Rejection — типизированный отказ транслятора. Это штатный исход,
// а не сбой: транспортный слой сам решает, как его отрисовать.
type Rejection struct {
	Reason   RejectionReason
	Boundary string
	Hour     int
	Cause    error
}

// Error реализует error.
func (r *Rejection) Error() string {
	switch r.Reason {
	case ReasonMalformedTime:
		return fmt.Sprintf("не удалось разобрать время события: %v", r.Cause)
	case ReasonOutsideWindow:
		return fmt.Sprintf("событие вне рабочего окна (граница %s, час %d)", r.Boundary, r.Hour)
	case ReasonInvalidRange:
		return "окончание события раньше начала"
	}
	return string(r.Reason)
}

// Unwrap возвращает первопричину, если она есть.
func (r *Rejection) Unwrap() error {
	return r.Cause
}

// AsRejection извлекает Rejection из цепочки ошибок.
func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
