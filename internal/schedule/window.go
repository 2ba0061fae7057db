package schedule

import "time"

// Status — статус события относительно переданного момента времени.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusActive   Status = "active"
	StatusPast     Status = "past"
)

// Classify определяет статус окна [start, end] относительно now.
// Границы включительны: ровно в момент начала и ровно в момент окончания
// событие считается активным. Вывернутое окно (end <= start) — не ошибка:
// такое событие прошло, если now >= start, иначе предстоит.
// Текущее время всегда передается снаружи, движок часы не читает.
func Classify(now, start, end time.Time) Status {
	if !end.After(start) {
		if now.Before(start) {
			return StatusUpcoming
		}
		return StatusPast
	}
	if now.Before(start) {
		return StatusUpcoming
	}
	if !now.After(end) {
		return StatusActive
	}
	return StatusPast
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и
// [bStart, bEnd): события "встык" не пересекаются. Вывернутое или пустое
// окно ни с чем не пересекается.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	if !aEnd.After(aStart) || !bEnd.After(bStart) {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
