package timetable

import "time"

// All "today/tomorrow" computations use one fixed civil timezone.
var moscow = time.FixedZone("MSK", 3*60*60)

func Now() time.Time {
	return time.Now().In(moscow)
}

// CivilDate renders t as YYYY-MM-DD, the format the upstream uses both in
// the sdate query parameter and the item date field.
func CivilDate(t time.Time) string {
	return t.In(moscow).Format("2006-01-02")
}
