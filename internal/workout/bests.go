package workout

// PersonalBests holds the highest completed value ever recorded per exercise.
// They are shown as ghost targets next to the current target during a
// session.
type PersonalBests struct {
	BarHang int
	Plank   int
	Pushups int
}

// Bests scans the full history for per-exercise maxima.
func Bests(records []Record) PersonalBests {
	var b PersonalBests
	for _, r := range records {
		b.BarHang = max(b.BarHang, r.BarHangCompleted)
		b.Plank = max(b.Plank, r.PlankCompleted)
		b.Pushups = max(b.Pushups, r.PushupsCompleted)
	}
	return b
}
