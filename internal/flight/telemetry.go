package flight

// Telemetry summarizes a recorded flight path for display.
type Telemetry struct {
	Range       float64 // m, horizontal position at impact
	Apex        float64 // m, highest point of the arc
	FlightTime  float64 // s
	ImpactSpeed float64 // m/s
	Steps       int
}

// Summarize reduces a path to its telemetry. An empty path yields the
// zero value.
func Summarize(path []Sample) Telemetry {
	if len(path) == 0 {
		return Telemetry{}
	}

	last := path[len(path)-1]
	tel := Telemetry{
		Range:       last.X,
		FlightTime:  last.T,
		ImpactSpeed: last.Speed(),
		Steps:       len(path) - 1,
	}
	for _, s := range path {
		if s.Y > tel.Apex {
			tel.Apex = s.Y
		}
	}
	return tel
}
