package channel

type Channel string

const (
	// AnalysisEventsChannel carries persisted-analysis insert events.
	AnalysisEventsChannel Channel = "shield:events:analysis"
	// TipEventsChannel carries new reference-content insert events.
	TipEventsChannel Channel = "shield:events:tips"
)
