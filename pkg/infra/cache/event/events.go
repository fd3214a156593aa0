package event

import "reflect"

type Event interface {
	Type() string
}

var (
	AnalysisSavedEventType    = "AnalysisSavedEvent"
	SafetyTipCreatedEventType = "SafetyTipCreatedEvent"
)

var Registry = map[string]reflect.Type{
	AnalysisSavedEventType:    reflect.TypeOf(AnalysisSavedEvent{}),
	SafetyTipCreatedEventType: reflect.TypeOf(SafetyTipCreatedEvent{}),
}
