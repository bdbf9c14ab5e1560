package glenum

// QueryTarget is the kind of measurement a query object takes.
type QueryTarget uint32

const (
	TimeElapsed                        QueryTarget = 0x88BF
	SamplesPassed                      QueryTarget = 0x8914
	PrimitivesGenerated                QueryTarget = 0x8C87
	TransformFeedbackPrimitivesWritten QueryTarget = 0x8C88
	AnySamplesPassed                   QueryTarget = 0x8C2F
	AnySamplesPassedConservative       QueryTarget = 0x8D6A
	Timestamp                          QueryTarget = 0x8E28
)

var queryTargets = newGroup("QueryTarget", map[QueryTarget]string{
	TimeElapsed:                        "TIME_ELAPSED",
	SamplesPassed:                      "SAMPLES_PASSED",
	PrimitivesGenerated:                "PRIMITIVES_GENERATED",
	TransformFeedbackPrimitivesWritten: "TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN",
	AnySamplesPassed:                   "ANY_SAMPLES_PASSED",
	AnySamplesPassedConservative:       "ANY_SAMPLES_PASSED_CONSERVATIVE",
	Timestamp:                          "TIMESTAMP",
})

// ParseQueryTarget converts a raw token into a QueryTarget.
func ParseQueryTarget(raw uint32) (QueryTarget, bool) { return queryTargets.parse(raw) }

func (t QueryTarget) String() string { return queryTargets.str(t) }

// QueryParameter names a property read by GetQueryObject.
type QueryParameter uint32

const (
	QueryTargetParam     QueryParameter = 0x82EA
	QueryResult          QueryParameter = 0x8866
	QueryResultAvailable QueryParameter = 0x8867
	QueryResultNoWait    QueryParameter = 0x9194
)

var queryParameters = newGroup("QueryObjectParameterName", map[QueryParameter]string{
	QueryTargetParam:     "QUERY_TARGET",
	QueryResult:          "QUERY_RESULT",
	QueryResultAvailable: "QUERY_RESULT_AVAILABLE",
	QueryResultNoWait:    "QUERY_RESULT_NO_WAIT",
})

// ParseQueryParameter converts a raw token into a QueryParameter.
func ParseQueryParameter(raw uint32) (QueryParameter, bool) { return queryParameters.parse(raw) }

func (p QueryParameter) String() string { return queryParameters.str(p) }

// QueryTargetParameter names a property read by GetQueryiv.
type QueryTargetParameter uint32

const (
	QueryCounterBits QueryTargetParameter = 0x8864
	CurrentQuery     QueryTargetParameter = 0x8865
)

var queryTargetParameters = newGroup("QueryParameterName", map[QueryTargetParameter]string{
	QueryCounterBits: "QUERY_COUNTER_BITS",
	CurrentQuery:     "CURRENT_QUERY",
})

// ParseQueryTargetParameter converts a raw token into a QueryTargetParameter.
func ParseQueryTargetParameter(raw uint32) (QueryTargetParameter, bool) {
	return queryTargetParameters.parse(raw)
}

func (p QueryTargetParameter) String() string { return queryTargetParameters.str(p) }

// SyncCondition is the condition a fence waits for.
type SyncCondition uint32

// SyncGPUCommandsComplete is the only fence condition.
const SyncGPUCommandsComplete SyncCondition = 0x9117

var syncConditions = newGroup("SyncCondition", map[SyncCondition]string{
	SyncGPUCommandsComplete: "SYNC_GPU_COMMANDS_COMPLETE",
})

// ParseSyncCondition converts a raw token into a SyncCondition.
func ParseSyncCondition(raw uint32) (SyncCondition, bool) { return syncConditions.parse(raw) }

func (c SyncCondition) String() string { return syncConditions.str(c) }

// SyncStatus is the outcome of ClientWaitSync.
type SyncStatus uint32

const (
	AlreadySignaled    SyncStatus = 0x911A
	TimeoutExpired     SyncStatus = 0x911B
	ConditionSatisfied SyncStatus = 0x911C
	WaitFailed         SyncStatus = 0x911D
)

var syncStatuses = newGroup("SyncStatus", map[SyncStatus]string{
	AlreadySignaled:    "ALREADY_SIGNALED",
	TimeoutExpired:     "TIMEOUT_EXPIRED",
	ConditionSatisfied: "CONDITION_SATISFIED",
	WaitFailed:         "WAIT_FAILED",
})

// ParseSyncStatus converts a raw token into a SyncStatus.
func ParseSyncStatus(raw uint32) (SyncStatus, bool) { return syncStatuses.parse(raw) }

func (s SyncStatus) String() string { return syncStatuses.str(s) }

// SyncParameter names a property read by GetSynciv.
type SyncParameter uint32

const (
	ObjectType         SyncParameter = 0x9112
	SyncConditionParam SyncParameter = 0x9113
	SyncStatusParam    SyncParameter = 0x9114
	SyncFlagsParam     SyncParameter = 0x9115
)

var syncParameters = newGroup("SyncParameterName", map[SyncParameter]string{
	ObjectType:         "OBJECT_TYPE",
	SyncConditionParam: "SYNC_CONDITION",
	SyncStatusParam:    "SYNC_STATUS",
	SyncFlagsParam:     "SYNC_FLAGS",
})

// ParseSyncParameter converts a raw token into a SyncParameter.
func ParseSyncParameter(raw uint32) (SyncParameter, bool) { return syncParameters.parse(raw) }

func (p SyncParameter) String() string { return syncParameters.str(p) }

// Values reported by GetSynciv.
const (
	SyncFence  uint32 = 0x9116
	Unsignaled uint32 = 0x9118
	Signaled   uint32 = 0x9119
)

// TimeoutIgnored is the WaitSync timeout meaning "no timeout".
const TimeoutIgnored uint64 = 0xFFFFFFFFFFFFFFFF
